// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// Algorithm names an AEAD construction.
type Algorithm string

const (
	// AESGCM is AES-256 in Galois/Counter Mode. It is the default.
	AESGCM Algorithm = "aes-gcm"
	// ChaCha20 is ChaCha20-Poly1305 (RFC 8439).
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// NonceSize is the nonce length of both supported ciphers (96 bits).
const NonceSize = 12

// ParseAlgorithm maps a config value to an [Algorithm]. An empty value
// selects [AESGCM].
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case "", AESGCM:
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", fmt.Errorf("%w: cipher %q", ErrUnsupportedAlgorithm, name)
	}
}

// NewAEAD builds the cipher for alg over key. key must be [KeySize] bytes.
func NewAEAD(key []byte, alg Algorithm) (AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	var (
		aead cipher.AEAD
		err  error
	)
	switch alg {
	case AESGCM, "":
		var block cipher.Block
		block, err = aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("create cipher: %w", err)
		}
		aead, err = cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("create gcm: %w", err)
		}
	case ChaCha20:
		aead, err = chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("create chacha20-poly1305: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: cipher %q", ErrUnsupportedAlgorithm, alg)
	}

	return &aeadCipher{aead: aead}, nil
}

// aeadCipher adapts a [cipher.AEAD] to [AEAD] with random nonces.
type aeadCipher struct {
	aead cipher.AEAD
}

func (a *aeadCipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, a.aead.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext = a.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

func (a *aeadCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	if len(nonce) != a.aead.NonceSize() {
		return nil, ErrInvalidNonce
	}

	// A failed Open almost always means a wrong master password.
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}
