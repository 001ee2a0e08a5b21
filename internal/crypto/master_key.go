// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
)

// MasterKey is the opaque, in-memory handle of the vault key.
//
// The raw bytes live sealed inside a memguard enclave and are only exposed
// to the cipher for the duration of a single Encrypt or Decrypt call. There
// is no accessor for the key material and the handle has no serialised form.
// Destroy drops the enclave; every later use returns [ErrKeyDestroyed].
type MasterKey struct {
	mu      sync.RWMutex
	enclave *memguard.Enclave
}

// NewMasterKey seals raw into a new [MasterKey]. raw must be [KeySize] bytes
// and is wiped by this call.
func NewMasterKey(raw []byte) (*MasterKey, error) {
	if len(raw) != KeySize {
		memguard.WipeBytes(raw)
		return nil, ErrInvalidKeySize
	}
	return &MasterKey{enclave: memguard.NewEnclave(raw)}, nil
}

// Encrypt seals plaintext under the key with a fresh random nonce.
func (k *MasterKey) Encrypt(alg Algorithm, plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	err = k.withCipher(alg, func(a AEAD) error {
		ciphertext, nonce, err = a.Encrypt(plaintext, aad)
		return err
	})
	return ciphertext, nonce, err
}

// Decrypt opens ciphertext. Authentication failures wrap [ErrDecryptionFailed].
func (k *MasterKey) Decrypt(alg Algorithm, ciphertext, nonce, aad []byte) (plaintext []byte, err error) {
	err = k.withCipher(alg, func(a AEAD) error {
		plaintext, err = a.Decrypt(ciphertext, nonce, aad)
		return err
	})
	return plaintext, err
}

// Destroy discards the key. It is idempotent.
func (k *MasterKey) Destroy() {
	if k == nil {
		return
	}
	k.mu.Lock()
	k.enclave = nil
	k.mu.Unlock()
}

// Destroyed reports whether Destroy has been called.
func (k *MasterKey) Destroyed() bool {
	if k == nil {
		return true
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.enclave == nil
}

// String never prints key material.
func (k *MasterKey) String() string {
	return "MasterKey(redacted)"
}

// GoString keeps %#v from dumping the struct.
func (k *MasterKey) GoString() string {
	return k.String()
}

func (k *MasterKey) withCipher(alg Algorithm, fn func(AEAD) error) error {
	if k == nil {
		return ErrKeyDestroyed
	}
	k.mu.RLock()
	enclave := k.enclave
	k.mu.RUnlock()
	if enclave == nil {
		return ErrKeyDestroyed
	}

	buf, err := enclave.Open()
	if err != nil {
		return fmt.Errorf("open key enclave: %w", err)
	}
	defer buf.Destroy()

	a, err := NewAEAD(buf.Bytes(), alg)
	if err != nil {
		return err
	}
	return fn(a)
}
