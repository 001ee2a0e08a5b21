// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/devkit-vault/models"

// KeyDeriver turns a master password and the persisted salt into the
// symmetric key that protects the vault.
//
// Derivation is deterministic: the same (password, salt) pair always yields
// a key able to decrypt what an earlier key produced. A wrong password is
// not detected here; it yields a key that fails authentication downstream.
type KeyDeriver interface {
	// DeriveKey returns a new [MasterKey]. It fails only for malformed input:
	// an empty password ([ErrEmptyPassword]) or a salt that is not valid
	// base64 of [SaltSize] bytes ([ErrInvalidSalt]).
	DeriveKey(password string, salt models.Salt) (*MasterKey, error)
}

// AEAD is an authenticated cipher bound to one 256-bit key.
//
// Encrypt draws a fresh random nonce on every call; callers store the nonce
// next to the ciphertext. Decrypt verifies the tag before returning any
// plaintext and wraps [ErrDecryptionFailed] when verification fails.
type AEAD interface {
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}
