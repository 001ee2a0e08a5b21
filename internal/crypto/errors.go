// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEmptyPassword is returned when key derivation is asked for an empty
	// master password.
	ErrEmptyPassword = errors.New("master password is empty")

	// ErrInvalidSalt is returned when the salt is not base64 or has the wrong length.
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrInvalidKeySize is returned when raw key material is not [KeySize] bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrUnsupportedAlgorithm is returned for an unknown cipher or KDF name.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidNonce is returned when a nonce has the wrong length.
	ErrInvalidNonce = errors.New("invalid nonce size")

	// ErrDecryptionFailed means the authentication tag did not verify: the key
	// is wrong or the ciphertext, nonce or associated data was altered.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrKeyDestroyed is returned when a [MasterKey] is used after Destroy.
	ErrKeyDestroyed = errors.New("master key destroyed")
)
