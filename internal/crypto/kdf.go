// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/pbkdf2"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/devkit-vault/models"
)

const (
	// PBKDF2Iterations is the fixed PBKDF2-HMAC-SHA256 work factor.
	PBKDF2Iterations = 200000
	// SaltSize is the length of the random salt in bytes.
	SaltSize = 16
	// KeySize is the length of the derived key (256 bits).
	KeySize = 32
)

// KDF names accepted by [NewKeyDeriver].
const (
	KDFPBKDF2   = "pbkdf2"
	KDFArgon2id = "argon2id"
)

// GenerateSalt reads [SaltSize] bytes from the OS CSPRNG and returns them
// base64-encoded. It is called once per install.
func GenerateSalt() (models.Salt, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return models.Salt(base64.StdEncoding.EncodeToString(salt)), nil
}

func decodeSalt(salt models.Salt) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(string(salt))
	if err != nil || len(raw) != SaltSize {
		return nil, ErrInvalidSalt
	}
	return raw, nil
}

// NewKeyDeriver returns the deriver registered under name. An empty name
// selects PBKDF2.
func NewKeyDeriver(name string) (KeyDeriver, error) {
	switch name {
	case "", KDFPBKDF2:
		return NewPBKDF2Deriver(), nil
	case KDFArgon2id:
		return NewArgon2Deriver(), nil
	default:
		return nil, fmt.Errorf("%w: kdf %q", ErrUnsupportedAlgorithm, name)
	}
}

// pbkdf2Deriver derives keys with PBKDF2-HMAC-SHA256.
type pbkdf2Deriver struct {
	iterations int
}

// NewPBKDF2Deriver constructs the default [KeyDeriver]:
// PBKDF2 with SHA-256, [PBKDF2Iterations] rounds and a 32-byte output.
func NewPBKDF2Deriver() KeyDeriver {
	return &pbkdf2Deriver{iterations: PBKDF2Iterations}
}

func (d *pbkdf2Deriver) DeriveKey(password string, salt models.Salt) (*MasterKey, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	rawSalt, err := decodeSalt(salt)
	if err != nil {
		return nil, err
	}

	key, err := pbkdf2.Key(sha256.New, password, rawSalt, d.iterations, KeySize)
	if err != nil {
		return nil, fmt.Errorf("pbkdf2: %w", err)
	}
	return NewMasterKey(key)
}

// argon2Deriver derives keys with Argon2id.
type argon2Deriver struct {
	time    uint32
	memory  uint32
	threads uint8
}

// NewArgon2Deriver constructs an Argon2id [KeyDeriver] with the OWASP
// desktop parameters: 1 pass, 64 MiB, 4 lanes.
func NewArgon2Deriver() KeyDeriver {
	return &argon2Deriver{
		time:    1,
		memory:  64 * 1024,
		threads: 4,
	}
}

func (d *argon2Deriver) DeriveKey(password string, salt models.Salt) (*MasterKey, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	rawSalt, err := decodeSalt(salt)
	if err != nil {
		return nil, err
	}

	key := argon2.IDKey([]byte(password), rawSalt, d.time, d.memory, d.threads, KeySize)
	return NewMasterKey(key)
}
