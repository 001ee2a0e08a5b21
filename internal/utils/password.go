// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	DefaultPasswordLength = 16
	MinPasswordLength     = 8
	MaxPasswordLength     = 128
)

// ErrInvalidPasswordLength is returned for a length outside
// [MinPasswordLength, MaxPasswordLength].
var ErrInvalidPasswordLength = errors.New("invalid password length")

// PasswordOptions selects the character classes added to lowercase letters.
type PasswordOptions struct {
	Length    int
	Uppercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultPasswordOptions enables every class at [DefaultPasswordLength].
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{Length: DefaultPasswordLength, Uppercase: true, Numbers: true, Symbols: true}
}

// GeneratePassword draws every character uniformly from the selected set
// using crypto/rand.
func GeneratePassword(opts PasswordOptions) (string, error) {
	if opts.Length < MinPasswordLength || opts.Length > MaxPasswordLength {
		return "", ErrInvalidPasswordLength
	}

	charset := lowerChars
	if opts.Uppercase {
		charset += upperChars
	}
	if opts.Numbers {
		charset += numberChars
	}
	if opts.Symbols {
		charset += symbolChars
	}

	limit := big.NewInt(int64(len(charset)))
	var b strings.Builder
	b.Grow(opts.Length)
	for range opts.Length {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b.WriteByte(charset[n.Int64()])
	}
	return b.String(), nil
}
