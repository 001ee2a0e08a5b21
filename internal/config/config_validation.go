// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/devkit-vault/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Every failing group
// contributes one wrapped sentinel to the joined result.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel))
	}

	switch cfg.Storage.Driver {
	case DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: empty sqlite dsn", ErrInvalidStorageConfigs))
		}
	case DriverFile:
		if cfg.Storage.File.Path == "" {
			errs = append(errs, fmt.Errorf("%w: empty file path", ErrInvalidStorageConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver))
	}

	switch cfg.Crypto.Cipher {
	case "aes-gcm", "chacha20-poly1305":
	default:
		errs = append(errs, fmt.Errorf("%w: unknown cipher %q", ErrInvalidCryptoConfigs, cfg.Crypto.Cipher))
	}
	switch cfg.Crypto.KDF {
	case "pbkdf2", "argon2id":
	default:
		errs = append(errs, fmt.Errorf("%w: unknown kdf %q", ErrInvalidCryptoConfigs, cfg.Crypto.KDF))
	}

	if _, err := cfg.Vault.AutoLock(); err != nil {
		errs = append(errs, err)
	}

	if err := cfg.Bridge.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// AutoLock parses DefaultAutoLock. Empty yields [models.DefaultAutoLockTimeout].
func (v Vault) AutoLock() (models.AutoLockTimeout, error) {
	raw := strings.TrimSpace(v.DefaultAutoLock)
	switch strings.ToLower(raw) {
	case "":
		return models.DefaultAutoLockTimeout, nil
	case "never":
		return models.AutoLockNever, nil
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: auto-lock %q: %w", ErrInvalidVaultConfigs, raw, err)
	}
	t := models.AutoLockTimeout(minutes)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: auto-lock %d is not a selectable option", ErrInvalidVaultConfigs, minutes)
	}
	return t, nil
}

// Enabled reports whether the bridge should be started.
func (b Bridge) Enabled() bool {
	return b.Address != ""
}

func (b Bridge) validate() error {
	if b.TokenDuration < 0 || b.AccessTimeout < 0 || b.RateLimit < 0 || b.RateBurst < 0 {
		return fmt.Errorf("%w: negative duration or limit", ErrInvalidBridgeConfigs)
	}
	if !b.Enabled() {
		return nil
	}

	host, _, err := net.SplitHostPort(b.Address)
	if err != nil {
		return fmt.Errorf("%w: address %q: %w", ErrInvalidBridgeConfigs, b.Address, err)
	}
	if strings.EqualFold(host, "localhost") {
		return nil
	}
	ip := net.ParseIP(host)
	if ip == nil || !ip.IsLoopback() {
		return fmt.Errorf("%w: address %q is not loopback", ErrInvalidBridgeConfigs, b.Address)
	}
	return nil
}
