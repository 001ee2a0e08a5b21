// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Storage drivers understood by [Storage.Driver].
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
)

// Defaults applied to fields that no source has set.
const (
	DefaultCipher            = "aes-gcm"
	DefaultKDF               = "pbkdf2"
	DefaultBridgeTokenTTL    = 15 * time.Minute
	DefaultBridgeAccessWait  = 2 * time.Minute
	DefaultBridgeRateLimit   = 10.0
	DefaultBridgeRateBurst   = 20
	defaultDataDirName       = "devkit-vault"
	defaultSQLiteFileName    = "vault.db"
	defaultJSONStoreFileName = "vault.json"
	defaultLogFileName       = "devvault.log"
)

// StructuredConfig is the top-level configuration container for the
// devkit-vault application.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds logging settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto selects the AEAD cipher and key derivation function.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Vault holds session defaults.
	Vault Vault `envPrefix:"VAULT_"`

	// Bridge configures the loopback HTTP bridge for out-of-process plugins.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal application writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// Driver is either [DriverSQLite] or [DriverFile].
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`

	// File holds the JSON file backend settings.
	File File `envPrefix:"FILE_"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite database path or URI.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// File holds settings for the single-document JSON backend.
type File struct {
	// Path is the JSON document location.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// Crypto names the primitives used for the vault blob.
type Crypto struct {
	// Cipher is "aes-gcm" or "chacha20-poly1305".
	// Env: CRYPTO_CIPHER
	Cipher string `env:"CIPHER"`

	// KDF is "pbkdf2" or "argon2id".
	// Env: CRYPTO_KDF
	KDF string `env:"KDF"`
}

// Vault holds session defaults.
type Vault struct {
	// DefaultAutoLock is the idle timeout in minutes used when none has been
	// persisted yet. "0" or "never" disables auto-lock; empty means 15.
	// Env: VAULT_DEFAULT_AUTOLOCK
	DefaultAutoLock string `env:"DEFAULT_AUTOLOCK"`
}

// Bridge configures the loopback plugin bridge.
type Bridge struct {
	// Address is the loopback host:port to listen on. Empty disables the
	// bridge.
	// Env: BRIDGE_ADDRESS
	Address string `env:"ADDRESS"`

	// TokenDuration is the lifetime of a plugin bearer token.
	// Env: BRIDGE_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AccessTimeout bounds how long an access request waits for the user.
	// Env: BRIDGE_ACCESS_TIMEOUT
	AccessTimeout time.Duration `env:"ACCESS_TIMEOUT"`

	// RateLimit is the sustained number of requests per second per plugin.
	// Env: BRIDGE_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size.
	// Env: BRIDGE_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// GetStructuredConfig loads, merges, defaults, and validates the
// application configuration from the environment, os.Args and the optional
// JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// applyDefaults fills every field no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	dataDir := defaultDataDir()

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverSQLite
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(dataDir, defaultSQLiteFileName)
	}
	if cfg.Storage.File.Path == "" {
		cfg.Storage.File.Path = filepath.Join(dataDir, defaultJSONStoreFileName)
	}
	if cfg.App.LogFile == "" {
		cfg.App.LogFile = filepath.Join(dataDir, defaultLogFileName)
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}
	if cfg.Crypto.Cipher == "" {
		cfg.Crypto.Cipher = DefaultCipher
	}
	if cfg.Crypto.KDF == "" {
		cfg.Crypto.KDF = DefaultKDF
	}
	if cfg.Bridge.TokenDuration == 0 {
		cfg.Bridge.TokenDuration = DefaultBridgeTokenTTL
	}
	if cfg.Bridge.AccessTimeout == 0 {
		cfg.Bridge.AccessTimeout = DefaultBridgeAccessWait
	}
	if cfg.Bridge.RateLimit == 0 {
		cfg.Bridge.RateLimit = DefaultBridgeRateLimit
	}
	if cfg.Bridge.RateBurst == 0 {
		cfg.Bridge.RateBurst = DefaultBridgeRateBurst
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, defaultDataDirName)
	}
	return defaultDataDirName
}
