// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := writeJSONFile(t, `{
		"app": { "log_level": "error", "log_file": "/tmp/json.log" },
		"storage": {
			"driver": "sqlite",
			"db": { "dsn": "/tmp/json.db" },
			"file": { "path": "/tmp/json.json" }
		},
		"crypto": { "cipher": "aes-gcm", "kdf": "pbkdf2" },
		"vault": { "default_autolock": 1 },
		"bridge": {
			"address": "localhost:9999",
			"token_duration": "5m",
			"access_timeout": "1m",
			"rate_limit": 1.5,
			"rate_burst": 3
		}
	}`)

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/json.log", cfg.App.LogFile)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/json.json", cfg.Storage.File.Path)
	assert.Equal(t, "aes-gcm", cfg.Crypto.Cipher)
	assert.Equal(t, "pbkdf2", cfg.Crypto.KDF)
	assert.Equal(t, "1", cfg.Vault.DefaultAutoLock)
	assert.Equal(t, "localhost:9999", cfg.Bridge.Address)
	assert.Equal(t, 5*time.Minute, cfg.Bridge.TokenDuration)
	assert.Equal(t, time.Minute, cfg.Bridge.AccessTimeout)
	assert.InDelta(t, 1.5, cfg.Bridge.RateLimit, 1e-9)
	assert.Equal(t, 3, cfg.Bridge.RateBurst)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingAutoLockStaysEmpty(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{"storage": {"driver": "file"}}`))
	require.NoError(t, err)
	assert.Empty(t, cfg.Vault.DefaultAutoLock)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := parseJSON(writeJSONFile(t, `{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds number", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bad json", input: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"2m0s"`, string(b))
}
