// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly types.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DB     struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		File struct {
			Path string `json:"path"`
		} `json:"file,omitempty"`
	} `json:"storage,omitempty"`

	Crypto struct {
		Cipher string `json:"cipher"`
		KDF    string `json:"kdf"`
	} `json:"crypto,omitempty"`

	Vault struct {
		DefaultAutoLock json.Number `json:"default_autolock,omitempty"`
	} `json:"vault,omitempty"`

	Bridge struct {
		Address       string   `json:"address"`
		TokenDuration Duration `json:"token_duration"`
		AccessTimeout Duration `json:"access_timeout"`
		RateLimit     float64  `json:"rate_limit"`
		RateBurst     int      `json:"rate_burst"`
	} `json:"bridge,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	dec := json.NewDecoder(jsonFile)
	dec.UseNumber()
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DB:     DB{DSN: jsonCfg.Storage.DB.DSN},
			File:   File{Path: jsonCfg.Storage.File.Path},
		},
		Crypto: Crypto{
			Cipher: jsonCfg.Crypto.Cipher,
			KDF:    jsonCfg.Crypto.KDF,
		},
		Vault: Vault{
			DefaultAutoLock: jsonCfg.Vault.DefaultAutoLock.String(),
		},
		Bridge: Bridge{
			Address:       jsonCfg.Bridge.Address,
			TokenDuration: time.Duration(jsonCfg.Bridge.TokenDuration),
			AccessTimeout: time.Duration(jsonCfg.Bridge.AccessTimeout),
			RateLimit:     jsonCfg.Bridge.RateLimit,
			RateBurst:     jsonCfg.Bridge.RateBurst,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
