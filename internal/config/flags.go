// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-a bridge address in format [host]:[port]
//	-d SQLite database path
//	-f JSON store file path
//	-driver storage driver (sqlite|file)
//	-cipher vault cipher (aes-gcm|chacha20-poly1305)
//	-kdf key derivation function (pbkdf2|argon2id)
//	-autolock default auto-lock timeout in minutes (0 or "never" disables)
//	-log-level log level
//	-log-file log file path
//	-token-duration bridge token lifetime (e.g., "15m")
//	-access-timeout how long the bridge waits for an access decision
//	-rate-limit bridge requests per second
//	-rate-burst bridge burst size
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("devvault", flag.ContinueOnError)

	var bridgeAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&bridgeAddress, "a", "Bridge loopback address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "SQLite database path")
	fs.StringVar(&cfg.Storage.File.Path, "f", "", "JSON store file path")
	fs.StringVar(&cfg.Storage.Driver, "driver", "", "Storage driver (sqlite|file)")
	fs.StringVar(&cfg.Crypto.Cipher, "cipher", "", "Vault cipher (aes-gcm|chacha20-poly1305)")
	fs.StringVar(&cfg.Crypto.KDF, "kdf", "", "Key derivation function (pbkdf2|argon2id)")
	fs.StringVar(&cfg.Vault.DefaultAutoLock, "autolock", "", "Default auto-lock timeout in minutes")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.DurationVar(&cfg.Bridge.TokenDuration, "token-duration", 0, "Bridge token duration (e.g., 15m)")
	fs.DurationVar(&cfg.Bridge.AccessTimeout, "access-timeout", 0, "Bridge access decision timeout (e.g., 2m)")
	fs.Float64Var(&cfg.Bridge.RateLimit, "rate-limit", 0, "Bridge requests per second")
	fs.IntVar(&cfg.Bridge.RateBurst, "rate-burst", 0, "Bridge burst size")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Bridge.Address = bridgeAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if !strings.EqualFold(host, "localhost") {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

