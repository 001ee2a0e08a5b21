// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the loopback HTTP server of the plugin bridge.
package server
