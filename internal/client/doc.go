// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the host application runtime.
//
// It wires storage, the vault services, the built-in plugins, the terminal
// UI and the optional loopback plugin bridge into a single process lifecycle.
package client
