// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the loopback plugin bridge.
//
// Out-of-process plugins use it to ask the user for vault access and then
// read and write the secrets of their own namespace. Every secret call
// carries a short-lived bearer token whose subject is the plugin ID, and the
// persisted grant is checked again on each call so a revoke takes effect
// immediately. Request tracing, access logging and per-plugin rate limiting
// are handled here before requests reach the service layer.
package http
