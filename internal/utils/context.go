// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context keys, HTTP response writing,
// HTTP client initialization, bridge token generation and validation,
// identifier and password generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// PluginIDCtxKey is the key under which the bridge auth middleware stores
// the authenticated plugin ID.
//
//	ctx := context.WithValue(ctx, utils.PluginIDCtxKey, "code_scanner")
var PluginIDCtxKey = contextKey("pluginID")

// GetPluginIDFromContext retrieves the authenticated plugin ID.
// ok is false when the value is missing, empty or of another type.
func GetPluginIDFromContext(ctx context.Context) (string, bool) {
	pluginID, ok := ctx.Value(PluginIDCtxKey).(string)
	return pluginID, ok && pluginID != ""
}

// WithPluginID returns a copy of ctx carrying pluginID.
func WithPluginID(ctx context.Context, pluginID string) context.Context {
	return context.WithValue(ctx, PluginIDCtxKey, pluginID)
}
