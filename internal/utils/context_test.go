// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestPluginIDCtxKey(t *testing.T) {
	if PluginIDCtxKey.String() != "pluginID" {
		t.Errorf("expected 'pluginID', got '%s'", PluginIDCtxKey.String())
	}
}

func TestGetPluginIDFromContext_Success(t *testing.T) {
	ctx := WithPluginID(context.Background(), "code_scanner")

	pluginID, ok := GetPluginIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if pluginID != "code_scanner" {
		t.Errorf("expected pluginID=code_scanner, got %s", pluginID)
	}
}

func TestGetPluginIDFromContext_Missing(t *testing.T) {
	pluginID, ok := GetPluginIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if pluginID != "" {
		t.Errorf("expected empty pluginID, got %s", pluginID)
	}
}

func TestGetPluginIDFromContext_WrongTypeOrEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"int", 42},
		{"empty string", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.WithValue(context.Background(), PluginIDCtxKey, tt.value)
			if _, ok := GetPluginIDFromContext(ctx); ok {
				t.Fatal("expected ok=false, got true")
			}
		})
	}
}
