// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "context"

// APIKeySecretName is the plugin secret that holds a third-party API key.
const APIKeySecretName = "api_key"

// StoreAPIKey saves apiKey in the namespace of the plugin behind pv.
func StoreAPIKey(ctx context.Context, pv PluginVault, apiKey string) error {
	if apiKey == "" {
		return ErrInvalidDataProvided
	}
	return pv.PutSecret(ctx, APIKeySecretName, apiKey)
}

// GetAPIKey returns the API key stored for the plugin behind pv.
func GetAPIKey(ctx context.Context, pv PluginVault) (string, bool, error) {
	return pv.GetSecret(ctx, APIKeySecretName)
}
