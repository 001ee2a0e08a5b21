// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package plugins holds the plugin registry and the built-in plugins.
//
// Plugins never touch the vault directly. A vault-consuming plugin is handed
// a [service.PluginVault] capability bound to its own ID and works through
// it, so it can only reach its own namespace and only after the user has
// granted access.
package plugins
