// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for devkit-vault.
//
// Configuration is assembled from multiple sources. Sources are merged with
// mergo without override, so the first source that sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source receive defaults in [StructuredConfig]
// before validation. The main entry point is [GetStructuredConfig].
package config
