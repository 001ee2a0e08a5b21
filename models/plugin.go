// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PluginType classifies a plugin by where it is shown in the dashboard.
type PluginType string

const (
	PluginWidget      PluginType = "widget"
	PluginTool        PluginType = "tool"
	PluginAIAssistant PluginType = "ai_assistant"
)

// PluginDescriptor is the static identity of a plugin.
type PluginDescriptor struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Author              string     `json:"author"`
	Description         string     `json:"description"`
	Type                PluginType `json:"type"`
	RequestsVaultAccess bool       `json:"requests_vault_access"`
}
