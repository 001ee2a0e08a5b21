// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package plugins

import (
	"github.com/MKhiriev/devkit-vault/internal/logger"
	"github.com/MKhiriev/devkit-vault/internal/vault"
	"github.com/MKhiriev/devkit-vault/models"
)

const (
	GeminiAssistantID = "gemini_assistant"
	OpenAIAssistantID = "openai_assistant"
	CodeScannerID     = "code_scanner"
	SystemMonitorID   = "system_monitor_widget"
	WebLinksID        = "web_links_widget"
)

// Builtins returns the plugins shipped with the dashboard. notifier is
// handed to the API key plugins.
func Builtins(notifier vault.Notifier, logger *logger.Logger) []Plugin {
	return []Plugin{
		NewAPIKeyPlugin(models.PluginDescriptor{
			ID:          GeminiAssistantID,
			Name:        "Gemini Assistant",
			Author:      "Google",
			Description: "Official Google Gemini integration for code assistance, explanations, and more.",
			Type:        models.PluginAIAssistant,
		}, notifier, logger),
		NewAPIKeyPlugin(models.PluginDescriptor{
			ID:          OpenAIAssistantID,
			Name:        "OpenAI Assistant",
			Author:      "OpenAI (Mock)",
			Description: "A mock plugin demonstrating how to integrate ChatGPT or other OpenAI models.",
			Type:        models.PluginAIAssistant,
		}, notifier, logger),
		NewAPIKeyPlugin(models.PluginDescriptor{
			ID:          CodeScannerID,
			Name:        "Code Scanner",
			Author:      "Darkstar Security",
			Description: "Statically analyze code and get AI-powered fix suggestions.",
			Type:        models.PluginTool,
		}, notifier, logger),
		NewWidget(models.PluginDescriptor{
			ID:          SystemMonitorID,
			Name:        "System Monitor",
			Author:      "Darkstar Security",
			Description: "A dashboard widget to display mock real-time system stats like CPU and Memory usage.",
			Type:        models.PluginWidget,
		}),
		NewWidget(models.PluginDescriptor{
			ID:          WebLinksID,
			Name:        "Developer Links",
			Author:      "Darkstar Security",
			Description: "A handy dashboard widget with quick links to useful developer resources.",
			Type:        models.PluginWidget,
		}),
	}
}

// NewBuiltinRegistry returns a registry holding [Builtins].
func NewBuiltinRegistry(notifier vault.Notifier, logger *logger.Logger) (*Registry, error) {
	return NewRegistry(Builtins(notifier, logger)...)
}
