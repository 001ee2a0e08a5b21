// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccessState is the consent state of a single plugin.
type AccessState int

const (
	// AccessUngranted means no grant is persisted and no request is waiting.
	AccessUngranted AccessState = iota
	// AccessPending means a request was raised and waits for the user.
	AccessPending
	// AccessGranted means the user approved the plugin and the grant is persisted.
	AccessGranted
)

// String returns a lowercase label, used in logs and bridge responses.
func (s AccessState) String() string {
	switch s {
	case AccessPending:
		return "pending"
	case AccessGranted:
		return "granted"
	default:
		return "ungranted"
	}
}

// AccessGrant is a persisted pluginID -> granted record.
type AccessGrant struct {
	PluginID  string    `json:"plugin_id"`
	Granted   bool      `json:"granted"`
	GrantedAt time.Time `json:"granted_at"`
}

// AccessRequest describes a plugin waiting for the user decision.
type AccessRequest struct {
	Plugin      PluginDescriptor
	RequestedAt time.Time
}
