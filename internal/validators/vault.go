// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/devkit-vault/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	// FieldID targets the vault entry identifier of a user secret.
	FieldID = "id"

	// FieldTitle targets the display title of a credential.
	FieldTitle = "title"

	// FieldUsername targets the login of a credential.
	FieldUsername = "username"

	// FieldURL targets the optional site address of a credential.
	FieldURL = "url"

	// FieldNotes targets the free-form notes of a credential.
	FieldNotes = "notes"

	// FieldTags targets the tag list of a credential.
	FieldTags = "tags"

	// FieldEntry targets the credential nested in a user secret.
	FieldEntry = "entry"

	FieldPluginID   = "plugin_id"
	FieldPluginName = "plugin_name"
	FieldPluginType = "plugin_type"
)

const (
	maxShortFieldLen = 256
	maxNotesLen      = 16 * 1024
	maxTagLen        = 64
	reservedPrefix   = "plugin:"
)

var allowedPluginTypes = []models.PluginType{
	models.PluginWidget,
	models.PluginTool,
	models.PluginAIAssistant,
}

// VaultValidator validates credential entries, user secrets and plugin
// descriptors.
type VaultValidator struct {
}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// of models.CredentialEntry, models.UserSecret and models.PluginDescriptor
// are accepted. Without fields every field of the type is checked.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialEntry:
		return v.validateCredential(ctx, value, fields...)
	case *models.CredentialEntry:
		return v.validateCredential(ctx, *value, fields...)

	case models.UserSecret:
		return v.validateUserSecret(ctx, value, fields...)
	case *models.UserSecret:
		return v.validateUserSecret(ctx, *value, fields...)

	case models.PluginDescriptor:
		return v.validatePlugin(ctx, value, fields...)
	case *models.PluginDescriptor:
		return v.validatePlugin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateCredential(ctx context.Context, entry models.CredentialEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername, FieldURL, FieldNotes, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(entry.Title) == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(entry.Title) > maxShortFieldLen {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldTitle)
			}
		case FieldUsername:
			if strings.TrimSpace(entry.Username) == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(entry.Username) > maxShortFieldLen {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldUsername)
			}
		case FieldURL:
			if err := validateURL(entry.URL); err != nil {
				return err
			}
		case FieldNotes:
			if len(entry.Notes) > maxNotesLen {
				return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldNotes)
			}
		case FieldTags:
			seen := make(map[string]struct{}, len(entry.Tags))
			for i, tag := range entry.Tags {
				if tag == "" || tag != strings.ToLower(strings.TrimSpace(tag)) || utf8.RuneCountInString(tag) > maxTagLen {
					return fmt.Errorf("%w at index %d", ErrInvalidTag, i)
				}
				if _, dup := seen[tag]; dup {
					return fmt.Errorf("%w: %s", ErrDuplicateTag, tag)
				}
				seen[tag] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateUserSecret(ctx context.Context, secret models.UserSecret, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldEntry}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if secret.ID == "" {
				return ErrEmptyID
			}
			if strings.HasPrefix(secret.ID, reservedPrefix) {
				return ErrReservedID
			}
		case FieldEntry:
			if err := v.validateCredential(ctx, secret.Entry); err != nil {
				return fmt.Errorf("entry %s: %w", secret.ID, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validatePlugin(ctx context.Context, plugin models.PluginDescriptor, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPluginID, FieldPluginName, FieldPluginType}
	}

	for _, f := range fields {
		switch f {
		case FieldPluginID:
			if plugin.ID == "" || strings.Contains(plugin.ID, ":") || strings.TrimSpace(plugin.ID) != plugin.ID {
				return fmt.Errorf("%w: %q", ErrInvalidPluginID, plugin.ID)
			}
		case FieldPluginName:
			if strings.TrimSpace(plugin.Name) == "" {
				return ErrEmptyPluginName
			}
		case FieldPluginType:
			if !slices.Contains(allowedPluginTypes, plugin.Type) {
				return fmt.Errorf("%w: %q", ErrInvalidPluginType, plugin.Type)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateURL accepts an empty value, a bare host such as "github.com", or
// an absolute http(s) URL.
func validateURL(raw string) error {
	if raw == "" {
		return nil
	}
	if utf8.RuneCountInString(raw) > 2048 || strings.ContainsAny(raw, " \t\n") {
		return ErrInvalidURL
	}

	candidate := raw
	if !strings.Contains(raw, "://") {
		candidate = "https://" + raw
	}
	u, err := url.Parse(candidate)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}
