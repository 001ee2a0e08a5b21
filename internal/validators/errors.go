// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID           = errors.New("entry id is required")
	ErrReservedID        = errors.New("entry id uses a reserved prefix")
	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyUsername     = errors.New("username is required")
	ErrFieldTooLong      = errors.New("field is too long")
	ErrInvalidURL        = errors.New("invalid url")
	ErrInvalidTag        = errors.New("invalid tag")
	ErrDuplicateTag      = errors.New("duplicate tag")
	ErrInvalidPluginID   = errors.New("invalid plugin id")
	ErrEmptyPluginName   = errors.New("plugin name is required")
	ErrInvalidPluginType = errors.New("invalid plugin type")
)
