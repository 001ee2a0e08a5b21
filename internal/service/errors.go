// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrUnknownPlugin       = errors.New("unknown plugin")
	ErrNoVaultAccess       = errors.New("plugin does not request vault access")
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
