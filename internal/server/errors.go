// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNonLoopbackAddress is returned for a bridge address that does not
	// resolve to a loopback interface.
	ErrNonLoopbackAddress = errors.New("bridge must listen on a loopback address")

	errServerNotStarted = errors.New("server is not started")
)
