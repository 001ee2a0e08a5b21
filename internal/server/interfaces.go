// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the bridge server. It satisfies
// workers.Worker.
type Server interface {
	// Run listens and serves until ctx is cancelled, then shuts down
	// gracefully.
	Run(ctx context.Context) error

	// Addr is the bound address once Run has started listening.
	Addr() (string, error)
}
