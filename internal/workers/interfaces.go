// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived components of the application, the
// plugin bridge server and the terminal UI, under one errgroup.
package workers

import "context"

// Worker is a long-lived component.
//
// Run blocks until ctx is cancelled or the work ends. Returning a non-nil
// error stops every other worker in the same [Workers] group.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
