// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/devkit-vault/internal/logger"
)

// Workers runs a fixed set of workers concurrently.
type Workers struct {
	workers []Worker

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Add appends w. Nil workers are skipped.
func (w *Workers) Add(worker Worker) {
	if worker != nil {
		w.workers = append(w.workers, worker)
	}
}

// Run starts every worker and waits for all of them. The first worker to
// return, with or without an error, cancels the context of the others.
// [context.Canceled] is not reported as a failure.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()

	for i, worker := range w.workers {
		g.Go(func() error {
			defer cancel()
			err := worker.Run(gctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				w.logger.Err(err).Int("worker", i).Msg("worker failed")
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
