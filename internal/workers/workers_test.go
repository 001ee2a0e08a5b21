// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/MKhiriev/devkit-vault/internal/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// blockingWorker runs until its context is cancelled.
func blockingWorker(stopped *atomic.Int32) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		stopped.Add(1)
		return ctx.Err()
	})
}

func TestWorkers_Run_ParentCancel(t *testing.T) {
	var stopped atomic.Int32
	ws := NewWorkers(logger.Nop(), blockingWorker(&stopped), blockingWorker(&stopped))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil error on cancel, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
	if got := stopped.Load(); got != 2 {
		t.Errorf("expected 2 stopped workers, got %d", got)
	}
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	var stopped atomic.Int32

	ws := NewWorkers(logger.Nop(), blockingWorker(&stopped))
	ws.Add(WorkerFunc(func(context.Context) error { return boom }))

	err := ws.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if stopped.Load() != 1 {
		t.Error("blocking worker was not stopped")
	}
}

func TestWorkers_Run_CleanExitStopsOthers(t *testing.T) {
	var stopped atomic.Int32
	ws := NewWorkers(logger.Nop(),
		blockingWorker(&stopped),
		WorkerFunc(func(context.Context) error { return nil }),
	)

	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stopped.Load() != 1 {
		t.Error("a finished UI must stop the bridge")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())
	ws.Add(nil)

	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
