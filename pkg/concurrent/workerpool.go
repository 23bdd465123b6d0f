// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package concurrent provides a small worker pool used to fan out
// independent storage and messaging operations.
package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// WorkerPool bounds the number of goroutines executing submitted tasks.
type WorkerPool struct {
	workerCount int
}

// NewWorkerPool creates a worker pool with the given concurrency limit.
func NewWorkerPool(workerCount int) *WorkerPool {
	if workerCount <= 0 {
		workerCount = 1
	}
	return &WorkerPool{workerCount: workerCount}
}

// Run executes all tasks and returns the first error encountered,
// cancelling any tasks that have not started yet.
func (wp *WorkerPool) Run(ctx context.Context, tasks ...func() error) error {
	if len(tasks) == 0 {
		return nil
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(wp.workerCount)

	for _, task := range tasks {
		task := task
		g.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}
			return task()
		})
	}

	return g.Wait()
}

// RunAll executes every task regardless of failures and returns the
// non-nil errors that occurred.
func (wp *WorkerPool) RunAll(ctx context.Context, tasks ...func() error) []error {
	if len(tasks) == 0 {
		return nil
	}

	errCh := make(chan error, len(tasks))

	g := new(errgroup.Group)
	g.SetLimit(wp.workerCount)

	for _, task := range tasks {
		task := task
		g.Go(func() error {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return nil
			default:
			}
			if err := task(); err != nil {
				errCh <- err
			}
			return nil
		})
	}

	// Errors are reported through the channel, never to the group.
	_ = g.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	return errs
}
