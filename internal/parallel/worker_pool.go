// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"clause-check/internal/clause"
	"clause-check/internal/compare"
	"clause-check/internal/observability"
)

// WorkerPool runs candidate document comparisons in parallel. Each job
// reads the shared etalon map and configuration; nothing is written
// concurrently, so no locking beyond the channels is needed.
type WorkerPool struct {
	workers  int
	jobs     chan *Job
	results  chan *Result
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	observer *observability.StandardObserver
}

// Job is one candidate document to compare.
type Job struct {
	Path     string
	Etalon   *clause.Map
	Comparer *compare.Comparer
}

// Result wraps the comparison outcome with timing.
type Result struct {
	Result   compare.Result
	Duration time.Duration
}

// NewWorkerPool creates a pool. Workers <= 0 defaults to NumCPU.
func NewWorkerPool(workers int, observer *observability.StandardObserver) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		workers:  workers,
		jobs:     make(chan *Job, workers*2),
		results:  make(chan *Result, workers*2),
		ctx:      ctx,
		cancel:   cancel,
		observer: observer,
	}
}

// Start initializes worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// Stop gracefully shuts down the worker pool
func (wp *WorkerPool) Stop() {
	close(wp.jobs)
	wp.wg.Wait()
	close(wp.results)
	wp.cancel()
}

// Submit adds a job to the queue
func (wp *WorkerPool) Submit(job *Job) {
	select {
	case wp.jobs <- job:
	case <-wp.ctx.Done():
	}
}

// Results returns the results channel
func (wp *WorkerPool) Results() <-chan *Result {
	return wp.results
}

// worker processes jobs from the queue
func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for job := range wp.jobs {
		result := wp.processJob(job, id)

		select {
		case wp.results <- result:
		case <-wp.ctx.Done():
			return
		}
	}
}

func (wp *WorkerPool) processJob(job *Job, workerID int) *Result {
	start := time.Now()

	var finish func(bool, map[string]interface{})
	if wp.observer != nil {
		finish = wp.observer.StartTiming("worker_pool", "process_job", job.Path)
	}

	outcome := job.Comparer.CompareDocument(job.Etalon, job.Path)
	duration := time.Since(start)

	if finish != nil {
		finish(true, map[string]interface{}{
			"worker_id":   workerID,
			"status":      string(outcome.Status),
			"diff_count":  len(outcome.Diffs),
			"duration_ms": duration.Milliseconds(),
		})
	}

	return &Result{Result: outcome, Duration: duration}
}

// ProcessDocuments compares every candidate against the etalon using up
// to workers goroutines and returns the results sorted by document name.
func ProcessDocuments(comparer *compare.Comparer, etalon *clause.Map, paths []string, workers int, observer *observability.StandardObserver) []compare.Result {
	if len(paths) == 0 {
		return nil
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	pool := NewWorkerPool(workers, observer)
	pool.Start()

	go func() {
		for _, path := range paths {
			pool.Submit(&Job{Path: path, Etalon: etalon, Comparer: comparer})
		}
		pool.Stop()
	}()

	results := make([]compare.Result, 0, len(paths))
	for r := range pool.Results() {
		results = append(results, r.Result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results
}
