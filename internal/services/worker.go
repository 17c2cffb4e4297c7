package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
)

var ErrWorkerStopped = errors.New("worker stopped")

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(job IngestRequest) error
	Stats() WorkerStats
}

type WorkerStats struct {
	Succeeded int64
	Failed    int64
}

// worker ingests résumés from a buffered queue with a fixed number of
// goroutines. A failing job is logged and counted; it never stops the pool.
type worker struct {
	resumeService ResumeService
	jobQueue      chan IngestRequest
	concurrency   int
	wg            sync.WaitGroup

	mu      sync.RWMutex
	stopped bool

	succeeded atomic.Int64
	failed    atomic.Int64
}

func NewWorker(
	resumeService ResumeService,
	concurrency int,
	queueSize int,
) Worker {
	if concurrency <= 0 {
		concurrency = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &worker{
		resumeService: resumeService,
		jobQueue:      make(chan IngestRequest, queueSize),
		concurrency:   concurrency,
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements Worker. Jobs already queued are drained before it returns.
func (w *worker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	log.Println("🛑 Stopping worker...")
	w.stopped = true
	close(w.jobQueue)
	w.mu.Unlock()

	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker. It blocks while the queue is full.
func (w *worker) EnqueueJob(job IngestRequest) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		log.Printf("⚠️  Worker stopped, cannot enqueue %s\n", job.FilePath)
		return ErrWorkerStopped
	}

	w.jobQueue <- job
	log.Printf("📥 Job %s enqueued\n", job.FilePath)
	return nil
}

// Stats implements Worker.
func (w *worker) Stats() WorkerStats {
	return WorkerStats{
		Succeeded: w.succeeded.Load(),
		Failed:    w.failed.Load(),
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for job := range w.jobQueue {
		log.Printf("👷 Worker #%d processing %s\n", workerID, job.FilePath)

		result, err := w.resumeService.Ingest(ctx, job)
		if err != nil {
			w.failed.Add(1)
			log.Printf("❌ Worker #%d failed to process %s: %v\n", workerID, job.FilePath, err)
			continue
		}

		w.succeeded.Add(1)
		log.Printf("✅ Worker #%d completed %s -> student %s\n", workerID, job.FilePath, result.Student.ID)
	}

	log.Printf("👷 Worker #%d stopped\n", workerID)
}
