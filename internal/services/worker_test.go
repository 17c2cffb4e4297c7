package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"alfredoptarigan/resume-extractor/internal/models"
)

type recordingResumeService struct {
	mu   sync.Mutex
	seen []string
}

func (r *recordingResumeService) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	r.mu.Lock()
	r.seen = append(r.seen, req.FilePath)
	r.mu.Unlock()

	if strings.Contains(req.FilePath, "broken") {
		return nil, errors.New("malformed document")
	}
	return &IngestResult{Student: &models.Student{ID: uuid.New()}}, nil
}

func TestWorkerDrainsQueueAndSurvivesFailures(t *testing.T) {
	svc := &recordingResumeService{}
	w := NewWorker(svc, 3, 2)
	w.Start(context.Background())

	paths := []string{"a.pdf", "broken.pdf", "b.docx", "c.pdf", "broken.docx", "d.pdf"}
	for _, p := range paths {
		if err := w.EnqueueJob(IngestRequest{FilePath: p}); err != nil {
			t.Fatalf("EnqueueJob(%s) error = %v", p, err)
		}
	}
	w.Stop()

	stats := w.Stats()
	if stats.Succeeded != 4 || stats.Failed != 2 {
		t.Errorf("Stats() = %+v, want 4 succeeded and 2 failed", stats)
	}
	if len(svc.seen) != len(paths) {
		t.Errorf("processed %d jobs, want %d", len(svc.seen), len(paths))
	}
}

func TestWorkerRejectsJobsAfterStop(t *testing.T) {
	w := NewWorker(&recordingResumeService{}, 1, 1)
	w.Start(context.Background())
	w.Stop()
	w.Stop()

	if err := w.EnqueueJob(IngestRequest{FilePath: "late.pdf"}); !errors.Is(err, ErrWorkerStopped) {
		t.Errorf("EnqueueJob() error = %v, want ErrWorkerStopped", err)
	}
}
