package services

import (
	"context"
	"fmt"

	"github.com/sjperalta/contratus-api/internal/jobs"
	"github.com/sjperalta/contratus-api/internal/observability"
	"github.com/sjperalta/contratus-api/pkg/logger"
)

// JobStatus summarizes the background worker and the work it runs
type JobStatus struct {
	ActiveJobs      int     `json:"active_jobs"`
	FinishedJobs    int64   `json:"finished_jobs"`
	FailedJobs      int64   `json:"failed_jobs"`
	MaxConcurrent   int     `json:"max_concurrent"`
	ExpiryRuns      float64 `json:"expiry_runs"`
	ExpiryFailures  float64 `json:"expiry_failures"`
	DocumentsOK     float64 `json:"documents_ok"`
	DocumentsFailed float64 `json:"documents_failed"`
}

// JobService exposes the worker to administrators: its counters and an
// on-demand run of the proposal expiry.
type JobService struct {
	worker  *jobs.Worker
	metrics *observability.Metrics
	expire  func(ctx context.Context) (int, error)
}

func NewJobService(worker *jobs.Worker, metrics *observability.Metrics, expire func(ctx context.Context) (int, error)) *JobService {
	return &JobService{
		worker:  worker,
		metrics: metrics,
		expire:  expire,
	}
}

func (s *JobService) GetStatus() JobStatus {
	stats := s.worker.GetStats()
	return JobStatus{
		ActiveJobs:      stats.ActiveJobs,
		FinishedJobs:    stats.FinishedJobs,
		FailedJobs:      stats.FailedJobs,
		MaxConcurrent:   stats.MaxConcurrent,
		ExpiryRuns:      s.metrics.JobCount(JobExpireProposals, "ok"),
		ExpiryFailures:  s.metrics.JobCount(JobExpireProposals, "error"),
		DocumentsOK:     s.metrics.DocumentCount(DocumentContract, "ok") + s.metrics.DocumentCount(DocumentProposal, "ok"),
		DocumentsFailed: s.metrics.DocumentCount(DocumentContract, "error") + s.metrics.DocumentCount(DocumentProposal, "error"),
	}
}

// RunExpiry expires overdue proposals now instead of waiting for the hourly
// run, and counts it like a scheduled one.
func (s *JobService) RunExpiry(ctx context.Context, actorID uint) (int, error) {
	expired, err := s.expire(ctx)
	s.metrics.IncJob(JobExpireProposals, err)
	if err != nil {
		return 0, err
	}
	logger.Info(fmt.Sprintf("[Jobs] manual expiry by user %d expired %d proposals", actorID, expired))
	return expired, nil
}
