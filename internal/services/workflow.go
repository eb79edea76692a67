package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/config"
	"github.com/sjperalta/contratus-api/internal/jobs"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/observability"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/resilience"
	"github.com/sjperalta/contratus-api/pkg/logger"
)

// Enqueuer runs fire-and-forget work such as notifications and emails.
// *jobs.Worker implements it.
type Enqueuer interface {
	EnqueueAsync(job jobs.Job)
}

// SettingsSource hands out the current agency settings as a value.
// *SettingsService implements it.
type SettingsSource interface {
	Get(ctx context.Context) (models.Settings, error)
}

// Numberer retries a numbering transaction when a concurrent writer took
// the same number first.
type Numberer struct {
	attempts int
	backoff  time.Duration
	metrics  *observability.Metrics
}

func newNumberer(cfg *config.Config, metrics *observability.Metrics) Numberer {
	return Numberer{attempts: cfg.NumberingAttempts, backoff: cfg.NumberingBackoff, metrics: metrics}
}

// run executes fn, retrying on unique violations of indexes. A violation
// that survives every attempt becomes a conflict error.
func (n Numberer) run(ctx context.Context, entity string, indexes []string, fn func() error) error {
	cfg := resilience.RetryConfig{
		Attempts: n.attempts,
		Backoff:  n.backoff,
		OnRetry: func(attempt int, err error) {
			logger.Warn(fmt.Sprintf("[Numbering] %s attempt %d collided: %v", entity, attempt, err))
			n.metrics.IncNumberingRetry(entity)
		},
	}
	err := resilience.Retry(ctx, cfg, func(err error) bool {
		return repository.IsUniqueViolation(err, indexes...)
	}, fn)
	if repository.IsUniqueViolation(err, indexes...) {
		return conflictError("não foi possível gerar a numeração, tente novamente")
	}
	return err
}

// authorize fails with a permission error when policy may not act for owner
func authorize(policy access.Policy, owner access.Owner, message string) error {
	if policy == nil || !policy.Allows(owner) {
		return forbiddenError("%s", message)
	}
	return nil
}

// requireAdmin fails unless the policy is unrestricted
func requireAdmin(policy access.Policy) error {
	if !access.IsAdmin(policy) {
		return forbiddenError("apenas administradores podem executar esta operação")
	}
	return nil
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
