package services

import (
	"context"
	"fmt"

	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/pkg/logger"
)

type AuditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// Log records an audit entry. Failures are logged, never returned: a lost
// audit row must not undo the operation it describes.
func (s *AuditService) Log(ctx context.Context, userID uint, action, entity string, entityID uint, details, ip, userAgent string) {
	if s == nil || s.repo == nil {
		return
	}
	entry := &models.AuditLog{
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		logger.Error(fmt.Sprintf("[Audit] failed to record %s %s#%d: %v", action, entity, entityID, err))
	}
}

type requestInfoKey struct{}

type requestInfo struct {
	ip        string
	userAgent string
}

// WithRequestInfo attaches the caller's address and user agent to ctx so
// audit entries recorded further down can include them.
func WithRequestInfo(ctx context.Context, ip, userAgent string) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, requestInfo{ip: ip, userAgent: userAgent})
}

// Record is Log with the address and user agent taken from ctx
func (s *AuditService) Record(ctx context.Context, userID uint, action, entity string, entityID uint, details string) {
	info, _ := ctx.Value(requestInfoKey{}).(requestInfo)
	s.Log(ctx, userID, action, entity, entityID, details, info.ip, info.userAgent)
}

// List retrieves audit logs with filters
func (s *AuditService) List(ctx context.Context, query *repository.ListQuery) ([]models.AuditLog, int64, error) {
	return s.repo.List(ctx, query)
}
