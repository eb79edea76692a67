package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/pkg/logger"
)

type NotificationService struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
}

func NewNotificationService(repo repository.NotificationRepository, userRepo repository.UserRepository) *NotificationService {
	return &NotificationService{repo: repo, userRepo: userRepo}
}

func (s *NotificationService) FindByUser(ctx context.Context, userID uint, query *repository.ListQuery) ([]models.Notification, int64, error) {
	return s.repo.FindByUser(ctx, userID, query)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// owned loads a notification and checks it belongs to userID
func (s *NotificationService) owned(ctx context.Context, userID, id uint) (*models.Notification, error) {
	notification, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, notFoundError("notificação não encontrada")
		}
		return nil, err
	}
	if notification.UserID != userID {
		return nil, forbiddenError("esta notificação pertence a outro usuário")
	}
	return notification, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID, id uint) (*models.Notification, error) {
	notification, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if notification.IsRead() {
		return notification, nil
	}
	notification.MarkAsRead(time.Now())
	if err := s.repo.Update(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uint) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *NotificationService) NotifyUser(ctx context.Context, userID uint, title, message, notifType string) error {
	notification := &models.Notification{
		UserID:  userID,
		Kind:    notifType,
		Title:   title,
		Message: message,
	}
	return s.repo.Create(ctx, notification)
}

func (s *NotificationService) NotifyAdmins(ctx context.Context, title, message, notifType string) error {
	admins, err := s.userRepo.FindAdmins(ctx)
	if err != nil {
		return err
	}
	for _, admin := range admins {
		if err := s.NotifyUser(ctx, admin.ID, title, message, notifType); err != nil {
			logger.Error(fmt.Sprintf("[Notification] admin %d: %v", admin.ID, err))
		}
	}
	return nil
}

// NotifyAgentAndManager notifies an agent and the manager of the agent's team
func (s *NotificationService) NotifyAgentAndManager(ctx context.Context, agentID uint, title, message, notifType string) error {
	if err := s.NotifyUser(ctx, agentID, title, message, notifType); err != nil {
		return err
	}

	agent, err := s.userRepo.FindByID(ctx, agentID)
	if err != nil {
		return err
	}
	if agent.Team == nil || agent.Team.ManagerID == nil || *agent.Team.ManagerID == agentID {
		return nil
	}
	return s.NotifyUser(ctx, *agent.Team.ManagerID, title, message, notifType)
}
