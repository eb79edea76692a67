package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/pkg/logger"
)

// MinPasswordLength is enforced on create and password changes
const MinPasswordLength = 8

// UserService handles user-related business logic
type UserService struct {
	repo         repository.UserRepository
	rtRepo       repository.RefreshTokenRepository
	jobs         Enqueuer
	emailService *EmailService
	notifier     *NotificationService
	auditSvc     *AuditService
}

func NewUserService(repo repository.UserRepository, rtRepo repository.RefreshTokenRepository, jobs Enqueuer, emailService *EmailService, notifier *NotificationService, auditSvc *AuditService) *UserService {
	return &UserService{
		repo:         repo,
		rtRepo:       rtRepo,
		jobs:         jobs,
		emailService: emailService,
		notifier:     notifier,
		auditSvc:     auditSvc,
	}
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "usuário não encontrado")
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
	return s.repo.List(ctx, query)
}

func duplicateUser(err error) error {
	if errors.Is(err, repository.ErrDuplicateEmail) || errors.Is(err, repository.ErrDuplicateCPF) {
		return conflictError("%s", err.Error())
	}
	return err
}

func validateUser(user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return validationError("e-mail inválido")
	}
	user.FullName = strings.TrimSpace(user.FullName)
	if user.FullName == "" {
		return validationError("nome é obrigatório")
	}
	if user.Role == "" {
		user.Role = models.RoleAgent
	}
	if !models.ValidRole(user.Role) {
		return validationError("perfil inválido: %s", user.Role)
	}
	if user.CPF != nil {
		if *user.CPF == "" {
			user.CPF = nil
		} else if !models.ValidCPF(*user.CPF) {
			return validationError("CPF inválido")
		} else {
			formatted := models.FormatCPF(*user.CPF)
			user.CPF = &formatted
		}
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return validationError("a senha deve ter pelo menos %d caracteres", MinPasswordLength)
	}
	return nil
}

// Create registers a user and sends the welcome email in the background
func (s *UserService) Create(ctx context.Context, user *models.User, password string, actorID uint) error {
	if err := validateUser(user); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	user.ID = 0
	user.EncryptedPassword = hashedPassword
	user.Status = models.StatusActive
	if err := s.repo.Create(ctx, user); err != nil {
		return duplicateUser(err)
	}

	created := *user
	s.jobs.EnqueueAsync(func(ctx context.Context) error {
		if err := s.emailService.SendAccountCreated(ctx, &created); err != nil {
			logger.Warn("[UserService] welcome email failed", "user_id", created.ID, "error", err)
		}
		return s.notifier.NotifyAdmins(ctx, "Novo usuário",
			fmt.Sprintf("%s (%s) foi cadastrado como %s", created.FullName, created.Email, roleLabel(created.Role)),
			models.NotificationTypeNewUser)
	})

	s.auditSvc.Record(ctx, actorID, models.AuditActionCreate, "User", user.ID,
		fmt.Sprintf("Usuário criado: %s (%s) - Perfil: %s", user.FullName, user.Email, user.Role))
	return nil
}

// Update edits profile, role and team. Changing the role or team revokes
// the user's sessions so the new scope applies on the next login.
func (s *UserService) Update(ctx context.Context, id uint, in *models.User, actorID uint) (*models.User, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateUser(in); err != nil {
		return nil, err
	}
	scopeChanged := user.Role != in.Role || !sameTeam(user.TeamID, in.TeamID)

	user.Email = in.Email
	user.FullName = in.FullName
	user.CPF = in.CPF
	user.CRECI = in.CRECI
	user.Phone = in.Phone
	user.Role = in.Role
	user.TeamID = in.TeamID
	user.Team = nil

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, duplicateUser(err)
	}
	if scopeChanged {
		if err := s.rtRepo.DeleteByUser(ctx, id); err != nil {
			return nil, err
		}
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionUpdate, "User", id,
		fmt.Sprintf("Usuário atualizado: %s", user.Email))
	return s.FindByID(ctx, id)
}

func sameTeam(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ToggleStatus activates or deactivates a user. Deactivation revokes every
// refresh token.
func (s *UserService) ToggleStatus(ctx context.Context, id uint, actorID uint) (*models.User, error) {
	if id == actorID {
		return nil, preconditionError("você não pode desativar a própria conta")
	}
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IsActive() {
		user.Status = models.StatusInactive
	} else {
		user.Status = models.StatusActive
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	if !user.IsActive() {
		if err := s.rtRepo.DeleteByUser(ctx, id); err != nil {
			return nil, err
		}
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionStatus, "User", id,
		fmt.Sprintf("Status alterado para %s", user.Status))
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !VerifyPassword(currentPassword, user.EncryptedPassword) {
		return ErrInvalidPassword
	}
	if err := s.setPassword(ctx, user, newPassword); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, userID, models.AuditActionUpdate, "User", userID, "Senha alterada pelo usuário")
	return nil
}

func (s *UserService) ForceChangePassword(ctx context.Context, userID uint, newPassword string, actorID uint) error {
	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.setPassword(ctx, user, newPassword); err != nil {
		return err
	}
	if err := s.rtRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionUpdate, "User", userID, "Senha redefinida por administrador")
	return nil
}

func (s *UserService) setPassword(ctx context.Context, user *models.User, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	user.EncryptedPassword = hashedPassword
	return s.repo.Update(ctx, user)
}

// ResendConfirmation sends the account-created email again
func (s *UserService) ResendConfirmation(ctx context.Context, userID uint) error {
	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	return s.emailService.SendAccountCreated(ctx, user)
}
