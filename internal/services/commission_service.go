package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/currency"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/statemachine"
)

// CommissionService manages the brokerage fees owed to agents
type CommissionService struct {
	repo            repository.CommissionRepository
	jobs            Enqueuer
	notificationSvc *NotificationService
	auditSvc        *AuditService
	now             func() time.Time
}

func NewCommissionService(repo repository.CommissionRepository, jobs Enqueuer, notificationSvc *NotificationService, auditSvc *AuditService) *CommissionService {
	return &CommissionService{
		repo:            repo,
		jobs:            jobs,
		notificationSvc: notificationSvc,
		auditSvc:        auditSvc,
		now:             time.Now,
	}
}

// CommissionInput edits the adjustable parts of a commission
type CommissionInput struct {
	Percentage          *decimal.Decimal `json:"percentage"`
	Deductions          *decimal.Decimal `json:"deductions"`
	ExpectedPaymentDate *time.Time       `json:"expected_payment_date"`
	PaymentMethod       *string          `json:"payment_method"`
	Notes               *string          `json:"notes"`
}

func (s *CommissionService) List(ctx context.Context, policy access.Policy, query *repository.CommissionQuery) ([]models.Commission, int64, error) {
	query.Scope = policy.Visible(access.Commissions)
	return s.repo.List(ctx, query)
}

func (s *CommissionService) FindByID(ctx context.Context, policy access.Policy, id uint) (*models.Commission, error) {
	commission, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "comissão não encontrada")
	}
	if err := authorize(policy, access.OwnerOf(&commission.Agent), "comissão fora do seu escopo de acesso"); err != nil {
		return nil, err
	}
	return commission, nil
}

// Update changes percentage, deductions and payment details of an unpaid
// commission. Gross and net are recomputed. Admin only.
func (s *CommissionService) Update(ctx context.Context, policy access.Policy, id uint, in CommissionInput) (*models.Commission, error) {
	if err := requireAdmin(policy); err != nil {
		return nil, err
	}
	commission, err := s.FindByID(ctx, policy, id)
	if err != nil {
		return nil, err
	}
	if !commission.MayCancel() {
		return nil, preconditionError("comissão %s não pode ser alterada", commission.Status)
	}
	status := commission.Status

	if in.Percentage != nil {
		if in.Percentage.IsNegative() || in.Percentage.GreaterThan(decimal.NewFromInt(100)) {
			return nil, validationError("percentual deve estar entre 0 e 100")
		}
		commission.Percentage = *in.Percentage
	}
	if in.Deductions != nil {
		if in.Deductions.IsNegative() {
			return nil, validationError("descontos não podem ser negativos")
		}
		commission.Deductions = *in.Deductions
	}
	if in.ExpectedPaymentDate != nil {
		commission.ExpectedPaymentDate = in.ExpectedPaymentDate
	}
	if in.PaymentMethod != nil {
		commission.PaymentMethod = *in.PaymentMethod
	}
	if in.Notes != nil {
		commission.Notes = *in.Notes
	}
	commission.Calculate()
	if commission.NetAmount.IsNegative() {
		return nil, validationError("descontos maiores que o valor bruto da comissão")
	}

	if err := s.save(ctx, commission, status); err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionUpdate, "Commission", id,
		fmt.Sprintf("Comissão atualizada. Líquido: %s", currency.Format(commission.NetAmount)))
	return commission, nil
}

// save writes commission unless another request moved it away from status
func (s *CommissionService) save(ctx context.Context, commission *models.Commission, status string) error {
	err := s.repo.UpdateFrom(ctx, commission, status)
	if errors.Is(err, repository.ErrStaleWrite) {
		return conflictError("a comissão foi alterada por outra operação, recarregue e tente novamente")
	}
	return err
}

func (s *CommissionService) fire(ctx context.Context, policy access.Policy, id uint, action string, event func(*statemachine.CommissionFSM) error, mutate func(*models.Commission)) (*models.Commission, error) {
	if err := requireAdmin(policy); err != nil {
		return nil, err
	}
	commission, err := s.FindByID(ctx, policy, id)
	if err != nil {
		return nil, err
	}
	status := commission.Status
	if err := event(statemachine.NewCommissionFSM(commission)); err != nil {
		if errors.Is(err, statemachine.ErrInvalidTransition) {
			return nil, preconditionError("%s", err.Error())
		}
		return nil, err
	}
	if mutate != nil {
		mutate(commission)
	}
	if err := s.save(ctx, commission, status); err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, policy.UserID(), action, "Commission", id,
		fmt.Sprintf("Comissão → %s (%s)", commission.Status, currency.Format(commission.NetAmount)))
	return commission, nil
}

// Approve releases a pending commission for payment
func (s *CommissionService) Approve(ctx context.Context, policy access.Policy, id uint) (*models.Commission, error) {
	return s.fire(ctx, policy, id, models.AuditActionApprove,
		func(f *statemachine.CommissionFSM) error { return f.Approve(ctx) }, nil)
}

// Pay records the payment of an approved commission
func (s *CommissionService) Pay(ctx context.Context, policy access.Policy, id uint, paidOn *time.Time, method string) (*models.Commission, error) {
	commission, err := s.fire(ctx, policy, id, models.AuditActionStatus,
		func(f *statemachine.CommissionFSM) error { return f.Pay(ctx) },
		func(c *models.Commission) {
			date := s.now()
			if paidOn != nil {
				date = *paidOn
			}
			c.PaymentDate = &date
			if method != "" {
				c.PaymentMethod = method
			}
		})
	if err != nil {
		return nil, err
	}

	agentID, amount := commission.AgentID, currency.Format(commission.NetAmount)
	s.jobs.EnqueueAsync(func(ctx context.Context) error {
		return s.notificationSvc.NotifyUser(ctx, agentID,
			"Comissão paga",
			fmt.Sprintf("Sua comissão de %s foi paga", amount),
			models.NotificationTypeCommissionPaid)
	})
	return commission, nil
}

// Cancel voids an unpaid commission
func (s *CommissionService) Cancel(ctx context.Context, policy access.Policy, id uint) (*models.Commission, error) {
	return s.fire(ctx, policy, id, models.AuditActionCancel,
		func(f *statemachine.CommissionFSM) error { return f.Cancel(ctx) }, nil)
}
