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
	"github.com/sjperalta/contratus-api/internal/numbering"
	"github.com/sjperalta/contratus-api/internal/observability"
	"github.com/sjperalta/contratus-api/internal/pricing"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/statemachine"
	"github.com/sjperalta/contratus-api/pkg/logger"
)

// JobExpireProposals is the name of the scheduled expiry job
const JobExpireProposals = "expire_proposals"

var proposalNumberIndexes = []string{repository.ProposalNumberIndex}

// ProposalService handles the negotiation side of a sale: opening a
// proposal against a unit, adjusting its values and answering it.
type ProposalService struct {
	repos           *repository.Repositories
	tx              repository.Transactor
	settings        SettingsSource
	jobs            Enqueuer
	notificationSvc *NotificationService
	emailSvc        *EmailService
	auditSvc        *AuditService
	metrics         *observability.Metrics
	numberer        Numberer
	now             func() time.Time
}

func NewProposalService(
	repos *repository.Repositories,
	tx repository.Transactor,
	settings SettingsSource,
	jobs Enqueuer,
	notificationSvc *NotificationService,
	emailSvc *EmailService,
	auditSvc *AuditService,
	numberer Numberer,
	metrics *observability.Metrics,
) *ProposalService {
	return &ProposalService{
		repos:           repos,
		tx:              tx,
		settings:        settings,
		jobs:            jobs,
		notificationSvc: notificationSvc,
		emailSvc:        emailSvc,
		auditSvc:        auditSvc,
		metrics:         metrics,
		numberer:        numberer,
		now:             time.Now,
	}
}

// ProposalValues are the amounts an agent negotiates with the client
type ProposalValues struct {
	EngineeringCost   decimal.Decimal `json:"engineering_cost"`
	PropertyValue     decimal.Decimal `json:"property_value"`
	FinancingAmount   decimal.Decimal `json:"financing_amount"`
	SubsidyAmount     decimal.Decimal `json:"subsidy_amount"`
	FGTSAmount        decimal.Decimal `json:"fgts_amount"`
	SignalAmount      decimal.Decimal `json:"signal_amount"`
	DownPayment       decimal.Decimal `json:"down_payment"`
	BasePrice         decimal.Decimal `json:"base_price"`
	ClientInstallment decimal.Decimal `json:"client_installment"`
}

func (v ProposalValues) inputs() pricing.Inputs {
	return pricing.Inputs{
		BasePrice:         v.BasePrice,
		ClientInstallment: v.ClientInstallment,
		Financing:         v.FinancingAmount,
		Subsidy:           v.SubsidyAmount,
		FGTS:              v.FGTSAmount,
	}
}

func (v ProposalValues) validate() error {
	for _, amount := range []decimal.Decimal{
		v.EngineeringCost, v.PropertyValue, v.SignalAmount, v.DownPayment, v.ClientInstallment,
	} {
		if amount.IsNegative() {
			return validationError("valores não podem ser negativos")
		}
	}
	return nil
}

// CreateProposalInput opens a proposal
type CreateProposalInput struct {
	ProposalValues
	DevelopmentID uint              `json:"development_id"`
	UnitID        uint              `json:"unit_id"`
	UnitTypeID    *uint             `json:"unit_type_id"`
	ClientID      uint              `json:"client_id"`
	AgentID       uint              `json:"agent_id"`
	ValidityDays  int               `json:"validity_days"`
	Notes         string            `json:"notes"`
	Overrides     pricing.Overrides `json:"overrides"`
}

// UpdateProposalInput changes the negotiated values of an open proposal
type UpdateProposalInput struct {
	ProposalValues
	ValidityDays int               `json:"validity_days"`
	Notes        string            `json:"notes"`
	Overrides    pricing.Overrides `json:"overrides"`
}

// pricingError keeps calculator messages but classifies them as validation
func pricingError(err error) error {
	if err == nil {
		return nil
	}
	return validationError("%s", err.Error())
}

// Pricing runs the calculator without storing anything
func (s *ProposalService) Pricing(in pricing.Inputs, o pricing.Overrides) (pricing.Result, error) {
	res, err := pricing.Plan{}.Apply(in, o)
	return res, pricingError(err)
}

// List returns the proposals visible to policy
func (s *ProposalService) List(ctx context.Context, policy access.Policy, query *repository.ProposalQuery) ([]models.Proposal, int64, error) {
	query.Scope = policy.Visible(access.Proposals)
	return s.repos.Proposal.List(ctx, query)
}

// FindByID loads a proposal the caller may see
func (s *ProposalService) FindByID(ctx context.Context, policy access.Policy, id uint) (*models.Proposal, error) {
	proposal, err := s.repos.Proposal.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "proposta não encontrada")
	}
	if err := authorize(policy, access.OwnerOf(&proposal.Agent), "proposta fora do seu escopo de acesso"); err != nil {
		return nil, err
	}
	return proposal, nil
}

// resolveAgent returns the agent the proposal will belong to. Only callers
// whose scope covers the chosen agent may assign someone else.
func (s *ProposalService) resolveAgent(ctx context.Context, policy access.Policy, agentID uint) (uint, error) {
	if agentID == 0 || agentID == policy.UserID() {
		return policy.UserID(), nil
	}
	agent, err := s.repos.User.FindByID(ctx, agentID)
	if err != nil {
		return 0, lookupError(err, "corretor não encontrado")
	}
	if !agent.IsActive() {
		return 0, validationError("corretor inativo")
	}
	if err := authorize(policy, access.OwnerOf(agent), "corretor fora do seu escopo de acesso"); err != nil {
		return 0, err
	}
	return agent.ID, nil
}

// Create opens a proposal and reserves its unit in the same transaction
func (s *ProposalService) Create(ctx context.Context, policy access.Policy, in CreateProposalInput) (*models.Proposal, error) {
	if in.DevelopmentID == 0 || in.UnitID == 0 || in.ClientID == 0 {
		return nil, validationError("empreendimento, unidade e cliente são obrigatórios")
	}
	if in.ValidityDays < 0 {
		return nil, validationError("validade deve ser positiva")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	result, err := pricing.Plan{}.Apply(in.inputs(), in.Overrides)
	if err != nil {
		return nil, pricingError(err)
	}

	agentID, err := s.resolveAgent(ctx, policy, in.AgentID)
	if err != nil {
		return nil, err
	}

	client, err := s.repos.Client.FindByID(ctx, in.ClientID)
	if err != nil {
		return nil, lookupError(err, "cliente não encontrado")
	}
	if err := authorize(policy, access.OwnerOf(&client.RegisteredBy), "cliente fora do seu escopo de acesso"); err != nil {
		return nil, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	validity := in.ValidityDays
	if validity == 0 {
		validity = settings.DefaultProposalValidity
	}

	var proposal *models.Proposal
	err = s.numberer.run(ctx, "proposal", proposalNumberIndexes, func() error {
		return s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
			unit, err := tx.Unit.FindForUpdate(ctx, in.UnitID)
			if err != nil {
				return lookupError(err, "unidade não encontrada")
			}
			if unit.DevelopmentID != in.DevelopmentID {
				return validationError("a unidade não pertence ao empreendimento informado")
			}
			if err := statemachine.NewUnitFSM(unit).Reserve(ctx); err != nil {
				return conflictError("unidade %s não está disponível", unit.Label())
			}

			number, err := numbering.Next(ctx, tx.Proposal, models.ProposalNumberPrefix, s.now().Year())
			if err != nil {
				return err
			}

			proposal = newProposal(in, unit, result)
			proposal.Number = number
			proposal.AgentID = agentID
			proposal.ValidityDays = validity
			if err := tx.Proposal.Create(ctx, proposal); err != nil {
				return err
			}
			return tx.Unit.UpdateStatus(ctx, unit.ID, unit.Status, &proposal.ID)
		})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncProposalCreated()
	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionCreate, "Proposal", proposal.ID,
		fmt.Sprintf("Proposta %s criada para o cliente %s. Valor: %s", proposal.Number, client.FullName, currency.Format(proposal.PropertyValue)))

	if agentID != policy.UserID() {
		id, number := proposal.ID, proposal.Number
		s.jobs.EnqueueAsync(func(ctx context.Context) error {
			return s.notificationSvc.NotifyUser(ctx, agentID,
				"Nova proposta atribuída",
				fmt.Sprintf("A proposta %s (#%d) foi atribuída a você", number, id),
				models.NotificationTypeProposalCreated)
		})
	}

	return s.repos.Proposal.FindByID(ctx, proposal.ID)
}

// newProposal copies the input, taking engineering cost, property value and
// unit type from the unit when the agent left them blank.
func newProposal(in CreateProposalInput, unit *models.Unit, result pricing.Result) *models.Proposal {
	p := &models.Proposal{
		DevelopmentID:     in.DevelopmentID,
		UnitID:            unit.ID,
		UnitTypeID:        in.UnitTypeID,
		ClientID:          in.ClientID,
		EngineeringCost:   in.EngineeringCost,
		PropertyValue:     in.PropertyValue,
		FinancingAmount:   in.FinancingAmount,
		SubsidyAmount:     in.SubsidyAmount,
		FGTSAmount:        in.FGTSAmount,
		SignalAmount:      in.SignalAmount,
		DownPayment:       in.DownPayment,
		BasePrice:         in.BasePrice,
		ClientInstallment: in.ClientInstallment,
		Notes:             in.Notes,
		Status:            models.ProposalStatusDraft,
	}
	if p.UnitTypeID == nil {
		p.UnitTypeID = unit.UnitTypeID
	}
	if p.EngineeringCost.IsZero() {
		p.EngineeringCost = unit.EngineeringCost()
	}
	if p.PropertyValue.IsZero() {
		p.PropertyValue = unit.EffectivePrice()
	}
	applyResult(p, result)
	return p
}

func applyResult(p *models.Proposal, r pricing.Result) {
	p.MarkedUpTotal = r.MarkedUpTotal
	p.InstallmentCount = r.InstallmentCount
	p.TotalApproval = r.TotalApproval
}

// planOf returns the stored inputs and figures of a proposal
func planOf(p *models.Proposal) pricing.Plan {
	return pricing.Plan{
		Inputs: pricing.Inputs{
			BasePrice:         p.BasePrice,
			ClientInstallment: p.ClientInstallment,
			Financing:         p.FinancingAmount,
			Subsidy:           p.SubsidyAmount,
			FGTS:              p.FGTSAmount,
		},
		Result: pricing.Result{
			MarkedUpTotal:    p.MarkedUpTotal,
			InstallmentCount: p.InstallmentCount,
			TotalApproval:    p.TotalApproval,
		},
	}
}

// Update changes the values of a draft or sent proposal. Derived figures
// are recomputed only when their own inputs changed.
func (s *ProposalService) Update(ctx context.Context, policy access.Policy, id uint, in UpdateProposalInput) (*models.Proposal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.ValidityDays < 0 {
		return nil, validationError("validade deve ser positiva")
	}

	var proposal *models.Proposal
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		p, err := tx.Proposal.FindForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, "proposta não encontrada")
		}
		if err := authorize(policy, access.OwnerOf(&p.Agent), "proposta fora do seu escopo de acesso"); err != nil {
			return err
		}
		if !p.IsEditable() {
			return preconditionError("a proposta %s não pode mais ser alterada", p.Number)
		}

		result, err := planOf(p).Apply(in.inputs(), in.Overrides)
		if err != nil {
			return pricingError(err)
		}

		p.EngineeringCost = in.EngineeringCost
		p.PropertyValue = in.PropertyValue
		p.FinancingAmount = in.FinancingAmount
		p.SubsidyAmount = in.SubsidyAmount
		p.FGTSAmount = in.FGTSAmount
		p.SignalAmount = in.SignalAmount
		p.DownPayment = in.DownPayment
		p.BasePrice = in.BasePrice
		p.ClientInstallment = in.ClientInstallment
		p.Notes = in.Notes
		if in.ValidityDays > 0 {
			p.ValidityDays = in.ValidityDays
		}
		applyResult(p, result)

		proposal = p
		return tx.Proposal.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionUpdate, "Proposal", proposal.ID,
		fmt.Sprintf("Proposta %s atualizada. Total: %s", proposal.Number, currency.Format(proposal.MarkedUpTotal)))
	return s.repos.Proposal.FindByID(ctx, id)
}

// transition fires event on a locked proposal and, when the proposal leaves
// negotiation, hands its reserved unit back.
func (s *ProposalService) transition(ctx context.Context, policy access.Policy, id uint, event string, mutate func(*models.Proposal)) (*models.Proposal, error) {
	var proposal *models.Proposal
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		p, err := tx.Proposal.FindForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, "proposta não encontrada")
		}
		if policy != nil {
			if err := authorize(policy, access.OwnerOf(&p.Agent), "proposta fora do seu escopo de acesso"); err != nil {
				return err
			}
		}

		if err := fireProposal(ctx, p, event); err != nil {
			if errors.Is(err, statemachine.ErrInvalidTransition) {
				return preconditionError("%s", err.Error())
			}
			return err
		}
		if mutate != nil {
			mutate(p)
		}
		if err := tx.Proposal.Update(ctx, p); err != nil {
			return err
		}

		if event != statemachine.ProposalEventSend && event != statemachine.ProposalEventApprove {
			if err := releaseUnit(ctx, tx, p); err != nil {
				return err
			}
		}
		proposal = p
		return nil
	})
	return proposal, err
}

func fireProposal(ctx context.Context, p *models.Proposal, event string) error {
	fsm := statemachine.NewProposalFSM(p)
	switch event {
	case statemachine.ProposalEventSend:
		return fsm.Send(ctx)
	case statemachine.ProposalEventApprove:
		return fsm.Approve(ctx)
	case statemachine.ProposalEventReject:
		return fsm.Reject(ctx)
	case statemachine.ProposalEventExpire:
		return fsm.Expire(ctx)
	case statemachine.ProposalEventCancel:
		return fsm.Cancel(ctx)
	}
	return fmt.Errorf("unknown proposal event %q", event)
}

// releaseUnit moves the unit back to available when p still holds its
// reservation. A unit reserved by another proposal is left alone.
func releaseUnit(ctx context.Context, tx *repository.Repositories, p *models.Proposal) error {
	unit, err := tx.Unit.FindForUpdate(ctx, p.UnitID)
	if err != nil {
		return err
	}
	if !p.ReleasesUnit(unit) {
		return nil
	}
	if err := statemachine.NewUnitFSM(unit).Release(ctx); err != nil {
		return err
	}
	return tx.Unit.UpdateStatus(ctx, unit.ID, unit.Status, nil)
}

// Send marks the proposal as presented to the client, starting its validity
func (s *ProposalService) Send(ctx context.Context, policy access.Policy, id uint) (*models.Proposal, error) {
	proposal, err := s.transition(ctx, policy, id, statemachine.ProposalEventSend, func(p *models.Proposal) {
		now := s.now()
		p.SentAt = &now
	})
	if err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionStatus, "Proposal", id,
		fmt.Sprintf("Proposta %s enviada ao cliente", proposal.Number))
	return s.repos.Proposal.FindByID(ctx, id)
}

// Approve records the client's acceptance. The unit stays reserved until a
// contract is derived.
func (s *ProposalService) Approve(ctx context.Context, policy access.Policy, id uint) (*models.Proposal, error) {
	proposal, err := s.transition(ctx, policy, id, statemachine.ProposalEventApprove, func(p *models.Proposal) {
		now := s.now()
		p.AnsweredAt = &now
	})
	if err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionApprove, "Proposal", id,
		fmt.Sprintf("Proposta %s aprovada", proposal.Number))
	s.announce(proposal, "Proposta aprovada", models.NotificationTypeProposalApproved)
	return s.repos.Proposal.FindByID(ctx, id)
}

// Reject records the client's refusal and releases the unit
func (s *ProposalService) Reject(ctx context.Context, policy access.Policy, id uint, reason string) (*models.Proposal, error) {
	proposal, err := s.transition(ctx, policy, id, statemachine.ProposalEventReject, func(p *models.Proposal) {
		now := s.now()
		p.AnsweredAt = &now
		if reason != "" {
			p.RejectionReason = &reason
		}
	})
	if err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionReject, "Proposal", id,
		fmt.Sprintf("Proposta %s recusada. Motivo: %s", proposal.Number, reason))
	s.announce(proposal, "Proposta recusada", models.NotificationTypeProposalRejected)
	return s.repos.Proposal.FindByID(ctx, id)
}

// Cancel withdraws a proposal that has no contract and releases the unit
func (s *ProposalService) Cancel(ctx context.Context, policy access.Policy, id uint) (*models.Proposal, error) {
	proposal, err := s.transition(ctx, policy, id, statemachine.ProposalEventCancel, nil)
	if err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionCancel, "Proposal", id,
		fmt.Sprintf("Proposta %s cancelada", proposal.Number))
	return s.repos.Proposal.FindByID(ctx, id)
}

// announce notifies the agent and mails them the answer
func (s *ProposalService) announce(p *models.Proposal, title, notifType string) {
	id, agentID, number := p.ID, p.AgentID, p.Number
	s.jobs.EnqueueAsync(func(ctx context.Context) error {
		if err := s.notificationSvc.NotifyAgentAndManager(ctx, agentID, title,
			fmt.Sprintf("A proposta %s foi respondida", number), notifType); err != nil {
			logger.Error(fmt.Sprintf("[Proposal] notify %s: %v", number, err))
		}
		proposal, err := s.repos.Proposal.FindByID(ctx, id)
		if err != nil {
			return err
		}
		return s.emailSvc.SendProposalAnswered(ctx, proposal)
	})
}

// ExpireOverdue expires sent proposals past their validity and releases
// their units. Each proposal is handled in its own transaction.
func (s *ProposalService) ExpireOverdue(ctx context.Context) (int, error) {
	now := s.now()
	overdue, err := s.repos.Proposal.FindOverdue(ctx, now)
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range overdue {
		id := overdue[i].ID
		p, err := s.transition(ctx, nil, id, statemachine.ProposalEventExpire, nil)
		if err != nil {
			logger.Warn(fmt.Sprintf("[Proposal] could not expire %s: %v", overdue[i].Number, err))
			continue
		}
		expired++

		agentID, number := p.AgentID, p.Number
		s.jobs.EnqueueAsync(func(ctx context.Context) error {
			return s.notificationSvc.NotifyAgentAndManager(ctx, agentID,
				"Proposta expirada",
				fmt.Sprintf("A proposta %s expirou sem resposta", number),
				models.NotificationTypeProposalExpired)
		})
	}

	if expired > 0 {
		logger.Info(fmt.Sprintf("[Proposal] expired %d overdue proposals", expired))
	}
	return expired, nil
}

// ExpireJob adapts ExpireOverdue to the worker scheduler
func (s *ProposalService) ExpireJob(ctx context.Context) error {
	_, err := s.ExpireOverdue(ctx)
	s.metrics.IncJob(JobExpireProposals, err)
	return err
}
