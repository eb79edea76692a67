package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/currency"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/numbering"
	"github.com/sjperalta/contratus-api/internal/observability"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/statemachine"
	"github.com/sjperalta/contratus-api/internal/storage"
	"github.com/sjperalta/contratus-api/pkg/logger"
)

var contractIndexes = []string{repository.ContractNumberIndex, repository.ContractProposalIndex}

// FileStore saves uploaded and generated files. *storage.LocalStorage implements it.
type FileStore interface {
	Upload(file multipart.File, header *multipart.FileHeader, subDir string) (string, error)
	UploadFromBytes(data []byte, filename string, subDir string) (string, error)
}

type ContractService struct {
	repos           *repository.Repositories
	tx              repository.Transactor
	settings        SettingsSource
	files           FileStore
	jobs            Enqueuer
	notificationSvc *NotificationService
	emailSvc        *EmailService
	auditSvc        *AuditService
	metrics         *observability.Metrics
	numberer        Numberer
	now             func() time.Time
}

func NewContractService(
	repos *repository.Repositories,
	tx repository.Transactor,
	settings SettingsSource,
	files FileStore,
	jobs Enqueuer,
	notificationSvc *NotificationService,
	emailSvc *EmailService,
	auditSvc *AuditService,
	numberer Numberer,
	metrics *observability.Metrics,
) *ContractService {
	return &ContractService{
		repos:           repos,
		tx:              tx,
		settings:        settings,
		files:           files,
		jobs:            jobs,
		notificationSvc: notificationSvc,
		emailSvc:        emailSvc,
		auditSvc:        auditSvc,
		metrics:         metrics,
		numberer:        numberer,
		now:             time.Now,
	}
}

// Witnesses are the two people signing alongside the parties
type Witnesses struct {
	Witness1Name string `json:"witness1_name"`
	Witness1CPF  string `json:"witness1_cpf"`
	Witness2Name string `json:"witness2_name"`
	Witness2CPF  string `json:"witness2_cpf"`
}

// normalize trims names and formats CPFs, rejecting malformed ones
func (w Witnesses) normalize() (Witnesses, error) {
	w.Witness1Name = strings.TrimSpace(w.Witness1Name)
	w.Witness2Name = strings.TrimSpace(w.Witness2Name)
	for i, cpf := range []*string{&w.Witness1CPF, &w.Witness2CPF} {
		if strings.TrimSpace(*cpf) == "" {
			*cpf = ""
			continue
		}
		if !models.ValidCPF(*cpf) {
			return w, validationError("CPF da testemunha %d inválido", i+1)
		}
		*cpf = models.FormatCPF(*cpf)
	}
	return w, nil
}

// DeriveContractInput carries the contract terms that are not copied from the proposal
type DeriveContractInput struct {
	Witnesses
	SignatureDate *time.Time
	ValidityDays  int
	ExtensionDays int
	Notes         string
}

// ContractDetailsInput edits the non-financial terms of a contract
type ContractDetailsInput struct {
	Witnesses
	SignatureDate *time.Time
	ValidityDays  *int
	ExtensionDays *int
	Notes         *string
}

// List returns the contracts visible to policy
func (s *ContractService) List(ctx context.Context, policy access.Policy, query *repository.ContractQuery) ([]models.Contract, int64, error) {
	query.Scope = policy.Visible(access.Contracts)
	return s.repos.Contract.List(ctx, query)
}

// FindByID loads a contract with its details when the caller may see it
func (s *ContractService) FindByID(ctx context.Context, policy access.Policy, id uint) (*models.Contract, error) {
	contract, err := s.repos.Contract.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, lookupError(err, "contrato não encontrado")
	}
	if err := authorize(policy, access.OwnerOf(&contract.Agent), "contrato fora do seu escopo de acesso"); err != nil {
		return nil, err
	}
	return contract, nil
}

// snapshot copies the proposal's values into a new contract. Later edits
// to the proposal never reach the contract.
func snapshot(p *models.Proposal) *models.Contract {
	return &models.Contract{
		ProposalID:        p.ID,
		DevelopmentID:     p.DevelopmentID,
		UnitID:            p.UnitID,
		ClientID:          p.ClientID,
		AgentID:           p.AgentID,
		EngineeringCost:   p.EngineeringCost,
		PropertyValue:     p.PropertyValue,
		FinancingAmount:   p.FinancingAmount,
		SubsidyAmount:     p.SubsidyAmount,
		FGTSAmount:        p.FGTSAmount,
		SignalAmount:      p.SignalAmount,
		DownPayment:       p.DownPayment,
		BasePrice:         p.BasePrice,
		ClientInstallment: p.ClientInstallment,
		MarkedUpTotal:     p.MarkedUpTotal,
		InstallmentCount:  p.InstallmentCount,
		TotalApproval:     p.TotalApproval,
		Status:            models.ContractStatusActive,
	}
}

// CreateFromProposal derives the contract of an approved proposal. The unit
// is sold, the first history entry and the agent's commission are written
// in the same transaction. Deriving twice returns the existing contract
// with created set to false.
func (s *ContractService) CreateFromProposal(ctx context.Context, policy access.Policy, proposalID uint, in DeriveContractInput) (contract *models.Contract, created bool, err error) {
	witnesses, err := in.Witnesses.normalize()
	if err != nil {
		return nil, false, err
	}
	if in.ValidityDays < 0 || in.ExtensionDays < 0 {
		return nil, false, validationError("prazos devem ser positivos")
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, false, err
	}

	err = s.numberer.run(ctx, "contract", contractIndexes, func() error {
		contract, created = nil, false
		return s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
			proposal, err := tx.Proposal.FindForUpdate(ctx, proposalID)
			if err != nil {
				return lookupError(err, "proposta não encontrada")
			}
			if err := authorize(policy, access.OwnerOf(&proposal.Agent), "proposta fora do seu escopo de acesso"); err != nil {
				return err
			}

			if proposal.HasContract() {
				contract = proposal.Contract
				return nil
			}
			if proposal.Status != models.ProposalStatusApproved {
				return preconditionError("apenas propostas aprovadas geram contrato (status atual: %s)", proposal.Status)
			}

			unit, err := tx.Unit.FindForUpdate(ctx, proposal.UnitID)
			if err != nil {
				return lookupError(err, "unidade não encontrada")
			}
			if !unit.ReservedFor(proposal.ID) {
				return preconditionError("a unidade %s não está reservada para esta proposta", unit.Label())
			}
			if err := statemachine.NewUnitFSM(unit).Sell(ctx); err != nil {
				return preconditionError("a unidade %s não está reservada para esta proposta", unit.Label())
			}
			if err := tx.Unit.UpdateStatus(ctx, unit.ID, unit.Status, unit.ReservedByProposalID); err != nil {
				return err
			}

			number, err := numbering.Next(ctx, tx.Contract, models.ContractNumberPrefix, s.now().Year())
			if err != nil {
				return err
			}

			c := snapshot(proposal)
			c.Number = number
			c.SignatureDate = today()
			if in.SignatureDate != nil {
				c.SignatureDate = *in.SignatureDate
			}
			c.ValidityDays = in.ValidityDays
			if c.ValidityDays == 0 {
				c.ValidityDays = settings.DefaultContractValidity
			}
			c.ExtensionDays = in.ExtensionDays
			if c.ExtensionDays == 0 {
				c.ExtensionDays = settings.DefaultContractExtension
			}
			c.ComputeDueDate()
			c.Witness1Name, c.Witness1CPF = witnesses.Witness1Name, witnesses.Witness1CPF
			c.Witness2Name, c.Witness2CPF = witnesses.Witness2Name, witnesses.Witness2CPF
			c.Notes = in.Notes

			if err := tx.Contract.Create(ctx, c); err != nil {
				return err
			}

			actorID := policy.UserID()
			if err := tx.ContractHistory.Create(ctx, &models.ContractHistory{
				ContractID: c.ID,
				ActorID:    &actorID,
				NewStatus:  c.Status,
				Note:       fmt.Sprintf("Contrato gerado a partir da proposta %s", proposal.Number),
			}); err != nil {
				return err
			}

			commission := &models.Commission{
				ContractID: c.ID,
				AgentID:    c.AgentID,
				BaseValue:  c.PropertyValue,
				Percentage: settings.BrokerageFeeFor(&proposal.Development),
				Status:     models.CommissionStatusPending,
			}
			commission.Calculate()
			if err := tx.Commission.Create(ctx, commission); err != nil {
				return err
			}

			if err := tx.Development.RefreshAvailableUnits(ctx, c.DevelopmentID); err != nil {
				return err
			}

			contract, created = c, true
			return nil
		})
	})
	if err != nil {
		return nil, false, err
	}

	s.metrics.IncContractDerived(created)
	if created {
		s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionCreate, "Contract", contract.ID,
			fmt.Sprintf("Contrato %s gerado. Valor: %s", contract.Number, currency.Format(contract.PropertyValue)))
		s.announce(contract.ID, contract.AgentID, contract.Number)
	}

	detailed, err := s.repos.Contract.FindByIDWithDetails(ctx, contract.ID)
	if err != nil {
		return nil, false, err
	}
	return detailed, created, nil
}

func (s *ContractService) announce(id, agentID uint, number string) {
	s.jobs.EnqueueAsync(func(ctx context.Context) error {
		if err := s.notificationSvc.NotifyAgentAndManager(ctx, agentID,
			"Contrato gerado",
			fmt.Sprintf("O contrato %s foi gerado", number),
			models.NotificationTypeContractCreated); err != nil {
			logger.Error(fmt.Sprintf("[Contract] notify %s: %v", number, err))
		}
		contract, err := s.repos.Contract.FindByIDWithDetails(ctx, id)
		if err != nil {
			return err
		}
		return s.emailSvc.SendContractCreated(ctx, contract)
	})
}

// ChangeStatus moves a contract along its lifecycle and appends a history
// entry. Cancelling or rescinding also cancels an unpaid commission.
func (s *ContractService) ChangeStatus(ctx context.Context, policy access.Policy, id uint, status, note string) (*models.Contract, error) {
	if !models.ValidContractStatus(status) {
		return nil, validationError("status de contrato desconhecido: %s", status)
	}

	var previous string
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		contract, err := tx.Contract.FindForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, "contrato não encontrado")
		}
		if err := authorize(policy, access.OwnerOf(&contract.Agent), "contrato fora do seu escopo de acesso"); err != nil {
			return err
		}

		previous = contract.Status
		if err := statemachine.NewContractFSM(contract).TransitionTo(ctx, status); err != nil {
			if errors.Is(err, statemachine.ErrInvalidTransition) {
				return preconditionError("%s", err.Error())
			}
			return err
		}

		switch status {
		case models.ContractStatusFinalized:
			now := s.now()
			contract.FinalizedAt = &now
		case models.ContractStatusCancelled, models.ContractStatusRescinded:
			if note != "" {
				contract.CancellationReason = &note
			}
		}

		if err := tx.Contract.Update(ctx, contract); err != nil {
			return err
		}

		actorID := policy.UserID()
		if err := tx.ContractHistory.Create(ctx, &models.ContractHistory{
			ContractID:     contract.ID,
			ActorID:        &actorID,
			PreviousStatus: previous,
			NewStatus:      contract.Status,
			Note:           note,
		}); err != nil {
			return err
		}

		if contract.IsClosed() {
			if err := cancelCommission(ctx, tx, contract.ID); err != nil {
				return err
			}
		}

		return tx.Development.RefreshAvailableUnits(ctx, contract.DevelopmentID)
	})
	if err != nil {
		return nil, err
	}

	contract, err := s.repos.Contract.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionStatus, "Contract", id,
		fmt.Sprintf("Contrato %s: %s → %s", contract.Number, previous, status))

	agentID, number, label := contract.AgentID, contract.Number, contract.StatusLabel()
	s.jobs.EnqueueAsync(func(ctx context.Context) error {
		return s.notificationSvc.NotifyAgentAndManager(ctx, agentID,
			"Status do contrato alterado",
			fmt.Sprintf("O contrato %s agora está: %s", number, label),
			models.NotificationTypeContractStatus)
	})
	return contract, nil
}

func cancelCommission(ctx context.Context, tx *repository.Repositories, contractID uint) error {
	commission, err := tx.Commission.FindByContract(ctx, contractID)
	if repository.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := statemachine.NewCommissionFSM(commission).Cancel(ctx); err != nil {
		// a paid commission stays paid
		return nil
	}
	return tx.Commission.Update(ctx, commission)
}

// UpdateDetails edits witnesses, notes and dates of an open contract.
// Financial values stay as derived.
func (s *ContractService) UpdateDetails(ctx context.Context, policy access.Policy, id uint, in ContractDetailsInput) (*models.Contract, error) {
	witnesses, err := in.Witnesses.normalize()
	if err != nil {
		return nil, err
	}

	if in.ValidityDays != nil && *in.ValidityDays <= 0 {
		return nil, validationError("validade deve ser positiva")
	}
	if in.ExtensionDays != nil && *in.ExtensionDays < 0 {
		return nil, validationError("prorrogação não pode ser negativa")
	}

	var number string
	err = s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		contract, err := tx.Contract.FindForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, "contrato não encontrado")
		}
		if err := authorize(policy, access.OwnerOf(&contract.Agent), "contrato fora do seu escopo de acesso"); err != nil {
			return err
		}
		if contract.IsClosed() {
			return preconditionError("o contrato %s está encerrado", contract.Number)
		}

		contract.Witness1Name, contract.Witness1CPF = witnesses.Witness1Name, witnesses.Witness1CPF
		contract.Witness2Name, contract.Witness2CPF = witnesses.Witness2Name, witnesses.Witness2CPF
		if in.Notes != nil {
			contract.Notes = *in.Notes
		}
		if in.SignatureDate != nil {
			contract.SignatureDate = *in.SignatureDate
		}
		if in.ValidityDays != nil {
			contract.ValidityDays = *in.ValidityDays
		}
		if in.ExtensionDays != nil {
			contract.ExtensionDays = *in.ExtensionDays
		}
		contract.ComputeDueDate()

		number = contract.Number
		return tx.Contract.Update(ctx, contract)
	})
	if err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionUpdate, "Contract", id,
		fmt.Sprintf("Dados do contrato %s atualizados", number))
	return s.repos.Contract.FindByIDWithDetails(ctx, id)
}

// UploadSigned stores the scanned signed contract
func (s *ContractService) UploadSigned(ctx context.Context, policy access.Policy, id uint, file multipart.File, header *multipart.FileHeader) (*models.Contract, error) {
	contract, err := s.repos.Contract.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "contrato não encontrado")
	}
	if err := authorize(policy, access.OwnerOf(&contract.Agent), "contrato fora do seu escopo de acesso"); err != nil {
		return nil, err
	}

	if header.Size > storage.MaxFileSize() {
		return nil, validationError("arquivo excede o tamanho máximo de 10 MB")
	}
	if !storage.IsValidContentType(header.Header.Get("Content-Type")) {
		return nil, validationError("tipo de arquivo não permitido, envie PDF, JPG ou PNG")
	}

	path, err := s.files.Upload(file, header, "contracts/signed")
	if err != nil {
		return nil, fmt.Errorf("failed to store signed contract: %w", err)
	}
	if err := s.repos.Contract.SetDocumentPath(ctx, id, "signed_document_path", path); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionUpdate, "Contract", id,
		fmt.Sprintf("Contrato assinado anexado ao %s", contract.Number))
	return s.repos.Contract.FindByIDWithDetails(ctx, id)
}

// History lists the status changes of a contract, oldest first
func (s *ContractService) History(ctx context.Context, policy access.Policy, id uint) ([]models.ContractHistory, error) {
	contract, err := s.repos.Contract.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "contrato não encontrado")
	}
	if err := authorize(policy, access.OwnerOf(&contract.Agent), "contrato fora do seu escopo de acesso"); err != nil {
		return nil, err
	}
	return s.repos.ContractHistory.FindByContract(ctx, id)
}

// AvailableStatuses lists the statuses the contract may move to next
func (s *ContractService) AvailableStatuses(contract *models.Contract) []string {
	return statemachine.NewContractFSM(contract).Available()
}
