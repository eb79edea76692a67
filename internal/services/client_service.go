package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
)

// ClientService manages buyers. Agents see the clients they registered,
// managers those of their team.
type ClientService struct {
	repo         repository.ClientRepository
	proposalRepo repository.ProposalRepository
	auditSvc     *AuditService
}

func NewClientService(repo repository.ClientRepository, proposalRepo repository.ProposalRepository, auditSvc *AuditService) *ClientService {
	return &ClientService{repo: repo, proposalRepo: proposalRepo, auditSvc: auditSvc}
}

// ClientInfo is the client lookup used when filling a proposal
type ClientInfo struct {
	Client    *models.Client
	Proposals []models.Proposal
}

const clientScopeMessage = "cliente fora do seu escopo de acesso"

func (s *ClientService) List(ctx context.Context, policy access.Policy, query *repository.ClientQuery) ([]models.Client, int64, error) {
	query.Scope = policy.Visible(access.Clients)
	return s.repo.List(ctx, query)
}

func (s *ClientService) FindByID(ctx context.Context, policy access.Policy, id uint) (*models.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "cliente não encontrado")
	}
	if err := authorize(policy, access.OwnerOf(&client.RegisteredBy), clientScopeMessage); err != nil {
		return nil, err
	}
	return client, nil
}

// Info returns the client with the proposals the caller can see
func (s *ClientService) Info(ctx context.Context, policy access.Policy, id uint) (*ClientInfo, error) {
	client, err := s.FindByID(ctx, policy, id)
	if err != nil {
		return nil, err
	}
	query := &repository.ProposalQuery{
		ListQuery: repository.NewListQuery(),
		Scope:     policy.Visible(access.Proposals),
		ClientID:  id,
	}
	query.PerPage = 0
	proposals, _, err := s.proposalRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	return &ClientInfo{Client: client, Proposals: proposals}, nil
}

func validateClient(c *models.Client) error {
	c.FullName = strings.TrimSpace(c.FullName)
	if c.FullName == "" {
		return validationError("nome do cliente é obrigatório")
	}
	if !models.ValidCPF(c.CPF) {
		return validationError("CPF inválido")
	}
	c.CPF = models.FormatCPF(c.CPF)
	if strings.TrimSpace(c.Phone) == "" {
		return validationError("telefone é obrigatório")
	}
	if c.LeadSource == "" {
		c.LeadSource = models.LeadSourceOther
	}
	if !models.ValidLeadSource(c.LeadSource) {
		return validationError("origem do lead inválida: %s", c.LeadSource)
	}
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	return nil
}

func duplicateClient(err error) error {
	if repository.IsUniqueViolation(err) {
		return conflictError("já existe um cliente com este CPF")
	}
	return err
}

// Create registers a client owned by the caller
func (s *ClientService) Create(ctx context.Context, policy access.Policy, client *models.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}
	client.ID = 0
	client.RegisteredByID = policy.UserID()
	if err := s.repo.Create(ctx, client); err != nil {
		return duplicateClient(err)
	}
	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionCreate, "Client", client.ID,
		fmt.Sprintf("Cliente %s cadastrado", client.FullName))
	return nil
}

func (s *ClientService) Update(ctx context.Context, policy access.Policy, id uint, in *models.Client) (*models.Client, error) {
	client, err := s.FindByID(ctx, policy, id)
	if err != nil {
		return nil, err
	}
	if err := validateClient(in); err != nil {
		return nil, err
	}

	client.FullName = in.FullName
	client.CPF = in.CPF
	client.RG = in.RG
	client.BirthDate = in.BirthDate
	client.MaritalStatus = in.MaritalStatus
	client.Phone = in.Phone
	client.Email = in.Email
	client.Address = in.Address
	client.LeadSource = in.LeadSource
	client.Notes = in.Notes

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, duplicateClient(err)
	}
	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionUpdate, "Client", id,
		fmt.Sprintf("Cliente %s atualizado", client.FullName))
	return client, nil
}

// Delete removes a client that has no proposals
func (s *ClientService) Delete(ctx context.Context, policy access.Policy, id uint) error {
	client, err := s.FindByID(ctx, policy, id)
	if err != nil {
		return err
	}
	n, err := s.repo.CountProposals(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return preconditionError("o cliente possui %d proposta(s) e não pode ser excluído", n)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionDelete, "Client", id,
		fmt.Sprintf("Cliente %s excluído", client.FullName))
	return nil
}
