package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
)

// TeamService manages teams. Membership only narrows what managers see.
type TeamService struct {
	repo     repository.TeamRepository
	userRepo repository.UserRepository
	tx       repository.Transactor
	auditSvc *AuditService
}

func NewTeamService(repo repository.TeamRepository, userRepo repository.UserRepository, tx repository.Transactor, auditSvc *AuditService) *TeamService {
	return &TeamService{repo: repo, userRepo: userRepo, tx: tx, auditSvc: auditSvc}
}

func (s *TeamService) FindByID(ctx context.Context, id uint) (*models.Team, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "equipe não encontrada")
	}
	return team, nil
}

func (s *TeamService) List(ctx context.Context, query *repository.ListQuery) ([]models.Team, int64, error) {
	return s.repo.List(ctx, query)
}

func (s *TeamService) validate(ctx context.Context, team *models.Team) error {
	team.Name = strings.TrimSpace(team.Name)
	if team.Name == "" {
		return validationError("nome da equipe é obrigatório")
	}
	if team.ManagerID == nil {
		return nil
	}
	manager, err := s.userRepo.FindByID(ctx, *team.ManagerID)
	if err != nil {
		return lookupError(err, "gerente não encontrado")
	}
	if !manager.IsManager() {
		return validationError("%s não tem o perfil de gerente", manager.FullName)
	}
	return nil
}

func duplicateTeam(err error) error {
	if repository.IsUniqueViolation(err) {
		return conflictError("já existe uma equipe com este nome")
	}
	return err
}

func (s *TeamService) Create(ctx context.Context, team *models.Team, actorID uint) error {
	if err := s.validate(ctx, team); err != nil {
		return err
	}
	team.ID = 0
	team.Active = true
	if err := s.repo.Create(ctx, team); err != nil {
		return duplicateTeam(err)
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionCreate, "Team", team.ID,
		fmt.Sprintf("Equipe %s criada", team.Name))
	return nil
}

func (s *TeamService) Update(ctx context.Context, id uint, in *models.Team, actorID uint) (*models.Team, error) {
	team, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	team.Name = in.Name
	team.ManagerID = in.ManagerID
	team.Description = in.Description
	team.Active = in.Active
	if err := s.repo.Update(ctx, team); err != nil {
		return nil, duplicateTeam(err)
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionUpdate, "Team", id,
		fmt.Sprintf("Equipe %s atualizada", team.Name))
	return s.FindByID(ctx, id)
}

// Delete removes the team and detaches its members
func (s *TeamService) Delete(ctx context.Context, id, actorID uint) error {
	team, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	err = s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.User.ClearTeam(ctx, id); err != nil {
			return err
		}
		return tx.Team.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionDelete, "Team", id,
		fmt.Sprintf("Equipe %s excluída (%d membro(s) desvinculados)", team.Name, len(team.Members)))
	return nil
}
