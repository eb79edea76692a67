package services

import (
	"context"
	"maps"
	"strings"
	"time"

	"github.com/sjperalta/contratus-api/internal/jobs"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"gorm.io/gorm"
)

// memStore is an in-memory database. Transactions snapshot it and restore
// the snapshot when fn fails, which is enough to observe rollbacks.
type memStore struct {
	users        map[uint]models.User
	clients      map[uint]models.Client
	units        map[uint]models.Unit
	unitTypes    map[uint]models.UnitType
	developments map[uint]models.Development
	proposals    map[uint]models.Proposal
	contracts    map[uint]models.Contract
	commissions  map[uint]models.Commission
	history      []models.ContractHistory
	refreshed    []uint
	nextID       uint

	failProposalCreate error
	// proposalCreateErrs are returned by successive proposal inserts
	proposalCreateErrs []error
	// beforeTx runs one entry per transaction, before it starts. It stands
	// in for a writer that committed first.
	beforeTx           []func()
}

func newMemStore() *memStore {
	return &memStore{
		users:        map[uint]models.User{},
		clients:      map[uint]models.Client{},
		units:        map[uint]models.Unit{},
		unitTypes:    map[uint]models.UnitType{},
		developments: map[uint]models.Development{},
		proposals:    map[uint]models.Proposal{},
		contracts:    map[uint]models.Contract{},
		commissions:  map[uint]models.Commission{},
		nextID:       100,
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

type memSnapshot struct {
	units        map[uint]models.Unit
	developments map[uint]models.Development
	proposals    map[uint]models.Proposal
	contracts    map[uint]models.Contract
	commissions  map[uint]models.Commission
	history      []models.ContractHistory
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		units:        maps.Clone(s.units),
		developments: maps.Clone(s.developments),
		proposals:    maps.Clone(s.proposals),
		contracts:    maps.Clone(s.contracts),
		commissions:  maps.Clone(s.commissions),
		history:      append([]models.ContractHistory(nil), s.history...),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.units = snap.units
	s.developments = snap.developments
	s.proposals = snap.proposals
	s.contracts = snap.contracts
	s.commissions = snap.commissions
	s.history = snap.history
}

func (s *memStore) repos() *repository.Repositories {
	return &repository.Repositories{
		User:            &memUserRepo{s: s},
		Client:          &memClientRepo{s: s},
		Unit:            &memUnitRepo{s: s},
		UnitType:        &memUnitTypeRepo{s: s},
		Proposal:        &memProposalRepo{s: s},
		Contract:        &memContractRepo{s: s},
		ContractHistory: &memHistoryRepo{s: s},
		Commission:      &memCommissionRepo{s: s},
		Development:     &memDevelopmentRepo{s: s},
	}
}

// Transaction implements repository.Transactor
func (s *memStore) Transaction(ctx context.Context, fn func(tx *repository.Repositories) error) error {
	if len(s.beforeTx) > 0 {
		hook := s.beforeTx[0]
		s.beforeTx = s.beforeTx[1:]
		if hook != nil {
			hook()
		}
	}
	snap := s.snapshot()
	if err := fn(s.repos()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type memUserRepo struct {
	repository.UserRepository
	s *memStore
}

func (r *memUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

type memClientRepo struct {
	repository.ClientRepository
	s *memStore
}

func (r *memClientRepo) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	c, ok := r.s.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c.RegisteredBy = r.s.users[c.RegisteredByID]
	return &c, nil
}

type memUnitRepo struct {
	repository.UnitRepository
	s *memStore
}

func (r *memUnitRepo) FindByID(ctx context.Context, id uint) (*models.Unit, error) {
	u, ok := r.s.units[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *memUnitRepo) FindForUpdate(ctx context.Context, id uint) (*models.Unit, error) {
	return r.FindByID(ctx, id)
}

func (r *memUnitRepo) UpdateStatus(ctx context.Context, id uint, status string, reservedBy *uint) error {
	u, ok := r.s.units[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Status = status
	u.ReservedByProposalID = nil
	if reservedBy != nil {
		holder := *reservedBy
		u.ReservedByProposalID = &holder
	}
	r.s.units[id] = u
	return nil
}

// Update writes the descriptive columns like the gorm repository does
func (r *memUnitRepo) Update(ctx context.Context, unit *models.Unit) error {
	u, ok := r.s.units[unit.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Identifier = unit.Identifier
	u.UnitTypeID = unit.UnitTypeID
	u.Floor = unit.Floor
	u.Block = unit.Block
	u.OverridePrice = unit.OverridePrice
	u.Notes = unit.Notes
	r.s.units[unit.ID] = u
	return nil
}

func (r *memUnitRepo) ExistingIdentifiers(ctx context.Context, developmentID uint, identifiers []string) (map[string]bool, error) {
	wanted := map[string]bool{}
	for _, id := range identifiers {
		wanted[id] = true
	}
	found := map[string]bool{}
	for _, u := range r.s.units {
		if u.DevelopmentID == developmentID && wanted[u.Identifier] {
			found[u.Identifier] = true
		}
	}
	return found, nil
}

func (r *memUnitRepo) CreateBatch(ctx context.Context, units []models.Unit) error {
	for i := range units {
		units[i].ID = r.s.id()
		r.s.units[units[i].ID] = units[i]
	}
	return nil
}

func (r *memUnitRepo) CountByDevelopment(ctx context.Context, developmentID uint) (int64, error) {
	var n int64
	for _, u := range r.s.units {
		if u.DevelopmentID == developmentID {
			n++
		}
	}
	return n, nil
}

type memUnitTypeRepo struct {
	repository.UnitTypeRepository
	s *memStore
}

func (r *memUnitTypeRepo) FindByID(ctx context.Context, id uint) (*models.UnitType, error) {
	t, ok := r.s.unitTypes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

type memProposalRepo struct {
	repository.ProposalRepository
	s *memStore
}

func (r *memProposalRepo) load(p models.Proposal) *models.Proposal {
	p.Unit = r.s.units[p.UnitID]
	p.Agent = r.s.users[p.AgentID]
	p.Client = r.s.clients[p.ClientID]
	p.Contract = nil
	for _, c := range r.s.contracts {
		if c.ProposalID == p.ID {
			c := c
			p.Contract = &c
		}
	}
	return &p
}

func (r *memProposalRepo) FindByID(ctx context.Context, id uint) (*models.Proposal, error) {
	p, ok := r.s.proposals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.load(p), nil
}

func (r *memProposalRepo) FindForUpdate(ctx context.Context, id uint) (*models.Proposal, error) {
	return r.FindByID(ctx, id)
}

func (r *memProposalRepo) Create(ctx context.Context, p *models.Proposal) error {
	if r.s.failProposalCreate != nil {
		return r.s.failProposalCreate
	}
	if len(r.s.proposalCreateErrs) > 0 {
		err := r.s.proposalCreateErrs[0]
		r.s.proposalCreateErrs = r.s.proposalCreateErrs[1:]
		if err != nil {
			return err
		}
	}
	p.ID = r.s.id()
	p.CreatedAt = time.Now()
	r.s.proposals[p.ID] = *p
	return nil
}

func (r *memProposalRepo) Update(ctx context.Context, p *models.Proposal) error {
	r.s.proposals[p.ID] = *p
	return nil
}

func (r *memProposalRepo) LatestNumber(ctx context.Context, prefix string) (string, error) {
	latest := ""
	for _, p := range r.s.proposals {
		if strings.HasPrefix(p.Number, prefix) && p.Number > latest {
			latest = p.Number
		}
	}
	return latest, nil
}

func (r *memProposalRepo) SetDocumentPath(ctx context.Context, id uint, path string) error {
	p, ok := r.s.proposals[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.DocumentPath = &path
	r.s.proposals[id] = p
	return nil
}

func (r *memProposalRepo) FindOverdue(ctx context.Context, now time.Time) ([]models.Proposal, error) {
	var out []models.Proposal
	for _, p := range r.s.proposals {
		if p.IsOverdue(now) {
			out = append(out, p)
		}
	}
	return out, nil
}

type memContractRepo struct {
	repository.ContractRepository
	s *memStore
}

func (r *memContractRepo) FindByID(ctx context.Context, id uint) (*models.Contract, error) {
	c, ok := r.s.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c.Agent = r.s.users[c.AgentID]
	return &c, nil
}

func (r *memContractRepo) FindForUpdate(ctx context.Context, id uint) (*models.Contract, error) {
	return r.FindByID(ctx, id)
}

func (r *memContractRepo) FindByIDWithDetails(ctx context.Context, id uint) (*models.Contract, error) {
	return r.FindByID(ctx, id)
}

func (r *memContractRepo) Create(ctx context.Context, c *models.Contract) error {
	c.ID = r.s.id()
	r.s.contracts[c.ID] = *c
	return nil
}

func (r *memContractRepo) Update(ctx context.Context, c *models.Contract) error {
	r.s.contracts[c.ID] = *c
	return nil
}

func (r *memContractRepo) LatestNumber(ctx context.Context, prefix string) (string, error) {
	latest := ""
	for _, c := range r.s.contracts {
		if strings.HasPrefix(c.Number, prefix) && c.Number > latest {
			latest = c.Number
		}
	}
	return latest, nil
}

func (r *memContractRepo) SetDocumentPath(ctx context.Context, id uint, column, path string) error {
	c, ok := r.s.contracts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	switch column {
	case "document_path":
		c.DocumentPath = &path
	case "signed_document_path":
		c.SignedDocumentPath = &path
	}
	r.s.contracts[id] = c
	return nil
}

type memHistoryRepo struct {
	repository.ContractHistoryRepository
	s *memStore
}

func (r *memHistoryRepo) Create(ctx context.Context, entry *models.ContractHistory) error {
	r.s.history = append(r.s.history, *entry)
	return nil
}

func (r *memHistoryRepo) FindByContract(ctx context.Context, contractID uint) ([]models.ContractHistory, error) {
	var out []models.ContractHistory
	for _, h := range r.s.history {
		if h.ContractID == contractID {
			out = append(out, h)
		}
	}
	return out, nil
}

type memCommissionRepo struct {
	repository.CommissionRepository
	s *memStore
}

func (r *memCommissionRepo) FindByID(ctx context.Context, id uint) (*models.Commission, error) {
	c, ok := r.s.commissions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c.Agent = r.s.users[c.AgentID]
	return &c, nil
}

func (r *memCommissionRepo) FindByContract(ctx context.Context, contractID uint) (*models.Commission, error) {
	for _, c := range r.s.commissions {
		if c.ContractID == contractID {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memCommissionRepo) Create(ctx context.Context, c *models.Commission) error {
	c.ID = r.s.id()
	r.s.commissions[c.ID] = *c
	return nil
}

func (r *memCommissionRepo) Update(ctx context.Context, c *models.Commission) error {
	r.s.commissions[c.ID] = *c
	return nil
}

func (r *memCommissionRepo) UpdateFrom(ctx context.Context, c *models.Commission, status string) error {
	if r.s.commissions[c.ID].Status != status {
		return repository.ErrStaleWrite
	}
	return r.Update(ctx, c)
}

type memDevelopmentRepo struct {
	repository.DevelopmentRepository
	s *memStore
}

func (r *memDevelopmentRepo) FindByID(ctx context.Context, id uint) (*models.Development, error) {
	d, ok := r.s.developments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r *memDevelopmentRepo) Update(ctx context.Context, d *models.Development) error {
	r.s.developments[d.ID] = *d
	return nil
}

func (r *memDevelopmentRepo) RefreshAvailableUnits(ctx context.Context, id uint) error {
	r.s.refreshed = append(r.s.refreshed, id)
	return nil
}

type staticSettings models.Settings

func (s staticSettings) Get(ctx context.Context) (models.Settings, error) {
	return models.Settings(s), nil
}

// queuedJobs collects enqueued work without running it
type queuedJobs struct {
	jobs []jobs.Job
}

func (q *queuedJobs) EnqueueAsync(job jobs.Job) {
	q.jobs = append(q.jobs, job)
}

func uintPtr(v uint) *uint { return &v }
