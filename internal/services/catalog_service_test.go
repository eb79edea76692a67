package services

import (
	"context"
	"testing"

	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchInput_Identifiers(t *testing.T) {
	in := BatchInput{Prefix: "Apto", Start: 8, Quantity: 4}
	assert.Equal(t, []string{"Apto 08", "Apto 09", "Apto 10", "Apto 11"}, in.Identifiers())

	in = BatchInput{Prefix: "Casa", Start: 99, Quantity: 2}
	assert.Equal(t, []string{"Casa 99", "Casa 100"}, in.Identifiers())
}

func TestBatchInput_Validate(t *testing.T) {
	assert.ErrorIs(t, BatchInput{Prefix: " ", Quantity: 1}.validate(), ErrValidation)
	assert.ErrorIs(t, BatchInput{Prefix: "A", Start: -1, Quantity: 1}.validate(), ErrValidation)
	assert.ErrorIs(t, BatchInput{Prefix: "A", Quantity: 0}.validate(), ErrValidation)
	assert.ErrorIs(t, BatchInput{Prefix: "A", Quantity: MaxBatchSize + 1}.validate(), ErrValidation)
	assert.NoError(t, BatchInput{Prefix: "A", Quantity: MaxBatchSize}.validate())
}

func catalogStore() *memStore {
	s := seedStore()
	s.developments[1] = models.Development{ID: 1, Name: "Residencial Aurora", TotalUnits: 2}
	s.unitTypes[5] = models.UnitType{ID: 5, DevelopmentID: 1, Name: "2 quartos"}
	s.unitTypes[6] = models.UnitType{ID: 6, DevelopmentID: 2, Name: "Outro"}
	return s
}

func TestUnitService_CreateBatch_SkipsExisting(t *testing.T) {
	s := catalogStore()
	s.units[11] = models.Unit{ID: 11, DevelopmentID: 1, Identifier: "Apto 02", Status: models.UnitStatusAvailable}
	svc := NewUnitService(s.repos(), s, &queuedJobs{}, nil, nil)

	result, err := svc.CreateBatch(context.Background(), 1, BatchInput{Prefix: " Apto ", Start: 1, Quantity: 3, UnitTypeID: uintPtr(5), Block: "B"}, testAdmin.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Apto 02"}, result.Skipped)
	require.Len(t, result.Created, 2)
	assert.Equal(t, "Apto 01", result.Created[0].Identifier)
	assert.Equal(t, "Apto 03", result.Created[1].Identifier)
	assert.Equal(t, "B", result.Created[1].Block)
	assert.Equal(t, models.UnitStatusAvailable, result.Created[0].Status)

	// unit 10 from the seed, unit 11 and the two new ones
	assert.Equal(t, 4, s.developments[1].TotalUnits)
	assert.Equal(t, []uint{1}, s.refreshed)
}

func TestUnitService_CreateBatch_AllExisting(t *testing.T) {
	s := catalogStore()
	s.units[11] = models.Unit{ID: 11, DevelopmentID: 1, Identifier: "Apto 01"}
	svc := NewUnitService(s.repos(), s, &queuedJobs{}, nil, nil)

	result, err := svc.CreateBatch(context.Background(), 1, BatchInput{Prefix: "Apto", Start: 1, Quantity: 1}, testAdmin.ID)
	require.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.Equal(t, []string{"Apto 01"}, result.Skipped)
	assert.Empty(t, s.refreshed)
}

func TestUnitService_CreateBatch_ForeignUnitType(t *testing.T) {
	s := catalogStore()
	svc := NewUnitService(s.repos(), s, &queuedJobs{}, nil, nil)

	_, err := svc.CreateBatch(context.Background(), 1, BatchInput{Prefix: "Apto", Start: 1, Quantity: 2, UnitTypeID: uintPtr(6)}, testAdmin.ID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateBatch(context.Background(), 3, BatchInput{Prefix: "Apto", Start: 1, Quantity: 2}, testAdmin.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnitService_BlockAndUnblock(t *testing.T) {
	s := catalogStore()
	q := &queuedJobs{}
	svc := NewUnitService(s.repos(), s, q, nil, nil)

	_, err := svc.Block(context.Background(), access.ForUser(&testAgent), 10, "obra")
	assert.ErrorIs(t, err, ErrForbidden)

	unit, err := svc.Block(context.Background(), access.ForUser(&testAdmin), 10, "obra")
	require.NoError(t, err)
	assert.Equal(t, models.UnitStatusBlocked, unit.Status)
	assert.Len(t, q.jobs, 1)

	_, err = svc.Block(context.Background(), access.ForUser(&testAdmin), 10, "")
	assert.ErrorIs(t, err, ErrPrecondition)

	unit, err = svc.Unblock(context.Background(), access.ForUser(&testAdmin), 10)
	require.NoError(t, err)
	assert.Equal(t, models.UnitStatusAvailable, unit.Status)
}

func TestUnitService_BlockedUnitCannotBeProposed(t *testing.T) {
	s := catalogStore()
	units := NewUnitService(s.repos(), s, &queuedJobs{}, nil, nil)
	_, err := units.Block(context.Background(), access.ForUser(&testAdmin), 10, "")
	require.NoError(t, err)

	_, err = newTestProposalService(s, &queuedJobs{}).Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUnitService_Block_RefusesReservedUnit(t *testing.T) {
	s := catalogStore()
	units := NewUnitService(s.repos(), s, &queuedJobs{}, nil, nil)
	proposals := newTestProposalService(s, &queuedJobs{})
	admin := access.ForUser(&testAdmin)

	p, err := proposals.Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	require.NoError(t, err)

	_, err = units.Block(context.Background(), admin, 10, "vistoria")
	assert.ErrorIs(t, err, ErrPrecondition)
	_, err = units.Unblock(context.Background(), admin, 10)
	assert.ErrorIs(t, err, ErrPrecondition)

	unit := s.units[10]
	assert.Equal(t, models.UnitStatusReserved, unit.Status)
	require.NotNil(t, unit.ReservedByProposalID)
	assert.Equal(t, p.ID, *unit.ReservedByProposalID)

	// a second proposal still cannot take the unit
	_, err = proposals.Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUnitService_Update_KeepsConcurrentReservation(t *testing.T) {
	s := catalogStore()
	units := NewUnitService(s.repos(), s, &queuedJobs{}, nil, nil)
	proposals := newTestProposalService(s, &queuedJobs{})

	var holder uint
	s.beforeTx = []func(){func() {
		p, err := proposals.Create(context.Background(), access.ForUser(&testAgent), proposalInput())
		require.NoError(t, err)
		holder = p.ID
	}}

	unit, err := units.Update(context.Background(), 10, &models.Unit{Identifier: " 101-A ", UnitTypeID: uintPtr(5), Floor: "1"}, testAdmin.ID)
	require.NoError(t, err)
	assert.Equal(t, "101-A", unit.Identifier)
	assert.Equal(t, models.UnitStatusReserved, unit.Status)
	require.NotNil(t, unit.ReservedByProposalID)
	assert.Equal(t, holder, *unit.ReservedByProposalID)
}
