package access

import (
	"testing"

	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func TestForUser_Admin(t *testing.T) {
	p := ForUser(&models.User{ID: 1, Role: models.RoleAdmin})

	for _, e := range []Entity{Clients, Proposals, Contracts, Commissions} {
		assert.True(t, p.Visible(e).Unrestricted())
	}
	assert.True(t, p.Allows(Owner{AgentID: 99}))
	assert.True(t, IsAdmin(p))
}

func TestForUser_Agent(t *testing.T) {
	p := ForUser(&models.User{ID: 7, Role: models.RoleAgent, TeamID: uintPtr(3)})

	pred := p.Visible(Proposals)
	assert.Equal(t, "proposals.agent_id = ?", pred.Clause)
	assert.Equal(t, []any{uint(7)}, pred.Args)

	assert.Equal(t, "clients.registered_by_id = ?", p.Visible(Clients).Clause)

	assert.True(t, p.Allows(Owner{AgentID: 7}))
	assert.False(t, p.Allows(Owner{AgentID: 8, TeamID: uintPtr(3)}))
	assert.False(t, IsAdmin(p))
}

func TestForUser_ManagerWithTeam(t *testing.T) {
	p := ForUser(&models.User{ID: 2, Role: models.RoleManager, TeamID: uintPtr(5)})

	pred := p.Visible(Contracts)
	assert.Equal(t, "contracts.agent_id IN (SELECT id FROM users WHERE team_id = ?)", pred.Clause)
	assert.Equal(t, []any{uint(5)}, pred.Args)

	assert.True(t, p.Allows(Owner{AgentID: 10, TeamID: uintPtr(5)}))
	assert.False(t, p.Allows(Owner{AgentID: 11, TeamID: uintPtr(6)}))
	assert.False(t, p.Allows(Owner{AgentID: 12}))
}

func TestForUser_ManagerWithoutTeamSeesNothing(t *testing.T) {
	p := ForUser(&models.User{ID: 2, Role: models.RoleManager})

	pred := p.Visible(Clients)
	assert.Equal(t, "1 = 0", pred.Clause)
	assert.False(t, pred.Unrestricted())
	assert.False(t, p.Allows(Owner{AgentID: 2}))
}

func TestForUser_UnknownRoleFallsBackToAgent(t *testing.T) {
	p := ForUser(&models.User{ID: 4, Role: "visitor"})
	assert.Equal(t, models.RoleAgent, p.Role())
	assert.True(t, p.Allows(Owner{AgentID: 4}))
}

func TestOwnerOf(t *testing.T) {
	assert.Equal(t, Owner{}, OwnerOf(nil))
	o := OwnerOf(&models.User{ID: 3, TeamID: uintPtr(9)})
	assert.Equal(t, uint(3), o.AgentID)
	assert.Equal(t, uint(9), *o.TeamID)
}

func TestVisible_UnknownEntityPanics(t *testing.T) {
	p := ForUser(&models.User{ID: 1, Role: models.RoleAgent})
	assert.Panics(t, func() { p.Visible(Entity("units")) })
}
