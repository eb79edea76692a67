// Package access decides which clients, proposals, contracts and commissions
// a caller may see or change, based on role and team membership.
package access

import (
	"fmt"

	"github.com/sjperalta/contratus-api/internal/models"
)

// Entity names a scoped table
type Entity string

const (
	Clients     Entity = "clients"
	Proposals   Entity = "proposals"
	Contracts   Entity = "contracts"
	Commissions Entity = "commissions"
)

// ownerColumn is the column holding the owning agent of each entity
var ownerColumn = map[Entity]string{
	Clients:     "registered_by_id",
	Proposals:   "agent_id",
	Contracts:   "agent_id",
	Commissions: "agent_id",
}

// Predicate is a SQL condition with its arguments. An empty Clause matches everything.
type Predicate struct {
	Clause string
	Args   []any
}

// Unrestricted reports whether the predicate filters nothing
func (p Predicate) Unrestricted() bool {
	return p.Clause == ""
}

// Owner identifies who an entity belongs to
type Owner struct {
	AgentID uint
	// TeamID is the owning agent's team, nil when the agent has none
	TeamID *uint
}

// Policy is the capability set of a caller
type Policy interface {
	// Visible returns the condition rows of entity must satisfy
	Visible(entity Entity) Predicate
	// Allows reports whether the caller may act on an entity owned by owner
	Allows(owner Owner) bool
	// UserID is the caller
	UserID() uint
	// Role is the caller's role
	Role() string
	// TeamID is the team the caller's scope is limited to, if any
	TeamID() *uint
}

// ForUser builds the policy for a user as currently stored
func ForUser(u *models.User) Policy {
	switch u.Role {
	case models.RoleAdmin:
		return adminPolicy{userID: u.ID}
	case models.RoleManager:
		return managerPolicy{userID: u.ID, teamID: u.TeamID}
	default:
		return agentPolicy{userID: u.ID}
	}
}

func column(entity Entity) string {
	col, ok := ownerColumn[entity]
	if !ok {
		panic(fmt.Sprintf("access: unknown entity %q", entity))
	}
	return string(entity) + "." + col
}

type adminPolicy struct {
	userID uint
}

func (p adminPolicy) Visible(Entity) Predicate { return Predicate{} }
func (p adminPolicy) Allows(Owner) bool        { return true }
func (p adminPolicy) UserID() uint             { return p.userID }
func (p adminPolicy) Role() string             { return models.RoleAdmin }
func (p adminPolicy) TeamID() *uint            { return nil }

type managerPolicy struct {
	userID uint
	teamID *uint
}

func (p managerPolicy) Visible(entity Entity) Predicate {
	if p.teamID == nil {
		return Predicate{Clause: "1 = 0"}
	}
	return Predicate{
		Clause: column(entity) + " IN (SELECT id FROM users WHERE team_id = ?)",
		Args:   []any{*p.teamID},
	}
}

func (p managerPolicy) Allows(owner Owner) bool {
	return p.teamID != nil && owner.TeamID != nil && *owner.TeamID == *p.teamID
}

func (p managerPolicy) UserID() uint  { return p.userID }
func (p managerPolicy) Role() string  { return models.RoleManager }
func (p managerPolicy) TeamID() *uint { return p.teamID }

type agentPolicy struct {
	userID uint
}

func (p agentPolicy) Visible(entity Entity) Predicate {
	return Predicate{Clause: column(entity) + " = ?", Args: []any{p.userID}}
}

func (p agentPolicy) Allows(owner Owner) bool {
	return owner.AgentID == p.userID
}

func (p agentPolicy) UserID() uint  { return p.userID }
func (p agentPolicy) Role() string  { return models.RoleAgent }
func (p agentPolicy) TeamID() *uint { return nil }

// IsAdmin reports whether the policy is unrestricted
func IsAdmin(p Policy) bool {
	return p != nil && p.Role() == models.RoleAdmin
}

// OwnerOf returns the owner of an agent-owned record
func OwnerOf(agent *models.User) Owner {
	if agent == nil {
		return Owner{}
	}
	return Owner{AgentID: agent.ID, TeamID: agent.TeamID}
}
