package models

import (
	"github.com/shopspring/decimal"
)

// Dashboard aggregates the figures visible to one caller over a period
type Dashboard struct {
	Period      string          `json:"period"`
	Proposals   ProposalStats   `json:"proposals"`
	Contracts   ContractStats   `json:"contracts"`
	Units       UnitStats       `json:"units"`
	Commissions CommissionStats `json:"commissions"`
	TopAgents   []AgentRanking  `json:"top_agents"`
	Recent      []ProposalBrief `json:"recent_proposals"`
}

// ProposalStats counts proposals per status
type ProposalStats struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"by_status"`
	ConversionRate float64          `json:"conversion_rate"`
}

// ContractStats counts contracts and sums their value
type ContractStats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	TotalValue decimal.Decimal  `json:"total_value"`
}

// UnitStats counts units per status
type UnitStats struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Reserved  int64 `json:"reserved"`
	Sold      int64 `json:"sold"`
	Blocked   int64 `json:"blocked"`
}

// CommissionStats sums commission net amounts per status
type CommissionStats struct {
	Pending  decimal.Decimal `json:"pending"`
	Approved decimal.Decimal `json:"approved"`
	Paid     decimal.Decimal `json:"paid"`
}

// AgentRanking is one row of the agent leaderboard
type AgentRanking struct {
	AgentID    uint            `json:"agent_id"`
	AgentName  string          `json:"agent_name"`
	Contracts  int64           `json:"contracts"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// ProposalBrief is a compact proposal row for dashboards
type ProposalBrief struct {
	ID         uint            `json:"id"`
	Number     string          `json:"number"`
	Status     string          `json:"status"`
	ClientName string          `json:"client_name"`
	AgentName  string          `json:"agent_name"`
	Total      decimal.Decimal `json:"total"`
}
