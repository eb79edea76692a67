package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/pricing"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProposalRepo struct {
	repository.ProposalRepository
	proposals map[uint]*models.Proposal
	lastQuery *repository.ProposalQuery
}

func (m *mockProposalRepo) FindByID(ctx context.Context, id uint) (*models.Proposal, error) {
	if p, ok := m.proposals[id]; ok {
		return p, nil
	}
	return nil, &services.Error{Kind: services.ErrNotFound, Message: "proposta não encontrada"}
}

func (m *mockProposalRepo) List(ctx context.Context, query *repository.ProposalQuery) ([]models.Proposal, int64, error) {
	m.lastQuery = query
	return []models.Proposal{}, 0, nil
}

func newProposalHandler(repo *mockProposalRepo) *ProposalHandler {
	svc := services.NewProposalService(&repository.Repositories{Proposal: repo}, nil, nil, nil, nil, nil, nil, services.Numberer{}, nil)
	return NewProposalHandler(svc, nil, nil)
}

func TestProposalHandler_Pricing(t *testing.T) {
	handler := newProposalHandler(&mockProposalRepo{})

	t.Run("derives the financed figures", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"base_price":"200000","client_installment":"1500","financing_amount":"150000","subsidy_amount":"20000","fgts_amount":"10000"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/proposals/pricing", bytes.NewBufferString(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.Pricing(c)

		require.Equal(t, http.StatusOK, w.Code)
		var result pricing.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.MarkedUpTotal.Equal(decimal.NewFromInt(300000)))
		assert.Equal(t, 200, result.InstallmentCount)
		assert.True(t, result.TotalApproval.Equal(decimal.NewFromInt(180000)))
	})

	t.Run("zero installment is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/proposals/pricing", bytes.NewBufferString(`{"base_price":"200000","client_installment":"0"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.Pricing(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestProposalHandler_Index_ScopesAgent(t *testing.T) {
	repo := &mockProposalRepo{}
	handler := newProposalHandler(repo)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/proposals?status=sent&development_id=4&from=2024-01-01", nil)
	c.Set("userID", uint(7))

	handler.Index(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, repo.lastQuery)
	assert.Equal(t, "sent", repo.lastQuery.Status)
	assert.Equal(t, uint(4), repo.lastQuery.DevelopmentID)
	require.NotNil(t, repo.lastQuery.From)
	assert.Equal(t, 2024, repo.lastQuery.From.Year())
	assert.Equal(t, []any{uint(7)}, repo.lastQuery.Scope.Args)
}

func TestProposalHandler_Show_OutOfScope(t *testing.T) {
	repo := &mockProposalRepo{proposals: map[uint]*models.Proposal{
		1: {ID: 1, AgentID: 9, Agent: models.User{ID: 9, Role: models.RoleAgent}},
	}}
	handler := newProposalHandler(repo)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/proposals/1", nil)
	c.Params = gin.Params{{Key: "proposal_id", Value: "1"}}
	c.Set("userID", uint(7))

	handler.Show(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
