package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/middleware"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/pricing"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/services"
)

type ProposalHandler struct {
	proposalService *services.ProposalService
	documentService *services.DocumentService
	exportService   *services.ExportService
}

func NewProposalHandler(proposalService *services.ProposalService, documentService *services.DocumentService, exportService *services.ExportService) *ProposalHandler {
	return &ProposalHandler{
		proposalService: proposalService,
		documentService: documentService,
		exportService:   exportService,
	}
}

func proposalQuery(c *gin.Context) *repository.ProposalQuery {
	return &repository.ProposalQuery{
		ListQuery:     listQuery(c),
		Status:        c.Query("status"),
		DevelopmentID: queryID(c, "development_id"),
		ClientID:      queryID(c, "client_id"),
		AgentID:       queryID(c, "agent_id"),
		From:          queryDate(c, "from"),
		To:            queryDate(c, "to"),
	}
}

type PricingRequest struct {
	pricing.Inputs
	Overrides pricing.Overrides `json:"overrides"`
}

// @Summary Proposal Pricing
// @Description Computes marked-up total, installment count and total approval without saving anything
// @Tags Proposals
// @Accept json
// @Produce json
// @Param request body PricingRequest true "Amounts"
// @Success 200 {object} pricing.Result
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /proposals/pricing [post]
func (h *ProposalHandler) Pricing(c *gin.Context) {
	var req PricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "valores inválidos")
		return
	}
	result, err := h.proposalService.Pricing(req.Inputs, req.Overrides)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary List Proposals
// @Description Proposals visible to the caller
// @Tags Proposals
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by number, client or unit"
// @Param status query string false "Filter by status"
// @Param development_id query int false "Filter by development"
// @Param client_id query int false "Filter by client"
// @Param agent_id query int false "Filter by agent"
// @Param from query string false "Created from (YYYY-MM-DD)"
// @Param to query string false "Created until (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /proposals [get]
func (h *ProposalHandler) Index(c *gin.Context) {
	query := proposalQuery(c)
	proposals, total, err := h.proposalService.List(c.Request.Context(), middleware.GetPolicy(c), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ProposalResponse, 0, len(proposals))
	for i := range proposals {
		responses = append(responses, proposals[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"proposals": responses, "pagination": pagination(query.ListQuery, total)})
}

// @Summary Get Proposal
// @Tags Proposals
// @Produce json
// @Param proposal_id path int true "Proposal ID"
// @Success 200 {object} models.ProposalResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /proposals/{proposal_id} [get]
func (h *ProposalHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "proposal_id")
	if !ok {
		return
	}
	proposal, err := h.proposalService.FindByID(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposal": proposal.ToResponse()})
}

// @Summary Create Proposal
// @Description Opens a proposal, numbers it and reserves the unit
// @Tags Proposals
// @Accept json
// @Produce json
// @Param request body services.CreateProposalInput true "Proposal Data"
// @Success 201 {object} models.ProposalResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /proposals [post]
func (h *ProposalHandler) Create(c *gin.Context) {
	var in services.CreateProposalInput
	if err := BindNestedOrFlat(c, "proposal", &in); err != nil {
		badRequest(c, "dados da proposta inválidos")
		return
	}
	proposal, err := h.proposalService.Create(c.Request.Context(), middleware.GetPolicy(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"proposal": proposal.ToResponse(), "message": "proposta " + proposal.Number + " criada"})
}

// @Summary Update Proposal
// @Description Changes the values of a draft or sent proposal. Figures are recomputed only when their inputs change.
// @Tags Proposals
// @Accept json
// @Produce json
// @Param proposal_id path int true "Proposal ID"
// @Param request body services.UpdateProposalInput true "Proposal Data"
// @Success 200 {object} models.ProposalResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /proposals/{proposal_id} [put]
func (h *ProposalHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "proposal_id")
	if !ok {
		return
	}
	var in services.UpdateProposalInput
	if err := BindNestedOrFlat(c, "proposal", &in); err != nil {
		badRequest(c, "dados da proposta inválidos")
		return
	}
	proposal, err := h.proposalService.Update(c.Request.Context(), middleware.GetPolicy(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposal": proposal.ToResponse()})
}

// @Summary Send Proposal
// @Description Marks the proposal as presented to the client; its validity starts now
// @Tags Proposals
// @Produce json
// @Param proposal_id path int true "Proposal ID"
// @Success 200 {object} models.ProposalResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /proposals/{proposal_id}/send [post]
func (h *ProposalHandler) Send(c *gin.Context) {
	h.transition(c, h.proposalService.Send, "proposta enviada")
}

// @Summary Approve Proposal
// @Tags Proposals
// @Produce json
// @Param proposal_id path int true "Proposal ID"
// @Success 200 {object} models.ProposalResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /proposals/{proposal_id}/approve [post]
func (h *ProposalHandler) Approve(c *gin.Context) {
	h.transition(c, h.proposalService.Approve, "proposta aprovada")
}

// @Summary Cancel Proposal
// @Description Withdraws a proposal without contract and releases the unit
// @Tags Proposals
// @Produce json
// @Param proposal_id path int true "Proposal ID"
// @Success 200 {object} models.ProposalResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /proposals/{proposal_id}/cancel [post]
func (h *ProposalHandler) Cancel(c *gin.Context) {
	h.transition(c, h.proposalService.Cancel, "proposta cancelada")
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

// @Summary Reject Proposal
// @Description Records the client's refusal and releases the unit
// @Tags Proposals
// @Accept json
// @Produce json
// @Param proposal_id path int true "Proposal ID"
// @Param request body RejectRequest false "Reason"
// @Success 200 {object} models.ProposalResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /proposals/{proposal_id}/reject [post]
func (h *ProposalHandler) Reject(c *gin.Context) {
	id, ok := paramID(c, "proposal_id")
	if !ok {
		return
	}
	var req RejectRequest
	_ = c.ShouldBindJSON(&req)

	proposal, err := h.proposalService.Reject(c.Request.Context(), middleware.GetPolicy(c), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposal": proposal.ToResponse(), "message": "proposta recusada"})
}

type proposalAction func(ctx context.Context, policy access.Policy, id uint) (*models.Proposal, error)

func (h *ProposalHandler) transition(c *gin.Context, action proposalAction, message string) {
	id, ok := paramID(c, "proposal_id")
	if !ok {
		return
	}
	proposal, err := action(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposal": proposal.ToResponse(), "message": message})
}

// @Summary Proposal PDF
// @Description Renders the proposal document and stores it
// @Tags Proposals
// @Produce application/pdf
// @Param proposal_id path int true "Proposal ID"
// @Success 200 {file} file
// @Failure 503 {object} map[string]string
// @Security BearerAuth
// @Router /proposals/{proposal_id}/document [get]
func (h *ProposalHandler) Document(c *gin.Context) {
	id, ok := paramID(c, "proposal_id")
	if !ok {
		return
	}
	doc, err := h.documentService.ProposalPDF(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	sendDocument(c, doc)
}

// @Summary Export Proposals
// @Description Exports the filtered proposals visible to the caller
// @Tags Proposals
// @Produce octet-stream
// @Param format query string false "csv, xlsx or pdf" default(csv)
// @Param status query string false "Filter by status"
// @Param development_id query int false "Filter by development"
// @Param agent_id query int false "Filter by agent"
// @Param from query string false "Created from (YYYY-MM-DD)"
// @Param to query string false "Created until (YYYY-MM-DD)"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /proposals/export [get]
func (h *ProposalHandler) Export(c *gin.Context) {
	export, err := h.exportService.Proposals(c.Request.Context(), middleware.GetPolicy(c), proposalQuery(c), c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendExport(c, export)
}
