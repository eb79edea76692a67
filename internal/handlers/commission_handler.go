package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/middleware"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/services"
)

type CommissionHandler struct {
	commissionService *services.CommissionService
	exportService     *services.ExportService
}

func NewCommissionHandler(commissionService *services.CommissionService, exportService *services.ExportService) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService, exportService: exportService}
}

func commissionQuery(c *gin.Context) *repository.CommissionQuery {
	return &repository.CommissionQuery{
		ListQuery: listQuery(c),
		Status:    c.Query("status"),
		AgentID:   queryID(c, "agent_id"),
		From:      queryDate(c, "from"),
		To:        queryDate(c, "to"),
	}
}

// @Summary List Commissions
// @Description Commissions visible to the caller
// @Tags Commissions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param status query string false "pending, approved, paid or cancelled"
// @Param agent_id query int false "Filter by agent"
// @Param from query string false "Created from (YYYY-MM-DD)"
// @Param to query string false "Created until (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /commissions [get]
func (h *CommissionHandler) Index(c *gin.Context) {
	query := commissionQuery(c)
	commissions, total, err := h.commissionService.List(c.Request.Context(), middleware.GetPolicy(c), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.CommissionResponse, 0, len(commissions))
	for i := range commissions {
		responses = append(responses, commissions[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"commissions": responses, "pagination": pagination(query.ListQuery, total)})
}

// @Summary Get Commission
// @Tags Commissions
// @Produce json
// @Param commission_id path int true "Commission ID"
// @Success 200 {object} models.CommissionResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /commissions/{commission_id} [get]
func (h *CommissionHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "commission_id")
	if !ok {
		return
	}
	commission, err := h.commissionService.FindByID(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commission": commission.ToResponse()})
}

type CommissionRequest struct {
	Percentage          *decimal.Decimal `json:"percentage"`
	Deductions          *decimal.Decimal `json:"deductions"`
	ExpectedPaymentDate string           `json:"expected_payment_date"`
	PaymentMethod       *string          `json:"payment_method"`
	Notes               *string          `json:"notes"`
}

// @Summary Update Commission
// @Description Adjusts percentage, deductions and payment terms of a pending commission
// @Tags Commissions
// @Accept json
// @Produce json
// @Param commission_id path int true "Commission ID"
// @Param request body CommissionRequest true "Commission Data"
// @Success 200 {object} models.CommissionResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /commissions/{commission_id} [put]
func (h *CommissionHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "commission_id")
	if !ok {
		return
	}
	var req CommissionRequest
	if err := BindNestedOrFlat(c, "commission", &req); err != nil {
		badRequest(c, "dados da comissão inválidos")
		return
	}
	expected, err := parseDate(req.ExpectedPaymentDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	commission, err := h.commissionService.Update(c.Request.Context(), middleware.GetPolicy(c), id, services.CommissionInput{
		Percentage:          req.Percentage,
		Deductions:          req.Deductions,
		ExpectedPaymentDate: expected,
		PaymentMethod:       req.PaymentMethod,
		Notes:               req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commission": commission.ToResponse()})
}

// @Summary Approve Commission
// @Tags Commissions
// @Produce json
// @Param commission_id path int true "Commission ID"
// @Success 200 {object} models.CommissionResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /commissions/{commission_id}/approve [post]
func (h *CommissionHandler) Approve(c *gin.Context) {
	id, ok := paramID(c, "commission_id")
	if !ok {
		return
	}
	commission, err := h.commissionService.Approve(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commission": commission.ToResponse(), "message": "comissão aprovada"})
}

type PayRequest struct {
	PaymentDate   string `json:"payment_date"`
	PaymentMethod string `json:"payment_method"`
}

// @Summary Pay Commission
// @Description Records the payment of an approved commission; the date defaults to today
// @Tags Commissions
// @Accept json
// @Produce json
// @Param commission_id path int true "Commission ID"
// @Param request body PayRequest false "Payment"
// @Success 200 {object} models.CommissionResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /commissions/{commission_id}/pay [post]
func (h *CommissionHandler) Pay(c *gin.Context) {
	id, ok := paramID(c, "commission_id")
	if !ok {
		return
	}
	var req PayRequest
	_ = c.ShouldBindJSON(&req)
	paidOn, err := parseDate(req.PaymentDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	commission, err := h.commissionService.Pay(c.Request.Context(), middleware.GetPolicy(c), id, paidOn, req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commission": commission.ToResponse(), "message": "comissão paga"})
}

// @Summary Cancel Commission
// @Tags Commissions
// @Produce json
// @Param commission_id path int true "Commission ID"
// @Success 200 {object} models.CommissionResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /commissions/{commission_id}/cancel [post]
func (h *CommissionHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "commission_id")
	if !ok {
		return
	}
	commission, err := h.commissionService.Cancel(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commission": commission.ToResponse(), "message": "comissão cancelada"})
}

// @Summary Export Commissions
// @Tags Commissions
// @Produce octet-stream
// @Param format query string false "csv, xlsx or pdf" default(csv)
// @Param status query string false "Filter by status"
// @Param agent_id query int false "Filter by agent"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /commissions/export [get]
func (h *CommissionHandler) Export(c *gin.Context) {
	export, err := h.exportService.Commissions(c.Request.Context(), middleware.GetPolicy(c), commissionQuery(c), c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendExport(c, export)
}
