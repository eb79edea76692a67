package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/internal/middleware"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/services"
	"github.com/sjperalta/contratus-api/internal/storage"
)

type ContractHandler struct {
	contractService *services.ContractService
	documentService *services.DocumentService
	exportService   *services.ExportService
	storage         *storage.LocalStorage
}

func NewContractHandler(contractService *services.ContractService, documentService *services.DocumentService, exportService *services.ExportService, storage *storage.LocalStorage) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
		documentService: documentService,
		exportService:   exportService,
		storage:         storage,
	}
}

// contractQuery accepts status as a comma-separated list
func contractQuery(c *gin.Context) *repository.ContractQuery {
	query := &repository.ContractQuery{
		ListQuery:     listQuery(c),
		DevelopmentID: queryID(c, "development_id"),
		AgentID:       queryID(c, "agent_id"),
		From:          queryDate(c, "from"),
		To:            queryDate(c, "to"),
	}
	for _, status := range strings.Split(c.Query("status"), ",") {
		if status = strings.TrimSpace(status); status != "" {
			query.Statuses = append(query.Statuses, status)
		}
	}
	for _, key := range []string{"due_from", "due_to"} {
		if v := c.Query(key); v != "" {
			query.Filters[key] = v
		}
	}
	return query
}

func (h *ContractHandler) respond(c *gin.Context, status int, contract *models.Contract, message string) {
	body := gin.H{
		"contract":           contract.ToResponse(),
		"available_statuses": h.contractService.AvailableStatuses(contract),
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// @Summary List Contracts
// @Description Contracts visible to the caller
// @Tags Contracts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by number, client or unit"
// @Param status query string false "Comma-separated statuses"
// @Param development_id query int false "Filter by development"
// @Param agent_id query int false "Filter by agent"
// @Param from query string false "Created from (YYYY-MM-DD)"
// @Param to query string false "Created until (YYYY-MM-DD)"
// @Param due_from query string false "Due from (YYYY-MM-DD)"
// @Param due_to query string false "Due until (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contracts [get]
func (h *ContractHandler) Index(c *gin.Context) {
	query := contractQuery(c)
	contracts, total, err := h.contractService.List(c.Request.Context(), middleware.GetPolicy(c), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ContractResponse, 0, len(contracts))
	for i := range contracts {
		responses = append(responses, contracts[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"contracts": responses, "pagination": pagination(query.ListQuery, total)})
}

// @Summary Get Contract
// @Description The contract with the statuses it may move to next
// @Tags Contracts
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /contracts/{contract_id} [get]
func (h *ContractHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	contract, err := h.contractService.FindByID(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, contract, "")
}

// ContractRequest carries the terms a contract does not inherit from its proposal
type ContractRequest struct {
	services.Witnesses
	SignatureDate string `json:"signature_date"`
	ValidityDays  int    `json:"validity_days"`
	ExtensionDays int    `json:"extension_days"`
	Notes         string `json:"notes"`
}

// @Summary Create Contract
// @Description Derives the contract of an approved proposal. Repeating the call returns the existing contract.
// @Tags Contracts
// @Accept json
// @Produce json
// @Param proposal_id path int true "Proposal ID"
// @Param request body ContractRequest false "Contract terms"
// @Success 201 {object} map[string]interface{}
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /proposals/{proposal_id}/contract [post]
func (h *ContractHandler) Create(c *gin.Context) {
	proposalID, ok := paramID(c, "proposal_id")
	if !ok {
		return
	}
	var req ContractRequest
	if c.Request.ContentLength > 0 {
		if err := BindNestedOrFlat(c, "contract", &req); err != nil {
			badRequest(c, "dados do contrato inválidos")
			return
		}
	}
	signatureDate, err := parseDate(req.SignatureDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	contract, created, err := h.contractService.CreateFromProposal(c.Request.Context(), middleware.GetPolicy(c), proposalID, services.DeriveContractInput{
		Witnesses:     req.Witnesses,
		SignatureDate: signatureDate,
		ValidityDays:  req.ValidityDays,
		ExtensionDays: req.ExtensionDays,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if !created {
		h.respond(c, http.StatusOK, contract, "contrato já existente para esta proposta")
		return
	}
	h.respond(c, http.StatusCreated, contract, "contrato "+contract.Number+" gerado")
}

// ContractDetailsRequest edits the non-financial terms; absent fields are kept
type ContractDetailsRequest struct {
	services.Witnesses
	SignatureDate string  `json:"signature_date"`
	ValidityDays  *int    `json:"validity_days"`
	ExtensionDays *int    `json:"extension_days"`
	Notes         *string `json:"notes"`
}

// @Summary Update Contract Details
// @Tags Contracts
// @Accept json
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Param request body ContractDetailsRequest true "Contract terms"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /contracts/{contract_id} [put]
func (h *ContractHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	var req ContractDetailsRequest
	if err := BindNestedOrFlat(c, "contract", &req); err != nil {
		badRequest(c, "dados do contrato inválidos")
		return
	}
	signatureDate, err := parseDate(req.SignatureDate)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	contract, err := h.contractService.UpdateDetails(c.Request.Context(), middleware.GetPolicy(c), id, services.ContractDetailsInput{
		Witnesses:     req.Witnesses,
		SignatureDate: signatureDate,
		ValidityDays:  req.ValidityDays,
		ExtensionDays: req.ExtensionDays,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, contract, "")
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// @Summary Change Contract Status
// @Description Moves the contract along its lifecycle and records the change in its history
// @Tags Contracts
// @Accept json
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Param request body StatusRequest true "Target status"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /contracts/{contract_id}/status [patch]
func (h *ContractHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status é obrigatório")
		return
	}
	contract, err := h.contractService.ChangeStatus(c.Request.Context(), middleware.GetPolicy(c), id, req.Status, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, contract, "status alterado para "+contract.StatusLabel())
}

// @Summary Contract History
// @Tags Contracts
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contracts/{contract_id}/history [get]
func (h *ContractHandler) History(c *gin.Context) {
	id, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	history, err := h.contractService.History(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ContractHistoryResponse, 0, len(history))
	for i := range history {
		responses = append(responses, history[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"history": responses})
}

// @Summary Upload Signed Contract
// @Description Attaches the scanned signed contract (PDF, JPG or PNG up to 10 MB)
// @Tags Contracts
// @Accept multipart/form-data
// @Produce json
// @Param contract_id path int true "Contract ID"
// @Param file formData file true "Signed contract"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /contracts/{contract_id}/signed [post]
func (h *ContractHandler) UploadSigned(c *gin.Context) {
	id, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		badRequest(c, "arquivo é obrigatório")
		return
	}
	defer file.Close()

	contract, err := h.contractService.UploadSigned(c.Request.Context(), middleware.GetPolicy(c), id, file, header)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, contract, "contrato assinado anexado")
}

// @Summary Download Signed Contract
// @Tags Contracts
// @Produce octet-stream
// @Param contract_id path int true "Contract ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /contracts/{contract_id}/signed [get]
func (h *ContractHandler) DownloadSigned(c *gin.Context) {
	id, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	contract, err := h.contractService.FindByID(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if contract.SignedDocumentPath == nil || !h.storage.Exists(*contract.SignedDocumentPath) {
		c.JSON(http.StatusNotFound, gin.H{"error": "contrato assinado não anexado"})
		return
	}
	full, err := h.storage.FullPath(*contract.SignedDocumentPath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(full, contract.Number+"-assinado"+filepath.Ext(full))
}

// @Summary Contract PDF
// @Description Renders the contract document and stores it
// @Tags Contracts
// @Produce application/pdf
// @Param contract_id path int true "Contract ID"
// @Success 200 {file} file
// @Failure 503 {object} map[string]string
// @Security BearerAuth
// @Router /contracts/{contract_id}/document [get]
func (h *ContractHandler) Document(c *gin.Context) {
	id, ok := paramID(c, "contract_id")
	if !ok {
		return
	}
	doc, err := h.documentService.ContractPDF(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	sendDocument(c, doc)
}

// @Summary Export Contracts
// @Tags Contracts
// @Produce octet-stream
// @Param format query string false "csv, xlsx or pdf" default(csv)
// @Param status query string false "Comma-separated statuses"
// @Param development_id query int false "Filter by development"
// @Param agent_id query int false "Filter by agent"
// @Param from query string false "Created from (YYYY-MM-DD)"
// @Param to query string false "Created until (YYYY-MM-DD)"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /contracts/export [get]
func (h *ContractHandler) Export(c *gin.Context) {
	export, err := h.exportService.Contracts(c.Request.Context(), middleware.GetPolicy(c), contractQuery(c), c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendExport(c, export)
}
