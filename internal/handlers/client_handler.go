package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/internal/middleware"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/services"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// ClientRequest takes the birth date as YYYY-MM-DD
type ClientRequest struct {
	models.Client
	BirthDate string `json:"birth_date"`
}

func bindClient(c *gin.Context) (*models.Client, bool) {
	var req ClientRequest
	if err := BindNestedOrFlat(c, "client", &req); err != nil {
		badRequest(c, "dados do cliente inválidos")
		return nil, false
	}
	birth, err := parseDate(req.BirthDate)
	if err != nil {
		badRequest(c, err.Error())
		return nil, false
	}
	client := req.Client
	client.BirthDate = birth
	return &client, true
}

// @Summary List Clients
// @Description Clients visible to the caller: own for agents, the team's for managers, all for admins
// @Tags Clients
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name, CPF, phone or e-mail"
// @Param lead_source query string false "Filter by lead source"
// @Param agent_id query int false "Filter by registering agent"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) Index(c *gin.Context) {
	query := &repository.ClientQuery{
		ListQuery:  listQuery(c),
		LeadSource: c.Query("lead_source"),
		AgentID:    queryID(c, "agent_id"),
	}
	clients, total, err := h.clientService.List(c.Request.Context(), middleware.GetPolicy(c), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, clients[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"clients": responses, "pagination": pagination(query.ListQuery, total)})
}

// @Summary Get Client
// @Tags Clients
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} models.ClientResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /clients/{client_id} [get]
func (h *ClientHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "client_id")
	if !ok {
		return
	}
	client, err := h.clientService.FindByID(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client.ToResponse()})
}

// @Summary Client Info
// @Description The client with the proposals the caller may see
// @Tags Clients
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /clients/{client_id}/info [get]
func (h *ClientHandler) Info(c *gin.Context) {
	id, ok := paramID(c, "client_id")
	if !ok {
		return
	}
	info, err := h.clientService.Info(c.Request.Context(), middleware.GetPolicy(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	proposals := make([]models.ProposalResponse, 0, len(info.Proposals))
	for i := range info.Proposals {
		proposals = append(proposals, info.Proposals[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"client": info.Client.ToResponse(), "proposals": proposals})
}

// @Summary Create Client
// @Description Registers a client owned by the caller
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body ClientRequest true "Client Data"
// @Success 201 {object} models.ClientResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	client, ok := bindClient(c)
	if !ok {
		return
	}
	if err := h.clientService.Create(c.Request.Context(), middleware.GetPolicy(c), client); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": client.ToResponse()})
}

// @Summary Update Client
// @Tags Clients
// @Accept json
// @Produce json
// @Param client_id path int true "Client ID"
// @Param request body ClientRequest true "Client Data"
// @Success 200 {object} models.ClientResponse
// @Security BearerAuth
// @Router /clients/{client_id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "client_id")
	if !ok {
		return
	}
	client, ok := bindClient(c)
	if !ok {
		return
	}
	updated, err := h.clientService.Update(c.Request.Context(), middleware.GetPolicy(c), id, client)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": updated.ToResponse()})
}

// @Summary Delete Client
// @Description Only clients without proposals can be deleted
// @Tags Clients
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /clients/{client_id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "client_id")
	if !ok {
		return
	}
	if err := h.clientService.Delete(c.Request.Context(), middleware.GetPolicy(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cliente excluído"})
}
