package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/internal/middleware"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/services"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// @Summary List Teams
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) Index(c *gin.Context) {
	query := listQuery(c)
	teams, total, err := h.teamService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, teams[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"teams": responses, "pagination": pagination(query, total)})
}

// @Summary Get Team
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} models.TeamResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /teams/{team_id} [get]
func (h *TeamHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "team_id")
	if !ok {
		return
	}
	team, err := h.teamService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": team.ToResponse()})
}

// @Summary Create Team
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body models.Team true "Team Data"
// @Success 201 {object} models.TeamResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var team models.Team
	if err := BindNestedOrFlat(c, "team", &team); err != nil {
		badRequest(c, "dados da equipe inválidos")
		return
	}
	if err := h.teamService.Create(c.Request.Context(), &team, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"team": team.ToResponse()})
}

// @Summary Update Team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param request body models.Team true "Team Data"
// @Success 200 {object} models.TeamResponse
// @Security BearerAuth
// @Router /teams/{team_id} [put]
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "team_id")
	if !ok {
		return
	}
	team := models.Team{Active: true}
	if err := BindNestedOrFlat(c, "team", &team); err != nil {
		badRequest(c, "dados da equipe inválidos")
		return
	}
	updated, err := h.teamService.Update(c.Request.Context(), id, &team, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": updated.ToResponse()})
}

// @Summary Delete Team
// @Description Deletes the team; its members are kept without a team
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /teams/{team_id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "team_id")
	if !ok {
		return
	}
	if err := h.teamService.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "equipe excluída"})
}
