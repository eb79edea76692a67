package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/internal/middleware"
	"github.com/sjperalta/contratus-api/internal/services"
)

// JobHandler is the admin view of the background worker
type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// @Summary Background Job Status
// @Description Worker counters plus proposal expiry and document generation totals
// @Tags Jobs
// @Produce json
// @Success 200 {object} services.JobStatus
// @Security BearerAuth
// @Router /jobs/status [get]
func (h *JobHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jobs": h.jobService.GetStatus()})
}

// @Summary Expire Overdue Proposals
// @Description Runs the proposal expiry immediately and returns how many proposals expired
// @Tags Jobs
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /jobs/expire-proposals [post]
func (h *JobHandler) ExpireProposals(c *gin.Context) {
	expired, err := h.jobService.RunExpiry(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"expired": expired,
		"message": "expiração de propostas executada",
	})
}
