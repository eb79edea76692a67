package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/services"
	"github.com/sjperalta/contratus-api/internal/storage"
	"github.com/sjperalta/contratus-api/pkg/logger"
)

// Handlers holds all handler instances
type Handlers struct {
	Health              *HealthHandler
	Auth                *AuthHandler
	User                *UserHandler
	Team                *TeamHandler
	ConstructionCompany *ConstructionCompanyHandler
	Development         *DevelopmentHandler
	UnitType            *UnitTypeHandler
	Unit                *UnitHandler
	Client              *ClientHandler
	Proposal            *ProposalHandler
	Contract            *ContractHandler
	Commission          *CommissionHandler
	Dashboard           *DashboardHandler
	Settings            *SettingsHandler
	Notification        *NotificationHandler
	Audit               *AuditHandler
	Job                 *JobHandler
}

// NewHandlers creates all handler instances. ping reaches the database for
// the health check.
func NewHandlers(svcs *services.Services, files *storage.LocalStorage, ping func(ctx context.Context) error) *Handlers {
	return &Handlers{
		Health:              NewHealthHandler(ping),
		Auth:                NewAuthHandler(svcs.Auth),
		User:                NewUserHandler(svcs.User),
		Team:                NewTeamHandler(svcs.Team),
		ConstructionCompany: NewConstructionCompanyHandler(svcs.ConstructionCompany),
		Development:         NewDevelopmentHandler(svcs.Development, svcs.UnitType, svcs.Unit),
		UnitType:            NewUnitTypeHandler(svcs.UnitType),
		Unit:                NewUnitHandler(svcs.Unit),
		Client:              NewClientHandler(svcs.Client),
		Proposal:            NewProposalHandler(svcs.Proposal, svcs.Document, svcs.Export),
		Contract:            NewContractHandler(svcs.Contract, svcs.Document, svcs.Export, files),
		Commission:          NewCommissionHandler(svcs.Commission, svcs.Export),
		Dashboard:           NewDashboardHandler(svcs.Dashboard),
		Settings:            NewSettingsHandler(svcs.Settings),
		Notification:        NewNotificationHandler(svcs.Notification),
		Audit:               NewAuditHandler(svcs.Audit),
		Job:                 NewJobHandler(svcs.Job),
	}
}

// respondError maps a service error to its HTTP status. Unclassified errors
// are logged, reported to Sentry and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "path", c.FullPath(), "error", err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "erro interno, tente novamente"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrInvalidPassword):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrPrecondition), errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnavailable):
		return http.StatusServiceUnavailable
	case repository.IsNotFound(err):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// badRequest answers a body or query that could not be parsed
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// paramID reads a positive numeric path parameter, answering 400 otherwise
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		badRequest(c, "identificador inválido")
		return 0, false
	}
	return uint(id), true
}

// queryID reads an optional numeric query parameter; zero when absent or malformed
func queryID(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Query(name), 10, 32)
	return uint(id)
}

// queryDate reads an optional YYYY-MM-DD query parameter
func queryDate(c *gin.Context, name string) *time.Time {
	t, err := parseDate(c.Query(name))
	if err != nil {
		return nil
	}
	return t
}

// parseDate accepts YYYY-MM-DD or RFC 3339; empty means no date
func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("data inválida: " + v)
}

// listQuery reads paging, search and sorting parameters
func listQuery(c *gin.Context) *repository.ListQuery {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PerPage < 1 || query.PerPage > 100 {
		query.PerPage = 20
	}
	query.Search = c.Query("search_term")
	query.SortBy = c.Query("sort_by")
	query.SortDir = c.Query("sort_dir")
	return query
}

func pagination(query *repository.ListQuery, total int64) gin.H {
	return gin.H{
		"page":        query.Page,
		"per_page":    query.PerPage,
		"total":       total,
		"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
	}
}

// sendDocument streams a generated PDF inline
func sendDocument(c *gin.Context, doc *services.Document) {
	c.Header("Content-Disposition", `inline; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

// sendExport streams a listing export as an attachment
func sendExport(c *gin.Context, export *services.Export) {
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, export.ContentType, export.Content)
}
