package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/internal/middleware"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// @Summary List Notifications
// @Description Notifications of the current user with the unread count
// @Tags Notifications
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param status query string false "read or unread"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) Index(c *gin.Context) {
	userID := middleware.GetUserID(c)
	query := listQuery(c)
	if status := c.Query("status"); status != "" {
		query.Filters["status"] = status
	}

	notifications, total, err := h.notificationService.FindByUser(c.Request.Context(), userID, query)
	if err != nil {
		respondError(c, err)
		return
	}
	unread, err := h.notificationService.CountUnread(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, notifications[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{
		"notifications": responses,
		"unread_count":  unread,
		"pagination":    pagination(query, total),
	})
}

// @Summary Mark Notification Read
// @Tags Notifications
// @Produce json
// @Param notification_id path int true "Notification ID"
// @Success 200 {object} models.NotificationResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /notifications/{notification_id}/read [patch]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, ok := paramID(c, "notification_id")
	if !ok {
		return
	}
	notification, err := h.notificationService.MarkAsRead(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": notification.ToResponse()})
}

// @Summary Mark All Notifications Read
// @Tags Notifications
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /notifications/mark_all_as_read [post]
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	if err := h.notificationService.MarkAllAsRead(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "todas as notificações marcadas como lidas"})
}

// @Summary Delete Notification
// @Tags Notifications
// @Produce json
// @Param notification_id path int true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /notifications/{notification_id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "notification_id")
	if !ok {
		return
	}
	if err := h.notificationService.Delete(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notificação excluída"})
}

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// @Summary List Audit Logs
// @Description Newest first
// @Tags Audit
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param entity query string false "Entity name, e.g. Proposal"
// @Param entity_id query int false "Entity ID"
// @Param action query string false "CREATE, UPDATE, DELETE, LOGIN, APPROVE, REJECT, CANCEL or STATUS"
// @Param user_id query int false "Acting user"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /audits [get]
func (h *AuditHandler) Index(c *gin.Context) {
	query := listQuery(c)
	for _, key := range []string{"entity", "entity_id", "action", "user_id"} {
		if v := c.Query(key); v != "" {
			query.Filters[key] = v
		}
	}

	logs, total, err := h.auditService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, logs[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"audits": responses, "pagination": pagination(query, total)})
}

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// @Summary Get Settings
// @Description Agency branding and business defaults
// @Tags Settings
// @Produce json
// @Success 200 {object} models.Settings
// @Security BearerAuth
// @Router /settings [get]
func (h *SettingsHandler) Show(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// @Summary Update Settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body services.SettingsInput true "Settings"
// @Success 200 {object} models.Settings
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var in services.SettingsInput
	if err := BindNestedOrFlat(c, "settings", &in); err != nil {
		badRequest(c, "dados de configuração inválidos")
		return
	}
	settings, err := h.settingsService.Update(c.Request.Context(), in, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings, "message": "configurações atualizadas"})
}

// @Summary Upload Logo
// @Description Replaces the agency logo printed on documents
// @Tags Settings
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Logo image"
// @Success 200 {object} models.Settings
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /settings/logo [post]
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		badRequest(c, "logo é obrigatório")
		return
	}
	defer file.Close()

	settings, err := h.settingsService.UploadLogo(c.Request.Context(), file, header, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// @Summary Dashboard
// @Description Proposal, contract, inventory and commission aggregates within the caller's scope
// @Tags Dashboard
// @Produce json
// @Param period query string false "7, 30, 90, year or all" default(30)
// @Param team_id query int false "Filter by team"
// @Param agent_id query int false "Filter by agent"
// @Param development_id query int false "Filter by development"
// @Param status query string false "Filter proposals by status"
// @Success 200 {object} models.Dashboard
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Show(c *gin.Context) {
	dashboard, err := h.dashboardService.Get(c.Request.Context(), middleware.GetPolicy(c), services.DashboardFilters{
		Period:        c.Query("period"),
		TeamID:        queryID(c, "team_id"),
		AgentID:       queryID(c, "agent_id"),
		DevelopmentID: queryID(c, "development_id"),
		Status:        c.Query("status"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// @Summary Dashboard Period Options
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /dashboard/periods [get]
func (h *DashboardHandler) Periods(c *gin.Context) {
	periods := []gin.H{
		{"value": services.Period7Days, "label": "Últimos 7 dias"},
		{"value": services.Period30Days, "label": "Últimos 30 dias"},
		{"value": services.Period90Days, "label": "Últimos 90 dias"},
		{"value": services.PeriodYear, "label": "Este ano"},
		{"value": services.PeriodAll, "label": "Todo o período"},
	}
	c.JSON(http.StatusOK, gin.H{"periods": periods, "default": services.Period30Days})
}
