package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/internal/middleware"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// @Summary List Users
// @Description Get a paginated list of users
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name, e-mail, CPF or CRECI"
// @Param role query string false "Filter by role"
// @Param status query string false "Filter by status (active, inactive, all)"
// @Param team_id query int false "Filter by team"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) Index(c *gin.Context) {
	query := listQuery(c)
	query.Filters["role"] = c.Query("role")
	query.Filters["team_id"] = c.Query("team_id")

	status := c.Query("status")
	if status == "" {
		status = models.StatusActive
	} else if status == "all" {
		status = ""
	}
	query.Filters["status"] = status

	users, total, err := h.userService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"users": responses, "pagination": pagination(query, total)})
}

// @Summary Current User
// @Description Get the authenticated user
// @Tags Users
// @Produce json
// @Success 200 {object} models.UserResponse
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userService.FindByID(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToResponse()})
}

// @Summary Get User
// @Description Get a user by ID
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id} [get]
func (h *UserHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	user, err := h.userService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToResponse()})
}

type UserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password"`
	FullName string  `json:"full_name" binding:"required"`
	CPF      *string `json:"cpf"`
	CRECI    string  `json:"creci"`
	Phone    string  `json:"phone"`
	Role     string  `json:"role"`
	TeamID   *uint   `json:"team_id"`
}

func (r UserRequest) user() *models.User {
	return &models.User{
		Email:    r.Email,
		FullName: r.FullName,
		CPF:      r.CPF,
		CRECI:    r.CRECI,
		Phone:    r.Phone,
		Role:     r.Role,
		TeamID:   r.TeamID,
	}
}

// @Summary Create User
// @Description Create a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UserRequest true "User Data"
// @Success 201 {object} models.UserResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := BindNestedOrFlat(c, "user", &req); err != nil {
		badRequest(c, "dados do usuário inválidos")
		return
	}

	user := req.user()
	if err := h.userService.Create(c.Request.Context(), user, req.Password, middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user.ToResponse(), "message": "usuário criado"})
}

// @Summary Update User
// @Description Update profile, role and team. Changing role or team ends the user's sessions.
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param request body UserRequest true "User Data"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	var req UserRequest
	if err := BindNestedOrFlat(c, "user", &req); err != nil {
		badRequest(c, "dados do usuário inválidos")
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req.user(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.ToResponse(), "message": "usuário atualizado"})
}

// @Summary Toggle User Status
// @Description Activate or deactivate a user
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Security BearerAuth
// @Router /users/{user_id}/toggle_status [put]
func (h *UserHandler) ToggleStatus(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	user, err := h.userService.ToggleStatus(c.Request.Context(), id, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToResponse(), "message": "status atualizado"})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// @Summary Change Password
// @Description Change a password. Admins may reset another user's password without the current one.
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param request body ChangePasswordRequest true "Password Data"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id}/change_password [patch]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "nova senha é obrigatória")
		return
	}

	currentUserID := middleware.GetUserID(c)
	switch {
	case middleware.IsAdmin(c) && id != currentUserID:
		if err := h.userService.ForceChangePassword(c.Request.Context(), id, req.NewPassword, currentUserID); err != nil {
			respondError(c, err)
			return
		}
	case id == currentUserID:
		if req.CurrentPassword == "" {
			badRequest(c, "senha atual é obrigatória")
			return
		}
		if err := h.userService.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
			respondError(c, err)
			return
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "você não pode alterar a senha de outro usuário"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "senha atualizada"})
}

// @Summary Resend Welcome Email
// @Description Send the account-created email again
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id}/resend_confirmation [post]
func (h *UserHandler) ResendConfirmation(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	if err := h.userService.ResendConfirmation(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "e-mail reenviado"})
}
