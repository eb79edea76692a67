package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/internal/services"
)

// AuthHandler issues and rotates the token pair of a session
type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Credentials is the login body. The e-mail is matched case-insensitively.
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionToken carries the refresh token of an open session
type SessionToken struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// bindSession reads a SessionToken, answering 400 when it is missing
func bindSession(c *gin.Context) (string, bool) {
	var body SessionToken
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.RefreshToken) == "" {
		badRequest(c, "informe o refresh token da sessão")
		return "", false
	}
	return strings.TrimSpace(body.RefreshToken), true
}

// @Summary Open a session
// @Description Checks e-mail and password and returns an access token with its refresh token. The client IP and user agent are kept in the access log.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Credentials true "E-mail and password"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		badRequest(c, "informe um e-mail válido e a senha")
		return
	}

	email := strings.ToLower(strings.TrimSpace(creds.Email))
	session, err := h.authService.Login(c.Request.Context(), email, creds.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// @Summary Rotate a session
// @Description Exchanges a refresh token for a new pair. The old refresh token stops working.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SessionToken true "Current refresh token"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, ok := bindSession(c)
	if !ok {
		return
	}

	session, err := h.authService.RefreshToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// @Summary Close a session
// @Description Revokes the refresh token. Access tokens already issued run until they expire.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SessionToken true "Refresh token to revoke"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := bindSession(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
