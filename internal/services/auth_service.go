package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sjperalta/contratus-api/internal/config"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// refreshTokenTTL is how long a refresh token stays valid
const refreshTokenTTL = 30 * 24 * time.Hour

// AuthService handles authentication operations
type AuthService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	cfg              *config.Config
	auditSvc         *AuditService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, rtRepo repository.RefreshTokenRepository, cfg *config.Config, auditSvc *AuditService) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: rtRepo,
		cfg:              cfg,
		auditSvc:         auditSvc,
	}
}

// LoginResult represents the result of a login attempt
type LoginResult struct {
	Token        string              `json:"token"`
	RefreshToken string              `json:"refresh_token"`
	User         models.UserResponse `json:"user"`
}

var (
	errInvalidCredentials = newError(ErrUnauthorized, "credenciais inválidas")
	errInactiveAccount    = newError(ErrUnauthorized, "conta inativa")
	errInvalidToken       = newError(ErrUnauthorized, "token inválido")
	errExpiredToken       = newError(ErrUnauthorized, "token expirado")
)

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, email, password, ip, userAgent string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, errInvalidCredentials
	}

	if !user.IsActive() {
		return nil, errInactiveAccount
	}

	if !VerifyPassword(password, user.EncryptedPassword) {
		return nil, errInvalidCredentials
	}

	result, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	_ = s.userRepo.UpdateLastLogin(ctx, user.ID)
	s.auditSvc.Log(ctx, user.ID, models.AuditActionLogin, "User", user.ID, "Login realizado", ip, userAgent)
	return result, nil
}

// RefreshToken validates a refresh token and rotates it
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error) {
	rt, err := s.refreshTokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		return nil, errInvalidToken
	}

	if rt.IsExpired(time.Now()) {
		_ = s.refreshTokenRepo.Delete(ctx, refreshToken)
		return nil, errExpiredToken
	}

	user, err := s.userRepo.FindByID(ctx, rt.UserID)
	if err != nil {
		return nil, notFoundError("usuário não encontrado")
	}

	if !user.IsActive() {
		return nil, errInactiveAccount
	}

	_ = s.refreshTokenRepo.Delete(ctx, refreshToken)
	return s.issue(ctx, user)
}

// Logout invalidates a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.refreshTokenRepo.Delete(ctx, refreshToken)
}

// RevokeAll drops every refresh token of a user, e.g. after deactivation
func (s *AuthService) RevokeAll(ctx context.Context, userID uint) error {
	return s.refreshTokenRepo.DeleteByUser(ctx, userID)
}

func (s *AuthService) issue(ctx context.Context, user *models.User) (*LoginResult, error) {
	token, err := s.generateJWT(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:        token,
		RefreshToken: refreshToken,
		User:         user.ToResponse(),
	}, nil
}

// generateJWT creates a new JWT token for a user. Role and team are
// informational; authorization reloads the user on every request.
func (s *AuthService) generateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// generateRefreshToken creates and stores a new opaque refresh token
func (s *AuthService) generateRefreshToken(ctx context.Context, userID uint) (string, error) {
	token := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	expiresAt := time.Now().Add(refreshTokenTTL)

	rt := &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := s.refreshTokenRepo.Create(ctx, rt); err != nil {
		return "", err
	}
	return token, nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword compares a password with a hash
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
