package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sjperalta/contratus-api/internal/config"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	repository.UserRepository
	mockFindByEmail func(ctx context.Context, email string) (*models.User, error)
	mockFindByID    func(ctx context.Context, id uint) (*models.User, error)
	lastLogin       uint
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.mockFindByEmail(ctx, email)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.mockFindByID(ctx, id)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id uint) error {
	m.lastLogin = id
	return nil
}

type mockRTRepo struct {
	repository.RefreshTokenRepository
	mockFindByToken func(ctx context.Context, token string) (*models.RefreshToken, error)
	created         []*models.RefreshToken
	deleted         []string
}

func (m *mockRTRepo) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	return m.mockFindByToken(ctx, token)
}

func (m *mockRTRepo) Create(ctx context.Context, rt *models.RefreshToken) error {
	m.created = append(m.created, rt)
	return nil
}

func (m *mockRTRepo) Delete(ctx context.Context, token string) error {
	m.deleted = append(m.deleted, token)
	return nil
}

func testAuthConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := HashPassword("segredo123")
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		mockFindByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 7, Email: email, Role: models.RoleAgent, Status: models.StatusActive, EncryptedPassword: hash}, nil
		},
	}
	rtRepo := &mockRTRepo{}
	service := NewAuthService(userRepo, rtRepo, testAuthConfig(), nil)

	result, err := service.Login(context.Background(), "agente@example.com", "segredo123", "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Len(t, result.RefreshToken, 64)
	assert.Equal(t, uint(7), userRepo.lastLogin)
	require.Len(t, rtRepo.created, 1)
	assert.True(t, rtRepo.created[0].ExpiresAt.After(time.Now()))

	parsed, err := jwt.Parse(result.Token, func(*jwt.Token) (any, error) { return []byte("test-secret"), nil })
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, models.RoleAgent, claims["role"])
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, _ := HashPassword("segredo123")
	userRepo := &mockUserRepo{
		mockFindByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{Email: email, Status: models.StatusActive, EncryptedPassword: hash}, nil
		},
	}
	service := NewAuthService(userRepo, &mockRTRepo{}, testAuthConfig(), nil)

	result, err := service.Login(context.Background(), "agente@example.com", "errada", "", "")
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "credenciais inválidas", err.Error())
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	userRepo := &mockUserRepo{
		mockFindByEmail: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{Email: email, Status: models.StatusInactive}, nil
		},
	}
	service := NewAuthService(userRepo, nil, nil, nil)

	result, err := service.Login(context.Background(), "inactive@example.com", "password", "", "")
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "conta inativa", err.Error())
}

func TestAuthService_RefreshToken_InactiveUser(t *testing.T) {
	userRepo := &mockUserRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Status: models.StatusInactive}, nil
		},
	}
	rtRepo := &mockRTRepo{
		mockFindByToken: func(ctx context.Context, token string) (*models.RefreshToken, error) {
			return &models.RefreshToken{UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
	service := NewAuthService(userRepo, rtRepo, nil, nil)

	result, err := service.RefreshToken(context.Background(), "token")
	assert.Nil(t, result)
	assert.Equal(t, "conta inativa", err.Error())
}

func TestAuthService_RefreshToken_Expired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	rtRepo := &mockRTRepo{
		mockFindByToken: func(ctx context.Context, token string) (*models.RefreshToken, error) {
			return &models.RefreshToken{UserID: 1, ExpiresAt: past}, nil
		},
	}
	service := NewAuthService(&mockUserRepo{}, rtRepo, nil, nil)

	_, err := service.RefreshToken(context.Background(), "old")
	assert.Equal(t, "token expirado", err.Error())
	assert.Equal(t, []string{"old"}, rtRepo.deleted)
}

func TestAuthService_RefreshToken_Rotates(t *testing.T) {
	userRepo := &mockUserRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Status: models.StatusActive}, nil
		},
	}
	rtRepo := &mockRTRepo{
		mockFindByToken: func(ctx context.Context, token string) (*models.RefreshToken, error) {
			return &models.RefreshToken{UserID: 3, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
	service := NewAuthService(userRepo, rtRepo, testAuthConfig(), nil)

	result, err := service.RefreshToken(context.Background(), "old")
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, rtRepo.deleted)
	require.Len(t, rtRepo.created, 1)
	assert.Equal(t, rtRepo.created[0].Token, result.RefreshToken)
	assert.NotEqual(t, "old", result.RefreshToken)
}
