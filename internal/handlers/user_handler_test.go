package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRequestBinding(t *testing.T) {
	tests := []struct {
		name         string
		payload      map[string]interface{}
		expectedName string
		expectedRole string
	}{
		{
			name: "flat body",
			payload: map[string]interface{}{
				"email":     "ana@imobiliaria.com.br",
				"password":  "segredo123",
				"full_name": "Ana Souza",
				"role":      "manager",
			},
			expectedName: "Ana Souza",
			expectedRole: "manager",
		},
		{
			name: "nested under user",
			payload: map[string]interface{}{
				"user": map[string]interface{}{
					"email":     "bruno@imobiliaria.com.br",
					"full_name": "Bruno Lima",
				},
			},
			expectedName: "Bruno Lima",
			expectedRole: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			body, _ := json.Marshal(tt.payload)
			c.Request = httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req UserRequest
			require.NoError(t, BindNestedOrFlat(c, "user", &req))

			user := req.user()
			assert.Equal(t, tt.expectedName, user.FullName)
			assert.Equal(t, tt.expectedRole, user.Role)
		})
	}
}

type mockUserRepo struct {
	repository.UserRepository
	mockList func(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error)
}

func (m *mockUserRepo) List(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
	return m.mockList(ctx, query)
}

func TestUserHandler_Index_DefaultStatus(t *testing.T) {
	mockRepo := &mockUserRepo{}
	userService := services.NewUserService(mockRepo, nil, nil, nil, nil, nil)
	handler := NewUserHandler(userService)

	var capturedStatus string
	mockRepo.mockList = func(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
		capturedStatus = query.Filters["status"]
		return []models.User{}, 0, nil
	}

	// No status provided -> defaults to "active"
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/users", nil)
	handler.Index(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusActive, capturedStatus)

	// "all" removes the filter
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/users?status=all", nil)
	handler.Index(c)
	assert.Equal(t, "", capturedStatus)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/users?status=inactive", nil)
	handler.Index(c)
	assert.Equal(t, "inactive", capturedStatus)
}

func TestUserHandler_ChangePassword_OtherUserForbidden(t *testing.T) {
	handler := NewUserHandler(services.NewUserService(&mockUserRepo{}, nil, nil, nil, nil, nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/users/5/change_password", bytes.NewBufferString(`{"new_password":"novaSenha123"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "user_id", Value: "5"}}
	c.Set("userID", uint(3))
	c.Set("userRole", models.RoleAgent)

	handler.ChangePassword(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserHandler_ChangePassword_SelfNeedsCurrentPassword(t *testing.T) {
	handler := NewUserHandler(services.NewUserService(&mockUserRepo{}, nil, nil, nil, nil, nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/users/3/change_password", bytes.NewBufferString(`{"new_password":"novaSenha123"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "user_id", Value: "3"}}
	c.Set("userID", uint(3))
	c.Set("userRole", models.RoleAgent)

	handler.ChangePassword(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "senha atual é obrigatória")
}
