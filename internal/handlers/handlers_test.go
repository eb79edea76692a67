package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/contratus-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{&services.Error{Kind: services.ErrValidation, Message: "CPF inválido"}, http.StatusUnprocessableEntity},
		{&services.Error{Kind: services.ErrNotFound, Message: "proposta não encontrada"}, http.StatusNotFound},
		{&services.Error{Kind: services.ErrForbidden, Message: "fora do escopo"}, http.StatusForbidden},
		{services.ErrUnauthorized, http.StatusUnauthorized},
		{services.ErrInvalidPassword, http.StatusUnprocessableEntity},
		{&services.Error{Kind: services.ErrPrecondition, Message: "unidade indisponível"}, http.StatusConflict},
		{&services.Error{Kind: services.ErrConflict, Message: "CPF já cadastrado"}, http.StatusConflict},
		{&services.Error{Kind: services.ErrUnavailable, Message: "gerador de PDF indisponível"}, http.StatusServiceUnavailable},
		{fmt.Errorf("load: %w", gorm.ErrRecordNotFound), http.StatusNotFound},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, errorStatus(tt.err))
		})
	}
}

func TestRespondError(t *testing.T) {
	t.Run("classified errors keep their message", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(c, &services.Error{Kind: services.ErrPrecondition, Message: "proposta não está aprovada"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"proposta não está aprovada"}`, w.Body.String())
	})

	t.Run("internal errors are hidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(c, errors.New("pq: relation does not exist"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "relation")
	})
}

func TestParamID(t *testing.T) {
	for _, value := range []string{"abc", "0", "-4", ""} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "proposal_id", Value: value}}

		_, ok := paramID(c, "proposal_id")

		assert.False(t, ok, value)
		assert.Equal(t, http.StatusBadRequest, w.Code, value)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "proposal_id", Value: "42"}}
	id, ok := paramID(c, "proposal_id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestListQuery(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/proposals?page=0&per_page=1000&search_term=Silva&sort_by=number&sort_dir=asc", nil)

	query := listQuery(c)

	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 20, query.PerPage)
	assert.Equal(t, "Silva", query.Search)
	assert.Equal(t, "number", query.SortBy)
	assert.Equal(t, "asc", query.SortDir)
	assert.NotNil(t, query.Filters)
}

func TestPagination(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/clients?page=2&per_page=10", nil)

	p := pagination(listQuery(c), 25)

	assert.Equal(t, 2, p["page"])
	assert.Equal(t, int64(3), p["total_pages"])
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = parseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), *d)

	d, err = parseDate("2024-03-15T10:30:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, 15, d.Day())

	_, err = parseDate("15/03/2024")
	assert.Error(t, err)
}

func TestHealthHandler(t *testing.T) {
	serve := func(ping func(ctx context.Context) error) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/health", NewHealthHandler(ping).Index)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		return w
	}

	w := serve(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "ping runs with a deadline")
		return nil
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"contratus-api","database":"ok"}`, w.Body.String())

	w = serve(func(ctx context.Context) error { return errors.New("connection refused") })
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"degradado","service":"contratus-api","database":"indisponível"}`, w.Body.String())
}
