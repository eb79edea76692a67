package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type witnessBody struct {
	Name string `json:"name"`
	CPF  string `json:"cpf"`
	Age  int    `json:"age"`
}

func bindingContext(body string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindNestedOrFlat(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		body     string
		expected witnessBody
		wantErr  bool
	}{
		{
			name:     "wrapped under key",
			key:      "witness",
			body:     `{"witness": {"name": "Ana Souza", "cpf": "52998224725", "age": 30}}`,
			expected: witnessBody{Name: "Ana Souza", CPF: "52998224725", Age: 30},
		},
		{
			name:     "bare object",
			key:      "witness",
			body:     `{"name": "Bruno Lima", "age": 25}`,
			expected: witnessBody{Name: "Bruno Lima", Age: 25},
		},
		{
			name:     "other keys fall back to flat",
			key:      "witness",
			body:     `{"proposal": "x", "name": "Carla", "age": 40}`,
			expected: witnessBody{Name: "Carla", Age: 40},
		},
		{
			name:    "wrong field type",
			key:     "witness",
			body:    `{"name": "Davi", "age": "trinta"}`,
			wantErr: true,
		},
		{
			name:    "wrapped with wrong field type",
			key:     "witness",
			body:    `{"witness": {"age": "trinta"}}`,
			wantErr: true,
		},
		{
			name:    "wrapped value is not an object",
			key:     "witness",
			body:    `{"witness": "Eva"}`,
			wantErr: true,
		},
		{
			name:    "blank body",
			key:     "witness",
			body:    "  ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got witnessBody
			err := BindNestedOrFlat(bindingContext(tt.body), tt.key, &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBindNestedOrFlat_BodyRestored(t *testing.T) {
	body := `{"witness": {"name": "Ana"}}`
	c := bindingContext(body)

	var got witnessBody
	require.NoError(t, BindNestedOrFlat(c, "witness", &got))

	again, err := io.ReadAll(c.Request.Body)
	require.NoError(t, err)
	assert.Equal(t, body, string(again))
}

func TestBindNestedOrFlat_BlankBodyError(t *testing.T) {
	var got witnessBody
	err := BindNestedOrFlat(bindingContext(""), "witness", &got)
	assert.ErrorIs(t, err, errEmptyBody)
}
