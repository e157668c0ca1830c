package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubValidator accepts exactly one token string
type stubValidator struct {
	token      string
	operatorID uuid.UUID
}

type stubClaims struct{ id uuid.UUID }

func (c *stubClaims) GetOperatorID() uuid.UUID { return c.id }

func (v *stubValidator) ValidateToken(tokenString string) (OperatorIDGetter, error) {
	if tokenString != v.token {
		return nil, errors.New("invalid token")
	}
	return &stubClaims{id: v.operatorID}, nil
}

func TestAuth_ValidToken(t *testing.T) {
	operatorID := uuid.New()
	validator := &stubValidator{token: "good-token", operatorID: operatorID}

	var gotID uuid.UUID
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetOperatorID(r)
		require.NoError(t, err)
		gotID = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, operatorID, gotID)
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	validator := &stubValidator{token: "good-token", operatorID: uuid.New()}
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_Rejections(t *testing.T) {
	validator := &stubValidator{token: "good-token", operatorID: uuid.New()}
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "good-token"},
		{"wrong scheme", "Basic good-token"},
		{"bad token", "Bearer wrong-token"},
		{"extra parts", "Bearer one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetOperatorID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)

	_, err := GetOperatorID(req)
	assert.Error(t, err)
}
