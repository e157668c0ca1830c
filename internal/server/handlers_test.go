package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medley/agentic-sales-framework-sub000/internal/pipeline"
)

func TestValidateProspect(t *testing.T) {
	assert.NoError(t, validateProspect(&pipeline.Prospect{
		CompanyName: "Acme Foods",
		RoleTitle:   "VP Quality",
	}))

	err := validateProspect(&pipeline.Prospect{RoleTitle: "VP Quality"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.Contains(t, err.Error(), "company_name")

	err = validateProspect(&pipeline.Prospect{CompanyName: "Acme Foods"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role_title")
}

func TestParseRunID(t *testing.T) {
	want := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/runs/"+want.String(), nil)
	req.SetPathValue("id", want.String())

	got, err := parseRunID(req)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	req = httptest.NewRequest(http.MethodGet, "/api/runs/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	_, err = parseRunID(req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}
