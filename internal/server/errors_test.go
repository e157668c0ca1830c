package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	runID := uuid.New()

	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrRunNotFound{RunID: runID}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrBriefNotFound{RunID: runID}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "company_name", Message: "required"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("pool exhausted")))
}

func TestErrorMessages(t *testing.T) {
	runID := uuid.New()

	assert.Contains(t, (&ErrRunNotFound{RunID: runID}).Error(), runID.String())
	assert.Contains(t, (&ErrValidation{Field: "channel", Message: "unknown"}).Error(), "channel")
}
