package server

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSEWriter_WriteEvent(t *testing.T) {
	rec := httptest.NewRecorder()

	sse, err := NewSSEWriter(rec)
	require.NoError(t, err)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	require.NoError(t, sse.WriteEvent("progress", map[string]string{"step": "signals"}))

	body := rec.Body.String()
	assert.Contains(t, body, "event: progress\n")
	assert.Contains(t, body, `data: {"step":"signals"}`)
	assert.True(t, rec.Flushed)
}

func TestSSEWriter_CompleteAndError(t *testing.T) {
	rec := httptest.NewRecorder()

	sse, err := NewSSEWriter(rec)
	require.NoError(t, err)

	sse.WriteError("generation failed")
	sse.WriteComplete("run-1", "completed")

	body := rec.Body.String()
	assert.Contains(t, body, "event: error\n")
	assert.Contains(t, body, "generation failed")
	assert.Contains(t, body, "event: complete\n")
	assert.Contains(t, body, `"run_id":"run-1"`)
}
