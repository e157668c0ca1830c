package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunStatusConstants(t *testing.T) {
	// Verify status constants are defined
	statuses := []string{
		RunStatusRunning,
		RunStatusCompleted,
		RunStatusFailed,
		RunStatusNeedsMoreResearch,
	}

	for _, status := range statuses {
		assert.NotEmpty(t, status, "status constant should not be empty")
	}
}

func TestRunType(t *testing.T) {
	// Verify Run struct can be instantiated
	run := Run{
		Company:   "Acme Foods",
		RoleTitle: "VP Quality",
		Channel:   "email",
		Status:    RunStatusRunning,
	}

	assert.Equal(t, "Acme Foods", run.Company)
	assert.Equal(t, "VP Quality", run.RoleTitle)
	assert.Equal(t, "email", run.Channel)
	assert.Equal(t, "running", run.Status)
	assert.Nil(t, run.CompletedAt)
}
