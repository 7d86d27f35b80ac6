package task

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistrationConfirmationTask(t *testing.T) {
	tk, err := NewRegistrationConfirmationTask("asha.rao@example.com", "Asha Rao", "JF2026-001", 99)
	require.NoError(t, err)

	assert.Equal(t, RegistrationConfirmationTaskName, tk.Type())

	var payload RegistrationConfirmation
	require.NoError(t, json.Unmarshal(tk.Payload(), &payload))

	assert.Equal(t, "asha.rao@example.com", payload.Email)
	assert.Equal(t, "Asha Rao", payload.Name)
	assert.Equal(t, "JF2026-001", payload.SerialNumber)
	assert.Equal(t, int64(99), payload.Amount)
}
