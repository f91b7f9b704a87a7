package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	actions := []Action{
		ActionAssign,
		ActionStatus,
		ActionImportance,
		ActionConfirmDelete,
		ActionCancelDelete,
		ActionAssignSelect,
		ActionStatusSelect,
		ActionImportanceSelect,
	}

	for _, action := range actions {
		token := Encode(action, "MB2K3X9A")
		decoded, ticketID, err := Decode(token)
		require.NoError(t, err, "action %s", action)
		assert.Equal(t, action, decoded)
		assert.Equal(t, "MB2K3X9A", ticketID)
	}
}

func TestDecodeRejectsUnknownAction(t *testing.T) {
	_, _, err := Decode("reboot_MB2K3X9A")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestDecodeRejectsMalformedTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "no separator", token: "assign"},
		{name: "empty action", token: "_MB2K3X9A"},
		{name: "empty id", token: "assign_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.token)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}
