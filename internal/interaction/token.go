// Package interaction defines the opaque tokens carried by every interactive
// control. A token encodes an action kind and a ticket identifier; decoding
// rejects anything outside the closed action set.
package interaction

import (
	"errors"
	"strings"
)

// Action identifies what an interactive control does.
type Action string

// Control activations.
const (
	ActionAssign        Action = "assign"
	ActionStatus        Action = "status"
	ActionImportance    Action = "importance"
	ActionConfirmDelete Action = "confirmDelete"
	ActionCancelDelete  Action = "cancelDelete"
)

// Menu selections.
const (
	ActionAssignSelect     Action = "assignSelect"
	ActionStatusSelect     Action = "statusSelect"
	ActionImportanceSelect Action = "importanceSelect"
)

// ErrUnknownAction marks a token whose action kind is outside the closed set.
var ErrUnknownAction = errors.New("unknown interaction action")

// ErrMalformedToken marks a token that does not split into action and id.
var ErrMalformedToken = errors.New("malformed interaction token")

const separator = "_"

var knownActions = map[Action]struct{}{
	ActionAssign:           {},
	ActionStatus:           {},
	ActionImportance:       {},
	ActionConfirmDelete:    {},
	ActionCancelDelete:     {},
	ActionAssignSelect:     {},
	ActionStatusSelect:     {},
	ActionImportanceSelect: {},
}

// Encode builds the custom id for a control acting on the given ticket.
func Encode(action Action, ticketID string) string {
	return string(action) + separator + ticketID
}

// Decode splits a custom id back into its action kind and ticket id.
func Decode(token string) (Action, string, error) {
	parts := strings.SplitN(token, separator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrMalformedToken
	}
	action := Action(parts[0])
	if _, ok := knownActions[action]; !ok {
		return "", "", ErrUnknownAction
	}
	return action, parts[1], nil
}
