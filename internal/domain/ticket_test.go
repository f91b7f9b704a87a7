package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValidity(t *testing.T) {
	for _, status := range Statuses() {
		assert.True(t, status.IsValid(), "status %s", status)
	}
	assert.False(t, TicketStatus("Parked").IsValid())
	assert.False(t, TicketStatus("").IsValid())
	assert.False(t, TicketStatus("open").IsValid(), "enum values are case sensitive")
}

func TestImportanceValidity(t *testing.T) {
	for _, importance := range Importances() {
		assert.True(t, importance.IsValid(), "importance %s", importance)
	}
	assert.False(t, TicketImportance("Cosmic").IsValid())
	assert.False(t, TicketImportance("").IsValid())
}

func TestEnumOrder(t *testing.T) {
	assert.Equal(t, []TicketStatus{
		TicketStatusOpen,
		TicketStatusInProgress,
		TicketStatusUnderReview,
		TicketStatusResolved,
		TicketStatusClosed,
	}, Statuses())

	assert.Equal(t, []TicketImportance{
		TicketImportanceMinor,
		TicketImportanceMajor,
		TicketImportanceCritical,
	}, Importances())
}
