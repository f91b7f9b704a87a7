package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen        TicketStatus = "Open"
	TicketStatusInProgress  TicketStatus = "In Progress"
	TicketStatusUnderReview TicketStatus = "Under Review"
	TicketStatusResolved    TicketStatus = "Resolved"
	TicketStatusClosed      TicketStatus = "Closed"
)

// TicketImportance enumerates priority levels.
type TicketImportance string

const (
	TicketImportanceMinor    TicketImportance = "Minor"
	TicketImportanceMajor    TicketImportance = "Major"
	TicketImportanceCritical TicketImportance = "Critical"
)

// Statuses lists all statuses in presentation order.
func Statuses() []TicketStatus {
	return []TicketStatus{
		TicketStatusOpen,
		TicketStatusInProgress,
		TicketStatusUnderReview,
		TicketStatusResolved,
		TicketStatusClosed,
	}
}

// Importances lists all importance levels in presentation order.
func Importances() []TicketImportance {
	return []TicketImportance{
		TicketImportanceMinor,
		TicketImportanceMajor,
		TicketImportanceCritical,
	}
}

// IsValid reports whether the status is one of the enumerated values.
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusUnderReview,
		TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// IsValid reports whether the importance is one of the enumerated values.
func (i TicketImportance) IsValid() bool {
	switch i {
	case TicketImportanceMinor, TicketImportanceMajor, TicketImportanceCritical:
		return true
	}
	return false
}

// Ticket is the aggregate for tracked units of work. The stored record is the
// single source of truth; the message at ThreadID/MessageID is a derived view
// that gets re-rendered after every mutation.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Status      TicketStatus
	Importance  TicketImportance
	AssigneeID  *string
	CreatorID   string
	ThreadID    string
	MessageID   string
	CreatedAt   time.Time
}

// TicketPatch describes a partial update. Only non-nil fields are applied.
type TicketPatch struct {
	Status     *TicketStatus
	Importance *TicketImportance
	AssigneeID *string
}
