package events

import (
	"time"

	"github.com/spec-kit/ticket-bot/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated           EventType = "ticket_created"
	EventTicketAssigned          EventType = "ticket_assigned"
	EventTicketStatusChanged     EventType = "ticket_status_changed"
	EventTicketImportanceChanged EventType = "ticket_importance_changed"
	EventTicketDeleted           EventType = "ticket_deleted"
)

// Event represents a domain event emitted by the ticket service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Title      string                  `json:"title"`
	Status     domain.TicketStatus     `json:"status"`
	Importance domain.TicketImportance `json:"importance"`
	ThreadID   string                  `json:"thread_id"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AssigneeID string `json:"assignee_id"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketImportanceChangedPayload payload.
type TicketImportanceChangedPayload struct {
	OldImportance domain.TicketImportance `json:"old_importance"`
	NewImportance domain.TicketImportance `json:"new_importance"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	Title    string `json:"title"`
	ThreadID string `json:"thread_id"`
}
