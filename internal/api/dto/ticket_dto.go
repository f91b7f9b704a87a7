package dto

import "time"

// TicketSummary is the ops API representation of a ticket.
type TicketSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	Importance string    `json:"importance"`
	AssigneeID *string   `json:"assignee_id,omitempty"`
	CreatorID  string    `json:"creator_id"`
	ThreadID   string    `json:"thread_id"`
	CreatedAt  time.Time `json:"created_at"`
}
