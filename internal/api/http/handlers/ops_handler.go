package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-bot/internal/api/dto"
	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/observability"
	"github.com/spec-kit/ticket-bot/internal/service"
)

// OpsHandler exposes read-only operational endpoints.
type OpsHandler struct {
	tickets *service.TicketService
	metrics *observability.Metrics
}

// NewOpsHandler constructs handler.
func NewOpsHandler(tickets *service.TicketService, metrics *observability.Metrics) *OpsHandler {
	return &OpsHandler{tickets: tickets, metrics: metrics}
}

// ListTickets GET /ops/tickets.
func (h *OpsHandler) ListTickets(c *fiber.Ctx) error {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	tickets, total, err := h.tickets.ListTickets(c.Context(), limit)
	if err != nil {
		return err
	}

	items := make([]dto.TicketSummary, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketSummary(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items, "total": total})
}

// Metrics GET /ops/metrics.
func (h *OpsHandler) Metrics(c *fiber.Ctx) error {
	interactions, errs := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"interactions": interactions,
		"errors":       errs,
	})
}

func ticketSummary(t *domain.Ticket) dto.TicketSummary {
	return dto.TicketSummary{
		ID:         t.ID,
		Title:      t.Title,
		Status:     string(t.Status),
		Importance: string(t.Importance),
		AssigneeID: t.AssigneeID,
		CreatorID:  t.CreatorID,
		ThreadID:   t.ThreadID,
		CreatedAt:  t.CreatedAt,
	}
}
