package bot

import (
	"context"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/interaction"
	"github.com/spec-kit/ticket-bot/internal/observability"
	"github.com/spec-kit/ticket-bot/internal/service"
	apperrors "github.com/spec-kit/ticket-bot/pkg/util"
)

// CommandHandler handles one slash command invocation.
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate)

// ComponentHandler handles a control activation or menu selection against a
// ticket the router has already loaded.
type ComponentHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, ticket *domain.Ticket)

// RouteTable is the explicit routing table built once at startup and handed
// to the dispatch entry point.
type RouteTable struct {
	Commands   map[string]CommandHandler
	Components map[interaction.Action]ComponentHandler
}

// Router dispatches inbound interaction events.
type Router struct {
	table   *RouteTable
	tickets *service.TicketService
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewRouter builds the dispatcher.
func NewRouter(table *RouteTable, tickets *service.TicketService, logger *zap.Logger, metrics *observability.Metrics) *Router {
	return &Router{table: table, tickets: tickets, logger: logger, metrics: metrics}
}

// Handle is the session's InteractionCreate callback. A panic in any handler
// is recovered here and degrades to the generic error reply; one bad
// interaction never takes down the dispatch loop.
func (r *Router) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("interaction handler panicked",
				zap.Any("panic", rec),
				zap.ByteString("stack", debug.Stack()))
			r.metrics.RecordError("interaction", "PANIC")
			_ = respondEphemeral(s, i, genericErrorReply)
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		handler, ok := r.table.Commands[name]
		if !ok {
			return
		}
		r.metrics.RecordInteraction("command:" + name)
		handler(s, i)

	case discordgo.InteractionMessageComponent:
		r.handleComponent(s, i)
	}
}

func (r *Router) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	action, ticketID, err := interaction.Decode(customID)
	if err != nil {
		// Unknown or malformed tokens are a silent no-op; the control set
		// is closed so these should not occur.
		r.logger.Debug("unroutable component interaction",
			zap.String("custom_id", customID),
			zap.Error(err))
		return
	}

	handler, ok := r.table.Components[action]
	if !ok {
		return
	}

	ticket, err := r.tickets.GetTicket(context.Background(), ticketID)
	if err != nil {
		r.metrics.RecordError(string(action), errorCode(err))
		if !apperrors.IsNotFound(err) {
			r.logger.Error("ticket load failed",
				zap.String("ticket_id", ticketID),
				zap.Error(err))
		}
		_ = respondEphemeral(s, i, userReply(err))
		return
	}

	r.metrics.RecordInteraction("component:" + string(action))
	handler(s, i, ticket)
}

func errorCode(err error) string {
	return apperrors.ToDomainError(err).Code
}
