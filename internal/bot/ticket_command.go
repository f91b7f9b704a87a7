package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/interaction"
	"github.com/spec-kit/ticket-bot/internal/render"
	"github.com/spec-kit/ticket-bot/internal/service"
	apperrors "github.com/spec-kit/ticket-bot/pkg/util"
)

const listPageSize = 10

// Handlers implements every command and component handler.
type Handlers struct {
	tickets *service.TicketService
	members *MemberDirectory
	logger  *zap.Logger
}

// NewHandlers constructs the handler set.
func NewHandlers(tickets *service.TicketService, members *MemberDirectory, logger *zap.Logger) *Handlers {
	return &Handlers{tickets: tickets, members: members, logger: logger}
}

// Routes builds the routing table consumed by the Router.
func (h *Handlers) Routes() *RouteTable {
	return &RouteTable{
		Commands: map[string]CommandHandler{
			"ticket":      h.handleTicket,
			"setup":       h.handleSetup,
			"clearserver": h.handleClearServer,
		},
		Components: map[interaction.Action]ComponentHandler{
			interaction.ActionAssign:           h.handleAssignButton,
			interaction.ActionStatus:           h.handleStatusButton,
			interaction.ActionImportance:       h.handleImportanceButton,
			interaction.ActionConfirmDelete:    h.handleConfirmDelete,
			interaction.ActionCancelDelete:     h.handleCancelDelete,
			interaction.ActionAssignSelect:     h.handleAssignSelect,
			interaction.ActionStatusSelect:     h.handleStatusSelect,
			interaction.ActionImportanceSelect: h.handleImportanceSelect,
		},
	}
}

func (h *Handlers) handleTicket(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]

	switch sub.Name {
	case "create":
		h.handleCreate(s, i, sub)
	case "list":
		h.handleList(s, i)
	case "view":
		h.handleView(s, i, sub)
	case "delete":
		h.handleDelete(s, i, sub)
	}
}

func (h *Handlers) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	opts := optionMap(sub.Options)

	input := service.CreateInput{
		Title:       opts["title"].StringValue(),
		Description: opts["description"].StringValue(),
		CreatorID:   invokerID(i),
		ChannelID:   i.ChannelID,
	}
	if opt, ok := opts["priority"]; ok {
		input.Importance = domain.TicketImportance(opt.StringValue())
	}
	if opt, ok := opts["status"]; ok {
		input.Status = domain.TicketStatus(opt.StringValue())
	}
	if opt, ok := opts["assignee"]; ok {
		if user := opt.UserValue(s); user != nil {
			assigneeID := user.ID
			input.AssigneeID = &assigneeID
		}
	}

	ticket, err := h.tickets.CreateTicket(context.Background(), input)
	if err != nil {
		h.logger.Error("ticket creation failed", zap.Error(err))
		if apperrors.IsValidation(err) {
			_ = respondEphemeral(s, i, userReply(err))
			return
		}
		_ = respondEphemeral(s, i, "❌ Failed to create ticket. Please try again.")
		return
	}

	_ = respondEphemeral(s, i, fmt.Sprintf("✅ Ticket **%s** created successfully! <#%s>", ticket.ID, ticket.ThreadID))
}

func (h *Handlers) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) {
	tickets, total, err := h.tickets.ListTickets(context.Background(), listPageSize)
	if err != nil {
		h.logger.Error("ticket listing failed", zap.Error(err))
		_ = respondEphemeral(s, i, genericErrorReply)
		return
	}
	_ = respondEphemeral(s, i, render.List(tickets, total))
}

func (h *Handlers) handleView(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	opts := optionMap(sub.Options)
	ticketID := opts["id"].StringValue()

	ticket, err := h.tickets.GetTicket(context.Background(), ticketID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			_ = respondEphemeral(s, i, fmt.Sprintf("❌ Ticket with ID `%s` not found.", ticketID))
			return
		}
		h.logger.Error("ticket view failed", zap.Error(err))
		_ = respondEphemeral(s, i, genericErrorReply)
		return
	}

	_ = respondEphemeral(s, i, render.Detail(ticket))
}

func (h *Handlers) handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	opts := optionMap(sub.Options)
	ticketID := opts["id"].StringValue()

	ticket, err := h.tickets.RequestDelete(context.Background(), ticketID, invokerID(i), isAdmin(i))
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			_ = respondEphemeral(s, i, fmt.Sprintf("❌ Ticket with ID `%s` not found.", ticketID))
		case apperrors.IsForbidden(err):
			_ = respondEphemeral(s, i, userReply(err))
		default:
			h.logger.Error("ticket delete request failed", zap.Error(err))
			_ = respondEphemeral(s, i, genericErrorReply)
		}
		return
	}

	_ = respondEphemeral(s, i, render.DeletePrompt(ticket), render.DeleteControls(ticket.ID)...)
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	result := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		result[opt.Name] = opt
	}
	return result
}

func invokerID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func isAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}
