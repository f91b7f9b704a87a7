package bot

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/interaction"
	"github.com/spec-kit/ticket-bot/internal/render"
)

// maxSelectOptions is the platform cap on select menu entries.
const maxSelectOptions = 25

func (h *Handlers) handleAssignButton(s *discordgo.Session, i *discordgo.InteractionCreate, ticket *domain.Ticket) {
	members, err := h.members.Assignable(context.Background(), i.GuildID)
	if err != nil {
		h.logger.Error("member listing failed", zap.Error(err))
		_ = respondEphemeral(s, i, genericErrorReply)
		return
	}
	if len(members) == 0 {
		_ = respondEphemeral(s, i, "❌ No members found to assign.")
		return
	}
	if len(members) > maxSelectOptions {
		members = members[:maxSelectOptions]
	}

	options := make([]discordgo.SelectMenuOption, 0, len(members))
	for _, member := range members {
		options = append(options, discordgo.SelectMenuOption{
			Label:       truncate(member.DisplayName, 100),
			Description: member.Username,
			Value:       member.ID,
		})
	}

	_ = respondEphemeral(s, i, "👤 Select an assignee:", selectRow(
		interaction.Encode(interaction.ActionAssignSelect, ticket.ID),
		"Select an assignee...",
		options,
	))
}

func (h *Handlers) handleStatusButton(s *discordgo.Session, i *discordgo.InteractionCreate, ticket *domain.Ticket) {
	_ = respondEphemeral(s, i, "📊 Select new status:", selectRow(
		interaction.Encode(interaction.ActionStatusSelect, ticket.ID),
		"Select status...",
		render.StatusOptions(),
	))
}

func (h *Handlers) handleImportanceButton(s *discordgo.Session, i *discordgo.InteractionCreate, ticket *domain.Ticket) {
	_ = respondEphemeral(s, i, "⚠️ Select priority level:", selectRow(
		interaction.Encode(interaction.ActionImportanceSelect, ticket.ID),
		"Select priority level...",
		render.ImportanceOptions(),
	))
}

func (h *Handlers) handleAssignSelect(s *discordgo.Session, i *discordgo.InteractionCreate, ticket *domain.Ticket) {
	selected := selectedValue(i)
	if selected == "" {
		return
	}
	if _, err := h.tickets.Assign(context.Background(), ticket.ID, selected, invokerID(i)); err != nil {
		h.logger.Error("assign failed", zap.String("ticket_id", ticket.ID), zap.Error(err))
		_ = respondEphemeral(s, i, userReply(err))
		return
	}
	name := h.members.DisplayName(context.Background(), i.GuildID, selected)
	_ = respondEphemeral(s, i, "✅ 👤 Assigned to "+name)
}

func (h *Handlers) handleStatusSelect(s *discordgo.Session, i *discordgo.InteractionCreate, ticket *domain.Ticket) {
	selected := selectedValue(i)
	if selected == "" {
		return
	}
	if _, err := h.tickets.SetStatus(context.Background(), ticket.ID, domain.TicketStatus(selected), invokerID(i)); err != nil {
		h.logger.Error("status change failed", zap.String("ticket_id", ticket.ID), zap.Error(err))
		_ = respondEphemeral(s, i, userReply(err))
		return
	}
	_ = respondEphemeral(s, i, "✅ 📊 Status changed to "+selected)
}

func (h *Handlers) handleImportanceSelect(s *discordgo.Session, i *discordgo.InteractionCreate, ticket *domain.Ticket) {
	selected := selectedValue(i)
	if selected == "" {
		return
	}
	if _, err := h.tickets.SetImportance(context.Background(), ticket.ID, domain.TicketImportance(selected), invokerID(i)); err != nil {
		h.logger.Error("priority change failed", zap.String("ticket_id", ticket.ID), zap.Error(err))
		_ = respondEphemeral(s, i, userReply(err))
		return
	}
	_ = respondEphemeral(s, i, "✅ ⚠️ Priority changed to "+selected)
}

func (h *Handlers) handleConfirmDelete(s *discordgo.Session, i *discordgo.InteractionCreate, ticket *domain.Ticket) {
	if _, err := h.tickets.ConfirmDelete(context.Background(), ticket.ID, invokerID(i)); err != nil {
		h.logger.Error("ticket deletion failed", zap.String("ticket_id", ticket.ID), zap.Error(err))
		_ = updateMessage(s, i, fmt.Sprintf("❌ **Error deleting ticket %s.**\n\nPlease try again or contact an administrator.", ticket.ID))
		return
	}
	_ = updateMessage(s, i, render.Deleted(ticket.ID))
}

func (h *Handlers) handleCancelDelete(s *discordgo.Session, i *discordgo.InteractionCreate, ticket *domain.Ticket) {
	_ = updateMessage(s, i, render.DeleteCancelled(ticket.ID))
}

func selectRow(customID, placeholder string, options []discordgo.SelectMenuOption) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    customID,
				Placeholder: placeholder,
				Options:     options,
			},
		},
	}
}

func selectedValue(i *discordgo.InteractionCreate) string {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// truncate caps a label at max runes. Display names can carry multi-byte
// characters, so slicing bytes would produce invalid UTF-8.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
