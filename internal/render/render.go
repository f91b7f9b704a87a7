// Package render maps ticket records onto Discord message text and
// interactive controls. Rendering is deterministic: identical input yields
// byte-identical output, so refreshing a message after a no-op mutation is
// idempotent.
package render

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/interaction"
)

const neutralGlyph = "⚪"

var statusGlyphs = map[domain.TicketStatus]string{
	domain.TicketStatusOpen:        "🟢",
	domain.TicketStatusInProgress:  "🟡",
	domain.TicketStatusUnderReview: "🔵",
	domain.TicketStatusResolved:    "✅",
	domain.TicketStatusClosed:      "❌",
}

var importanceGlyphs = map[domain.TicketImportance]string{
	domain.TicketImportanceMinor:    "🟢",
	domain.TicketImportanceMajor:    "🟡",
	domain.TicketImportanceCritical: "🔴",
}

// StatusGlyph returns the indicator for a status. Unknown values fall back
// to a neutral glyph; the enum invariant means that should never happen.
func StatusGlyph(status domain.TicketStatus) string {
	if glyph, ok := statusGlyphs[status]; ok {
		return glyph
	}
	return neutralGlyph
}

// ImportanceGlyph returns the indicator for an importance level.
func ImportanceGlyph(importance domain.TicketImportance) string {
	if glyph, ok := importanceGlyphs[importance]; ok {
		return glyph
	}
	return neutralGlyph
}

// Mention formats an assignee reference, or "Unassigned".
func Mention(userID *string) string {
	if userID == nil || *userID == "" {
		return "Unassigned"
	}
	return fmt.Sprintf("<@%s>", *userID)
}

// Message renders the ticket body posted inside its thread.
func Message(t *domain.Ticket) string {
	return fmt.Sprintf("%s%s **Ticket %s**\n"+
		"**Title:** %s\n"+
		"**Description:** %s\n"+
		"**Status:** %s\n"+
		"**Importance:** %s\n"+
		"**Assignee:** %s\n"+
		"**Creator:** <@%s>",
		StatusGlyph(t.Status), ImportanceGlyph(t.Importance), t.ID,
		t.Title,
		t.Description,
		t.Status,
		t.Importance,
		Mention(t.AssigneeID),
		t.CreatorID,
	)
}

// Detail renders the full view of a ticket, including its thread reference.
func Detail(t *domain.Ticket) string {
	return Message(t) + fmt.Sprintf("\n**Thread:** <#%s>", t.ThreadID)
}

// Controls returns the fixed control row attached to a live ticket message.
func Controls(ticketID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "👤 Assign",
					Style:    discordgo.PrimaryButton,
					CustomID: interaction.Encode(interaction.ActionAssign, ticketID),
				},
				discordgo.Button{
					Label:    "📊 Status",
					Style:    discordgo.SecondaryButton,
					CustomID: interaction.Encode(interaction.ActionStatus, ticketID),
				},
				discordgo.Button{
					Label:    "⚠️ Priority",
					Style:    discordgo.SecondaryButton,
					CustomID: interaction.Encode(interaction.ActionImportance, ticketID),
				},
			},
		},
	}
}

// SummaryLine renders one list row for a ticket.
func SummaryLine(t *domain.Ticket) string {
	return fmt.Sprintf("**%s** | %s\nStatus: %s %s | Priority: %s %s | Assignee: %s\n",
		t.ID, t.Title,
		StatusGlyph(t.Status), t.Status,
		ImportanceGlyph(t.Importance), t.Importance,
		Mention(t.AssigneeID),
	)
}

// List renders the ticket list reply. total is the full store count; tickets
// holds at most the page being shown.
func List(tickets []domain.Ticket, total int) string {
	if len(tickets) == 0 {
		return "📋 No tickets found."
	}
	var b strings.Builder
	b.WriteString("**📋 Ticket List:**\n\n")
	for i := range tickets {
		b.WriteString(SummaryLine(&tickets[i]))
		b.WriteString("\n")
	}
	if total > len(tickets) {
		b.WriteString(fmt.Sprintf("\n*Showing %d of %d tickets*", len(tickets), total))
	}
	return b.String()
}

// DeletePrompt renders the confirmation question for a pending deletion.
func DeletePrompt(t *domain.Ticket) string {
	return fmt.Sprintf("⚠️ **Are you sure you want to delete ticket %s?**\n\n"+
		"**Title:** %s\n"+
		"**This action cannot be undone!**", t.ID, t.Title)
}

// DeleteControls returns the confirm/cancel pair scoped to one ticket.
func DeleteControls(ticketID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "✅ Yes, Delete",
					Style:    discordgo.DangerButton,
					CustomID: interaction.Encode(interaction.ActionConfirmDelete, ticketID),
				},
				discordgo.Button{
					Label:    "❌ Cancel",
					Style:    discordgo.SecondaryButton,
					CustomID: interaction.Encode(interaction.ActionCancelDelete, ticketID),
				},
			},
		},
	}
}

// Deleted renders the terminal state after a confirmed deletion.
func Deleted(ticketID string) string {
	return fmt.Sprintf("✅ **Ticket %s has been deleted successfully!**\n\n"+
		"The ticket has been removed from the system.", ticketID)
}

// DeleteCancelled renders the terminal state after a cancelled deletion.
func DeleteCancelled(ticketID string) string {
	return fmt.Sprintf("❌ **Ticket deletion cancelled.**\n\nTicket %s remains active.", ticketID)
}

// StatusOptions returns the select menu options for the status flow.
func StatusOptions() []discordgo.SelectMenuOption {
	statuses := domain.Statuses()
	options := make([]discordgo.SelectMenuOption, 0, len(statuses))
	for _, status := range statuses {
		glyph := StatusGlyph(status)
		options = append(options, discordgo.SelectMenuOption{
			Label: glyph + " " + string(status),
			Value: string(status),
			Emoji: &discordgo.ComponentEmoji{Name: glyph},
		})
	}
	return options
}

// ImportanceOptions returns the select menu options for the priority flow.
func ImportanceOptions() []discordgo.SelectMenuOption {
	importances := domain.Importances()
	options := make([]discordgo.SelectMenuOption, 0, len(importances))
	for _, importance := range importances {
		glyph := ImportanceGlyph(importance)
		options = append(options, discordgo.SelectMenuOption{
			Label: glyph + " " + string(importance),
			Value: string(importance),
			Emoji: &discordgo.ComponentEmoji{Name: glyph},
		})
	}
	return options
}
