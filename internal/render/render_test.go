package render

import (
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/interaction"
)

func sampleTicket() *domain.Ticket {
	return &domain.Ticket{
		ID:          "MB2K3X9A",
		Title:       "Login page broken",
		Description: "Submit button does nothing",
		Status:      domain.TicketStatusOpen,
		Importance:  domain.TicketImportanceMinor,
		CreatorID:   "111222333",
		ThreadID:    "900100200",
		MessageID:   "900100201",
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGlyphs(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "status open", got: StatusGlyph(domain.TicketStatusOpen), want: "🟢"},
		{name: "status in progress", got: StatusGlyph(domain.TicketStatusInProgress), want: "🟡"},
		{name: "status under review", got: StatusGlyph(domain.TicketStatusUnderReview), want: "🔵"},
		{name: "status resolved", got: StatusGlyph(domain.TicketStatusResolved), want: "✅"},
		{name: "status closed", got: StatusGlyph(domain.TicketStatusClosed), want: "❌"},
		{name: "status unknown", got: StatusGlyph(domain.TicketStatus("Bogus")), want: "⚪"},
		{name: "importance minor", got: ImportanceGlyph(domain.TicketImportanceMinor), want: "🟢"},
		{name: "importance major", got: ImportanceGlyph(domain.TicketImportanceMajor), want: "🟡"},
		{name: "importance critical", got: ImportanceGlyph(domain.TicketImportanceCritical), want: "🔴"},
		{name: "importance unknown", got: ImportanceGlyph(domain.TicketImportance("Bogus")), want: "⚪"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestMention(t *testing.T) {
	assert.Equal(t, "Unassigned", Mention(nil))

	empty := ""
	assert.Equal(t, "Unassigned", Mention(&empty))

	userID := "444555666"
	assert.Equal(t, "<@444555666>", Mention(&userID))
}

func TestMessageContainsEveryField(t *testing.T) {
	ticket := sampleTicket()
	assignee := "444555666"
	ticket.AssigneeID = &assignee

	msg := Message(ticket)

	assert.Contains(t, msg, "**Ticket MB2K3X9A**")
	assert.Contains(t, msg, "**Title:** Login page broken")
	assert.Contains(t, msg, "**Description:** Submit button does nothing")
	assert.Contains(t, msg, "**Status:** Open")
	assert.Contains(t, msg, "**Importance:** Minor")
	assert.Contains(t, msg, "**Assignee:** <@444555666>")
	assert.Contains(t, msg, "**Creator:** <@111222333>")
	assert.True(t, strings.HasPrefix(msg, "🟢🟢"), "message starts with status and importance glyphs")
}

func TestMessageIsDeterministic(t *testing.T) {
	ticket := sampleTicket()
	assert.Equal(t, Message(ticket), Message(ticket))
	assert.Equal(t, Detail(ticket), Detail(ticket))
}

func TestDetailAppendsThreadReference(t *testing.T) {
	ticket := sampleTicket()
	detail := Detail(ticket)

	assert.True(t, strings.HasPrefix(detail, Message(ticket)))
	assert.Contains(t, detail, "**Thread:** <#900100200>")
}

func TestControlsCarryScopedCustomIDs(t *testing.T) {
	components := Controls("MB2K3X9A")
	require.Len(t, components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 3)

	wantIDs := []string{
		interaction.Encode(interaction.ActionAssign, "MB2K3X9A"),
		interaction.Encode(interaction.ActionStatus, "MB2K3X9A"),
		interaction.Encode(interaction.ActionImportance, "MB2K3X9A"),
	}
	for i, component := range row.Components {
		button, ok := component.(discordgo.Button)
		require.True(t, ok)
		assert.Equal(t, wantIDs[i], button.CustomID)
	}
}

func TestDeleteControlsCarryScopedCustomIDs(t *testing.T) {
	components := DeleteControls("MB2K3X9A")
	require.Len(t, components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 2)

	confirm := row.Components[0].(discordgo.Button)
	cancel := row.Components[1].(discordgo.Button)
	assert.Equal(t, interaction.Encode(interaction.ActionConfirmDelete, "MB2K3X9A"), confirm.CustomID)
	assert.Equal(t, discordgo.DangerButton, confirm.Style)
	assert.Equal(t, interaction.Encode(interaction.ActionCancelDelete, "MB2K3X9A"), cancel.CustomID)
}

func TestListEmpty(t *testing.T) {
	assert.Equal(t, "📋 No tickets found.", List(nil, 0))
}

func TestListShowsFooterOnlyWhenTruncated(t *testing.T) {
	tickets := []domain.Ticket{*sampleTicket()}

	full := List(tickets, 1)
	assert.NotContains(t, full, "Showing")
	assert.Contains(t, full, "**📋 Ticket List:**")
	assert.Contains(t, full, "**MB2K3X9A** | Login page broken")

	truncated := List(tickets, 12)
	assert.Contains(t, truncated, "*Showing 1 of 12 tickets*")
}

func TestDeleteFlowTexts(t *testing.T) {
	ticket := sampleTicket()

	prompt := DeletePrompt(ticket)
	assert.Contains(t, prompt, "Are you sure you want to delete ticket MB2K3X9A?")
	assert.Contains(t, prompt, "**Title:** Login page broken")
	assert.Contains(t, prompt, "This action cannot be undone!")

	assert.Contains(t, Deleted("MB2K3X9A"), "Ticket MB2K3X9A has been deleted successfully!")
	assert.Contains(t, DeleteCancelled("MB2K3X9A"), "Ticket MB2K3X9A remains active.")
}

func TestSelectOptionsCoverFullEnums(t *testing.T) {
	statusOpts := StatusOptions()
	require.Len(t, statusOpts, len(domain.Statuses()))
	for i, status := range domain.Statuses() {
		assert.Equal(t, string(status), statusOpts[i].Value)
		assert.Contains(t, statusOpts[i].Label, string(status))
	}

	importanceOpts := ImportanceOptions()
	require.Len(t, importanceOpts, len(domain.Importances()))
	for i, importance := range domain.Importances() {
		assert.Equal(t, string(importance), importanceOpts[i].Value)
	}
}
