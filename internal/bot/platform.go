package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/render"
)

// threadAutoArchiveMinutes is 24 hours, the platform's daily auto-archive tier.
const threadAutoArchiveMinutes = 1440

// ThreadMessenger adapts a Discord session to the service's ThreadPlatform
// boundary: thread lifecycle plus the rendered ticket message.
type ThreadMessenger struct {
	session *discordgo.Session
}

// NewThreadMessenger wraps the session.
func NewThreadMessenger(session *discordgo.Session) *ThreadMessenger {
	return &ThreadMessenger{session: session}
}

// CreateTicketThread starts a public thread under the given channel.
func (m *ThreadMessenger) CreateTicketThread(ctx context.Context, parentChannelID, name string) (string, error) {
	thread, err := m.session.ThreadStartComplex(parentChannelID, &discordgo.ThreadStart{
		Name:                name,
		AutoArchiveDuration: threadAutoArchiveMinutes,
		Type:                discordgo.ChannelTypeGuildPublicThread,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}
	return thread.ID, nil
}

// PostTicketMessage renders the ticket and posts it with its control row.
func (m *ThreadMessenger) PostTicketMessage(ctx context.Context, ticket *domain.Ticket) (string, error) {
	msg, err := m.session.ChannelMessageSendComplex(ticket.ThreadID, &discordgo.MessageSend{
		Content:    render.Message(ticket),
		Components: render.Controls(ticket.ID),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

// EditTicketMessage re-renders the ticket into its existing message.
func (m *ThreadMessenger) EditTicketMessage(ctx context.Context, ticket *domain.Ticket) error {
	content := render.Message(ticket)
	components := render.Controls(ticket.ID)
	_, err := m.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    ticket.ThreadID,
		ID:         ticket.MessageID,
		Content:    &content,
		Components: &components,
	}, discordgo.WithContext(ctx))
	return err
}

// DeleteThread removes the ticket's thread. Threads are channels on this
// platform.
func (m *ThreadMessenger) DeleteThread(ctx context.Context, threadID, reason string) error {
	_, err := m.session.ChannelDelete(threadID,
		discordgo.WithContext(ctx),
		discordgo.WithAuditLogReason(reason))
	return err
}
