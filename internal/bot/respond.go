package bot

import (
	"github.com/bwmarrin/discordgo"

	apperrors "github.com/spec-kit/ticket-bot/pkg/util"
)

const genericErrorReply = "❌ An error occurred while processing your request."

// respondEphemeral replies to an interaction with a message only the invoker
// can see.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string, components ...discordgo.MessageComponent) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// updateMessage edits the message the interaction originated from. Passing no
// components strips every control, making the message terminal.
func updateMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string, components ...discordgo.MessageComponent) error {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
		},
	})
}

// userReply maps a handler error onto the reply shown to the invoking user.
func userReply(err error) string {
	domainErr := apperrors.ToDomainError(err)
	switch domainErr.Code {
	case "VALIDATION_FAILED":
		return "❌ " + domainErr.Message + "."
	case "NOT_FOUND":
		return "❌ Ticket not found."
	case "FORBIDDEN":
		return "❌ You can only delete tickets you created."
	default:
		return genericErrorReply
	}
}
