// Package bot hosts the Discord-facing layer: the gateway session, slash
// command declarations, the interaction router and the handlers behind every
// command, button and select menu.
package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/spec-kit/ticket-bot/internal/config"
)

// NewSession builds a gateway session with the intents the bot requires:
// guilds for channel and thread operations, guild members for the assignee
// selection list.
func NewSession(cfg config.DiscordConfig) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers
	return session, nil
}
