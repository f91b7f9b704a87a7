package bot

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Project scaffold created by /setup.
var setupCategories = []string{"Project", "Development", "Kanban"}

var setupChannels = map[string][]string{
	"Project":     {"general", "project-overview", "resources"},
	"Kanban":      {"todo", "in-progress", "done"},
	"Development": {"dev-discussion", "github", "frontend", "backend", "deployments"},
}

func (h *Handlers) handleSetup(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !isAdmin(i) {
		_ = respondEphemeral(s, i, "You need admin permissions to run this command.")
		return
	}

	for _, categoryName := range setupCategories {
		category, err := s.GuildChannelCreate(i.GuildID, categoryName, discordgo.ChannelTypeGuildCategory)
		if err != nil {
			h.logger.Error("category creation failed",
				zap.String("category", categoryName), zap.Error(err))
			_ = respondEphemeral(s, i, genericErrorReply)
			return
		}
		for _, channelName := range setupChannels[categoryName] {
			_, err := s.GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
				Name:     channelName,
				Type:     discordgo.ChannelTypeGuildText,
				ParentID: category.ID,
			})
			if err != nil {
				h.logger.Error("channel creation failed",
					zap.String("channel", channelName), zap.Error(err))
				_ = respondEphemeral(s, i, genericErrorReply)
				return
			}
		}
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Server setup complete! All necessary channels have been created.",
		},
	})
}

func (h *Handlers) handleClearServer(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Reply first: the channel carrying this interaction is about to go away.
	_ = respondEphemeral(s, i, "Clearing all channels and categories...")

	channels, err := s.GuildChannels(i.GuildID)
	if err != nil {
		h.logger.Error("channel listing failed", zap.Error(err))
		return
	}

	for _, channel := range channels {
		if _, err := s.ChannelDelete(channel.ID); err != nil {
			h.logger.Warn("channel deletion failed",
				zap.String("channel", channel.Name), zap.Error(err))
		}
	}

	if _, err := s.GuildChannelCreate(i.GuildID, "general", discordgo.ChannelTypeGuildText); err != nil {
		h.logger.Error("default channel creation failed", zap.Error(err))
	}
}
