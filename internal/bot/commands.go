package bot

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/config"
)

var adminPermission = int64(discordgo.PermissionAdministrator)

// CommandDefinitions declares every slash command the bot exposes.
func CommandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ticket",
			Description: "Manage development tickets",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new ticket",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "title",
							Description: "Ticket title",
							Required:    true,
							MaxLength:   100,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "description",
							Description: "Ticket description",
							Required:    true,
							MaxLength:   1000,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "priority",
							Description: "Priority level",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "🟢 Minor", Value: "Minor"},
								{Name: "🟡 Major", Value: "Major"},
								{Name: "🔴 Critical", Value: "Critical"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "status",
							Description: "Initial status",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "🟢 Open", Value: "Open"},
								{Name: "🟡 In Progress", Value: "In Progress"},
								{Name: "🔵 Under Review", Value: "Under Review"},
								{Name: "✅ Resolved", Value: "Resolved"},
								{Name: "❌ Closed", Value: "Closed"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "assignee",
							Description: "Assign ticket to user",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List all tickets",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "view",
					Description: "View a specific ticket",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Ticket ID",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Delete a specific ticket",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Ticket ID",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:        "setup",
			Description: "Sets up the server for a software development project.",
		},
		{
			Name:                     "clearserver",
			Description:              "Deletes all channels and categories, then creates a new text channel.",
			DefaultMemberPermissions: &adminPermission,
		},
	}
}

// SyncCommands bulk-overwrites the guild's slash commands with the current
// definitions.
func SyncCommands(session *discordgo.Session, cfg config.DiscordConfig, logger *zap.Logger) error {
	definitions := CommandDefinitions()
	if _, err := session.ApplicationCommandBulkOverwrite(cfg.ApplicationID, cfg.GuildID, definitions); err != nil {
		return err
	}
	logger.Info("slash commands synced",
		zap.String("guild_id", cfg.GuildID),
		zap.Int("count", len(definitions)))
	return nil
}
