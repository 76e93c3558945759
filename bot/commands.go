package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord. When GuildIDs
// is configured the commands are registered per guild (instant propagation);
// otherwise they are registered globally.
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "game",
			Description: "Adds you to the notification list for a game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "input",
					Description: "Which game do you want to be notified for?",
					Required:    true,
				},
			},
		},
		{
			Name:        "join",
			Description: "Adds you to the notification list for a game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "Which game do you want to be notified for?",
					Required:    true,
				},
			},
		},
		{
			Name:        "remove",
			Description: "Removes you from the notification list for a game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "Which game do you want to not be notified for?",
					Required:    true,
				},
			},
		},
		{
			Name:        "mygames",
			Description: "Displays all the games you are being notified for",
		},
		{
			Name:        "roles",
			Description: "Displays all the games in the server, or of a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Which user do you want to display the roles of?",
					Required:    false,
				},
			},
		},
		{
			Name:        "forcejoin",
			Description: "Forces a user to join a role (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Which user do you want to add?",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "Which game do you want them to be notified for?",
					Required:    true,
				},
			},
		},
		{
			Name:        "forceremove",
			Description: "Forces a user to be removed from a role (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Which user do you want to remove?",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "Which game do you want them to not be notified for?",
					Required:    true,
				},
			},
		},
		{
			Name:        "removerole",
			Description: "Deletes a role (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "Which role do you want to remove?",
					Required:    true,
				},
			},
		},
		{
			Name:        "help",
			Description: "Displays help information",
		},
	}

	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	// Guild-scoped registration when configured, global otherwise
	guildIDs := b.config.GuildIDs
	if len(guildIDs) == 0 {
		guildIDs = []string{""}
	}

	for _, guildID := range guildIDs {
		for _, cmd := range commands {
			if _, err := b.session.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
				return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
			}
		}
	}

	return nil
}
