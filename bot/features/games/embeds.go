package games

import (
	"fmt"
	"strings"

	"indexbot/bot/common"
	"indexbot/domain/entities"
	"indexbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// joinEmbed builds the response for /game and /join
func joinEmbed(result *interfaces.JoinResult, authorName string, alreadySubscribed bool) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Adding to game",
		Color: common.ColorPrimary,
	}
	builder := common.NewEmbedBuilder(embed)

	if result.RoleCreated {
		builder.AddField(":white_check_mark: New role created!",
			fmt.Sprintf("New role %s created!", result.Role.Mention()), false)
		embed.Color = common.ColorSuccess
	}

	if alreadySubscribed {
		embed.Color = common.ColorDanger
		builder.AddField(":x: Error!",
			fmt.Sprintf("Already in %s!", result.Role.Mention()), false)
	} else {
		builder.AddField(":video_game: Successfully added user to the game!",
			fmt.Sprintf("Added %s to %s!", authorName, result.Role.Mention()), false)
	}

	return embed
}

// notSubscribedEmbed builds the error response for removing a game the user
// never subscribed to
func notSubscribedEmbed(roleID int64) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Removing from game",
		Color: common.ColorDanger,
	}
	common.NewEmbedBuilder(embed).AddField(":x: Error!",
		fmt.Sprintf("Not receiving notifications for %s!", common.RoleMention(roleID)), false)
	return embed
}

// leaveEmbed builds the response for a successful /remove
func leaveEmbed(result *interfaces.LeaveResult) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Removing from game",
		Color: common.ColorPrimary,
	}
	builder := common.NewEmbedBuilder(embed)

	// A mention of a deleted role renders as garbage, so fall back to the name
	roleRef := result.Role.Mention()
	if result.RoleDeleted {
		builder.AddField(":broken_heart: Deleting role",
			fmt.Sprintf("Deleting role %q", result.Role.Name), false)
		embed.Color = common.ColorWarning
		roleRef = result.Role.Name
	}

	builder.AddField(":no_bell: Successfully unsubscribed from game!",
		fmt.Sprintf("Unsubscribed from notifications for %s.", roleRef), false)

	return embed
}

// myGamesEmbed builds the response for /mygames
func myGamesEmbed(roles []*entities.GameRole) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Your roles",
		Color: common.ColorPrimary,
	}
	builder := common.NewEmbedBuilder(embed)

	if len(roles) == 0 {
		builder.AddField(":x: Error!", "You have no roles!", true)
		embed.Color = common.ColorDanger
		return embed
	}

	builder.SafeAddField(":video_game: Here are your roles", mentionList(roles), false)
	return embed
}

// rolesEmbed builds the response for /roles. The owner is either the guild
// name or the target user's display name.
func rolesEmbed(owner string, forGuild bool, roles []*entities.GameRole) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's roles", owner),
		Color: common.ColorPrimary,
	}
	builder := common.NewEmbedBuilder(embed)

	if len(roles) == 0 {
		subject := owner
		if forGuild {
			subject = "server"
		}
		builder.AddField(":x: Error!", fmt.Sprintf("This %s has no roles!", subject), false)
		embed.Color = common.ColorDanger
		return embed
	}

	builder.SafeAddField(":video_game: Roles", mentionList(roles), false)
	return embed
}

// helpEmbed builds the static /help response
func helpEmbed() *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "IndexBot Help",
		Description: "I will ping everyone subscribed to a game if someone mentions that game!",
		Color:       common.ColorPrimary,
	}
	builder := common.NewEmbedBuilder(embed)

	builder.AddField("/help", "Displays help information", false)
	builder.AddField("/game <input> or /join <role>", "Adds you to the notification list for a game", false)
	builder.AddField("/remove <role>", "Removes you from the notification list for a game", false)
	builder.AddField("/mygames", "Displays all the games you are being notified for", false)
	builder.AddField("/roles [user]", "Displays all the games in the server, or of a user", false)
	builder.AddField("/forcejoin <user> <role>", "Forces a user to join a role (admin)", false)
	builder.AddField("/forceremove <user> <role>", "Forces a user to be removed from a role (admin)", false)
	builder.AddField("/removerole <role>", "Deletes a role (admin)", false)

	return embed
}

// mentionList joins role mentions one per line
func mentionList(roles []*entities.GameRole) string {
	mentions := make([]string, len(roles))
	for idx, role := range roles {
		mentions[idx] = role.Mention()
	}
	return strings.Join(mentions, "\n")
}
