package admin

import (
	"fmt"

	"indexbot/bot/common"
	"indexbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

const (
	forceJoinImageURL   = "https://media.giphy.com/media/3d78lX84bkU6T4zNOg/giphy.gif"
	forceRemoveImageURL = "https://media.giphy.com/media/xT5LMV6TnIItuFJWms/giphy.gif"
)

// forceJoinEmbed builds the response for /forcejoin
func forceJoinEmbed(target *discordgo.User, role *discordgo.Role, alreadySubscribed bool) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Force Join",
		Description: fmt.Sprintf("Forcing %s to be notified by %s.", target.Mention(), role.Mention()),
		Color:       common.ColorForce,
		Image:       &discordgo.MessageEmbedImage{URL: forceJoinImageURL},
	}
	builder := common.NewEmbedBuilder(embed)

	if alreadySubscribed {
		embed.Color = common.ColorDanger
		builder.AddField(":x: Error!", fmt.Sprintf("Already in %s!", role.Mention()), false)
	} else {
		builder.AddField(":video_game: Successfully added user to the game!",
			fmt.Sprintf("Added %s to %s!", target.Mention(), role.Mention()), false)
	}

	return embed
}

// forceRemoveNotSubscribedEmbed builds the error response for force removing
// a user who was never subscribed
func forceRemoveNotSubscribedEmbed(target *discordgo.User, role *discordgo.Role) *discordgo.MessageEmbed {
	embed := forceRemoveBase(target, role)
	embed.Color = common.ColorDanger
	common.NewEmbedBuilder(embed).AddField(":x: Error!",
		fmt.Sprintf("Not receiving notifications for %s!", role.Mention()), false)
	return embed
}

// forceRemoveEmbed builds the response for a successful /forceremove
func forceRemoveEmbed(target *discordgo.User, role *discordgo.Role, result *interfaces.LeaveResult) *discordgo.MessageEmbed {
	embed := forceRemoveBase(target, role)
	builder := common.NewEmbedBuilder(embed)

	roleRef := role.Mention()
	if result.RoleDeleted {
		builder.AddField(":broken_heart: Deleting role",
			fmt.Sprintf("Deleting role %q", role.Name), false)
		embed.Color = common.ColorWarning
		roleRef = role.Name
	}

	builder.AddField(":no_bell: Successfully unsubscribed from game!",
		fmt.Sprintf("Unsubscribed from notifications for %s.", roleRef), false)

	return embed
}

func forceRemoveBase(target *discordgo.User, role *discordgo.Role) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Force Remove",
		Description: fmt.Sprintf("Forcing %s to be not notified by %s.", target.Mention(), role.Mention()),
		Color:       common.ColorForce,
		Image:       &discordgo.MessageEmbedImage{URL: forceRemoveImageURL},
	}
}

// removeRoleEmbed builds the response for /removerole. The description lists
// the affected users so they see why the role disappeared.
func removeRoleEmbed(role *discordgo.Role, result *interfaces.RemoveRoleResult) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Removing game",
		Description: common.UserMentionList(result.SubscriberIDs),
		Color:       common.ColorRemoval,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Make sure you are aware!"},
	}

	if result.RoleDeleted {
		common.NewEmbedBuilder(embed).AddField(":broken_heart: Deleting role",
			fmt.Sprintf("Deleting role %q", role.Name), false)
	}

	return embed
}
