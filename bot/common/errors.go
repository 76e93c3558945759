package common

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// RespondWithEmbed sends an embed as the interaction response
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error sending embed response: %v", err)
	}
}

// RespondWithContentAndEmbed sends an interaction response carrying both
// plain content and an embed
func RespondWithContentAndEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, content string, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Embeds:  []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error sending embed response: %v", err)
	}
}

// RespondWithError sends a plain error message as an ephemeral response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// NoPermissionEmbed is the fixed response for privileged commands invoked
// without the manage-roles permission
func NoPermissionEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       ":x: Error!",
		Description: "You don't have permission to do that!",
		Color:       ColorDanger,
	}
}

// InternalErrorEmbed is the generic response for unexpected Discord or
// database failures. The underlying error is logged, not shown.
func InternalErrorEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       ":x: Internal Error!",
		Description: "Something went wrong. Please try again later.",
		Color:       ColorDanger,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Report this to an admin!",
		},
	}
}
