package notifier

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"indexbot/bot/common"
	"indexbot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// roleSubscribers pairs a mentioned game role with its stored subscribers
type roleSubscribers struct {
	role        *entities.GameRole
	subscribers []int64
}

// matchTrackedRoles returns the mentioned role IDs that are tracked game
// roles, preserving mention order
func matchTrackedRoles(mentionRoles []string, tracked []int64) []int64 {
	trackedSet := make(map[int64]struct{}, len(tracked))
	for _, roleID := range tracked {
		trackedSet[roleID] = struct{}{}
	}

	var matched []int64
	for _, mention := range mentionRoles {
		roleID, err := strconv.ParseInt(mention, 10, 64)
		if err != nil {
			continue
		}
		if _, ok := trackedSet[roleID]; ok {
			matched = append(matched, roleID)
		}
	}
	return matched
}

// buildNotification composes the ping for a message that mentioned game
// roles: the mention content split into sendable chunks, and an embed quoting
// the message with one field per game listing its subscribers. The last chunk
// is sent together with the embed.
func buildNotification(m *discordgo.MessageCreate, groups []roleSubscribers) ([]string, *discordgo.MessageEmbed) {
	embed := &discordgo.MessageEmbed{
		Description: "> " + m.Content,
		Color:       rand.Intn(0xFFFFFF + 1),
		Author: &discordgo.MessageEmbedAuthor{
			Name:    authorName(m),
			URL:     jumpURL(m),
			IconURL: m.Author.AvatarURL(""),
		},
	}
	builder := common.NewEmbedBuilder(embed)

	var mentions strings.Builder
	for _, group := range groups {
		content := common.UserMentionList(group.subscribers)
		mentions.WriteString(content)
		mentions.WriteString(" ")
		builder.SafeAddField(group.role.Name, content, true)
	}

	return common.ChunkAtWhitespace(mentions.String(), common.MaxContentLength), embed
}

// jumpURL builds the permalink to the triggering message
func jumpURL(m *discordgo.MessageCreate) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", m.GuildID, m.ChannelID, m.ID)
}

func authorName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}
