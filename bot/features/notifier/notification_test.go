package notifier

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"indexbot/bot/common"
	"indexbot/domain/entities"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTrackedRoles(t *testing.T) {
	t.Parallel()

	tracked := []int64{100, 200, 300}

	tests := []struct {
		name     string
		mentions []string
		expected []int64
	}{
		{
			name:     "no mentions",
			mentions: nil,
			expected: nil,
		},
		{
			name:     "untracked roles are ignored",
			mentions: []string{"999", "888"},
			expected: nil,
		},
		{
			name:     "tracked roles keep mention order",
			mentions: []string{"300", "100"},
			expected: []int64{300, 100},
		},
		{
			name:     "mixed tracked and untracked",
			mentions: []string{"999", "200"},
			expected: []int64{200},
		},
		{
			name:     "malformed IDs are skipped",
			mentions: []string{"not-a-snowflake", "100"},
			expected: []int64{100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, matchTrackedRoles(tt.mentions, tracked))
		})
	}
}

func newTestMessage(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "555",
			GuildID:   "123",
			ChannelID: "456",
			Content:   content,
			Author:    &discordgo.User{ID: "42", Username: "poster"},
		},
	}
}

func TestBuildNotificationPingsSubscribers(t *testing.T) {
	t.Parallel()

	groups := []roleSubscribers{
		{
			role:        &entities.GameRole{ID: 100, GuildID: 123, Name: "factorio"},
			subscribers: []int64{1111, 2222},
		},
	}

	chunks, embed := buildNotification(newTestMessage("anyone up for @factorio?"), groups)

	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "<@1111>")
	assert.Contains(t, chunks[0], "<@2222>")
	assert.NotContains(t, chunks[0], "<@3333>")

	assert.Equal(t, "> anyone up for @factorio?", embed.Description)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "factorio", embed.Fields[0].Name)
	assert.Equal(t, "<@1111> <@2222>", embed.Fields[0].Value)

	require.NotNil(t, embed.Author)
	assert.Equal(t, "poster", embed.Author.Name)
	assert.Equal(t, "https://discord.com/channels/123/456/555", embed.Author.URL)
}

func TestBuildNotificationOneFieldPerRole(t *testing.T) {
	t.Parallel()

	groups := []roleSubscribers{
		{
			role:        &entities.GameRole{ID: 100, GuildID: 123, Name: "factorio"},
			subscribers: []int64{1111},
		},
		{
			role:        &entities.GameRole{ID: 200, GuildID: 123, Name: "rimworld"},
			subscribers: []int64{2222, 3333},
		},
	}

	chunks, embed := buildNotification(newTestMessage("game night"), groups)

	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "factorio", embed.Fields[0].Name)
	assert.Equal(t, "rimworld", embed.Fields[1].Name)

	// Both groups land in the content, each followed by a separator
	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "<@1111>")
	assert.Contains(t, chunks[0], "<@2222> <@3333>")
}

func TestBuildNotificationChunksLongMentionLists(t *testing.T) {
	t.Parallel()

	// Enough subscribers that the mention content outgrows a single message
	subscribers := make([]int64, 300)
	for idx := range subscribers {
		subscribers[idx] = int64(1_000_000_000_000_000_000 + idx)
	}
	groups := []roleSubscribers{
		{
			role:        &entities.GameRole{ID: 100, GuildID: 123, Name: "factorio"},
			subscribers: subscribers,
		},
	}

	chunks, embed := buildNotification(newTestMessage("big game"), groups)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), common.MaxContentLength)
	}

	// Reassembling the chunks restores every mention
	joined := strings.Join(chunks, "")
	for _, userID := range subscribers {
		assert.Contains(t, joined, fmt.Sprintf("<@%d>", userID))
	}

	require.NotEmpty(t, embed.Fields)
}

func TestBuildNotificationPrefersMemberNick(t *testing.T) {
	t.Parallel()

	m := newTestMessage("hello")
	m.Member = &discordgo.Member{Nick: "The Poster"}

	_, embed := buildNotification(m, []roleSubscribers{
		{role: &entities.GameRole{ID: 100, GuildID: 123, Name: "factorio"}, subscribers: []int64{1}},
	})

	assert.Equal(t, "The Poster", embed.Author.Name)
}
