package common

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedBuilder_SafeAddField(t *testing.T) {
	t.Run("short value is a single field", func(t *testing.T) {
		b := NewEmbedBuilder(&discordgo.MessageEmbed{Title: "Your roles"})

		ok := b.SafeAddField("Games", "valorant factorio", false)

		assert.True(t, ok)
		require.Len(t, b.Embed().Fields, 1)
		assert.Equal(t, "valorant factorio", b.Embed().Fields[0].Value)
	})

	t.Run("over-long value splits into multiple same-named fields", func(t *testing.T) {
		b := NewEmbedBuilder(&discordgo.MessageEmbed{})

		// Over three times the field limit, split at word boundaries
		value := strings.TrimSpace(strings.Repeat("mention ", 450))
		require.Greater(t, utf8.RuneCountInString(value), 3*MaxFieldValueLength)

		ok := b.SafeAddField("Games", value, false)
		require.True(t, ok)

		fields := b.Embed().Fields
		require.Greater(t, len(fields), 3)

		var rebuilt strings.Builder
		for _, f := range fields {
			assert.Equal(t, "Games", f.Name)
			assert.LessOrEqual(t, utf8.RuneCountInString(f.Value), MaxFieldValueLength)
			rebuilt.WriteString(f.Value)
		}
		// Field values concatenate back to the original value
		assert.Equal(t, value, rebuilt.String())
	})

	t.Run("exceeding the embed ceiling clears fields and reports failure", func(t *testing.T) {
		b := NewEmbedBuilder(&discordgo.MessageEmbed{})

		value := strings.Repeat("x", 1000)
		failed := false
		for i := 0; i < 7; i++ {
			if !b.SafeAddField("f", value, false) {
				failed = true
			}
		}

		assert.True(t, failed)
		require.Len(t, b.Embed().Fields, 1)
		assert.Equal(t, ":x: ERROR!", b.Embed().Fields[0].Name)
	})

	t.Run("exceeding the field count clears fields and reports failure", func(t *testing.T) {
		b := NewEmbedBuilder(&discordgo.MessageEmbed{})

		failed := false
		for i := 0; i < MaxFields+1; i++ {
			if !b.SafeAddField("f", "v", false) {
				failed = true
			}
		}

		assert.True(t, failed)
		require.Len(t, b.Embed().Fields, 1)
		assert.Equal(t, ":x: ERROR!", b.Embed().Fields[0].Name)
	})
}

func TestEmbedBuilder_Length(t *testing.T) {
	b := NewEmbedBuilder(&discordgo.MessageEmbed{
		Title:       "title",
		Description: "description",
		Footer:      &discordgo.MessageEmbedFooter{Text: "footer"},
	})
	b.AddField("name", "value", false)

	assert.Equal(t, len("title")+len("description")+len("footer")+len("name")+len("value"), b.Length())
}
