package common

import (
	"fmt"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// EmbedBuilder wraps a discordgo embed with size-aware field handling
type EmbedBuilder struct {
	embed  *discordgo.MessageEmbed
	failed bool
}

// NewEmbedBuilder creates a builder around an existing embed
func NewEmbedBuilder(embed *discordgo.MessageEmbed) *EmbedBuilder {
	return &EmbedBuilder{embed: embed}
}

// Embed returns the underlying embed
func (b *EmbedBuilder) Embed() *discordgo.MessageEmbed {
	return b.embed
}

// AddField appends a field without any size checking
func (b *EmbedBuilder) AddField(name, value string, inline bool) {
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
}

// SafeAddField adds a (name, value) field, splitting an over-long value
// across multiple same-named fields of at most MaxFieldValueLength. If the
// result would exceed the per-embed field count or total size ceiling, all
// fields are replaced with a single error field and false is returned; the
// overflow never propagates as an error.
func (b *EmbedBuilder) SafeAddField(name, value string, inline bool) bool {
	// Once overflowed, the panel stays in its error state
	if b.failed {
		return false
	}

	for utf8.RuneCountInString(value) > MaxFieldValueLength {
		v1, v2 := SplitAtWhitespace(value, MaxFieldValueLength)
		if v1 == "" {
			// No whitespace within the limit; hard-split so we terminate
			runes := []rune(value)
			v1, v2 = string(runes[:MaxFieldValueLength]), string(runes[MaxFieldValueLength:])
		}
		b.AddField(name, v1, inline)
		value = v2
	}

	if len(b.embed.Fields)+1 > MaxFields ||
		b.Length()+utf8.RuneCountInString(name)+utf8.RuneCountInString(value) > MaxEmbedLength {
		b.failed = true
		b.embed.Fields = nil
		b.AddField(":x: ERROR!",
			fmt.Sprintf("Too many characters! Tried to send a message with over %d characters.", MaxEmbedLength),
			false)
		return false
	}

	b.AddField(name, value, inline)
	return true
}

// Length returns the embed's size the way Discord counts it: title,
// description, footer text, author name and every field name and value
func (b *EmbedBuilder) Length() int {
	total := utf8.RuneCountInString(b.embed.Title) + utf8.RuneCountInString(b.embed.Description)
	if b.embed.Footer != nil {
		total += utf8.RuneCountInString(b.embed.Footer.Text)
	}
	if b.embed.Author != nil {
		total += utf8.RuneCountInString(b.embed.Author.Name)
	}
	for _, f := range b.embed.Fields {
		total += utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
	}
	return total
}
