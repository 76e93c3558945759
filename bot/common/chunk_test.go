package common

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAtWhitespace(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		limit      int
		wantBefore string
		wantAfter  string
	}{
		{
			name:       "short string fits entirely",
			input:      "hello world",
			limit:      20,
			wantBefore: "hello world",
			wantAfter:  "",
		},
		{
			name:       "splits at last whitespace before limit",
			input:      "alpha beta gamma",
			limit:      12,
			wantBefore: "alpha beta ",
			wantAfter:  "gamma",
		},
		{
			name:       "no whitespace in prefix degenerates to empty prefix",
			input:      "abcdefghij klm",
			limit:      5,
			wantBefore: "",
			wantAfter:  "abcdefghij klm",
		},
		{
			name:       "exact limit",
			input:      "ab cd",
			limit:      5,
			wantBefore: "ab cd",
			wantAfter:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, after := SplitAtWhitespace(tt.input, tt.limit)
			assert.Equal(t, tt.wantBefore, before)
			assert.Equal(t, tt.wantAfter, after)
		})
	}
}

func TestSplitAtWhitespace_Properties(t *testing.T) {
	inputs := []string{
		"the quick brown fox jumps over the lazy dog",
		strings.Repeat("<@123456789012345678> ", 50),
		"oneverylongwordwithoutanyspacesatallinit and then some",
		"wide runes: ありがとう ございます こんにちは世界",
	}

	for _, input := range inputs {
		for _, limit := range []int{5, 10, 25, 100} {
			before, after := SplitAtWhitespace(input, limit)

			// Concatenation reconstructs the original exactly
			assert.Equal(t, input, before+after)

			// Prefix length never exceeds the limit
			assert.LessOrEqual(t, utf8.RuneCountInString(before), limit)

			// A non-empty prefix never ends mid-word
			if before != "" && utf8.RuneCountInString(before) < utf8.RuneCountInString(input) {
				last, _ := utf8.DecodeLastRuneInString(before)
				assert.True(t, unicode.IsSpace(last),
					"prefix %q should end at a whitespace boundary", before)
			}
		}
	}
}

func TestChunkAtWhitespace(t *testing.T) {
	t.Run("short string is a single chunk", func(t *testing.T) {
		chunks := ChunkAtWhitespace("hello", 10)
		assert.Equal(t, []string{"hello"}, chunks)
	})

	t.Run("chunks respect the limit and reassemble", func(t *testing.T) {
		input := strings.Repeat("word ", 100)
		chunks := ChunkAtWhitespace(input, 32)
		require.NotEmpty(t, chunks)

		for _, chunk := range chunks {
			assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 32)
		}
		assert.Equal(t, input, strings.Join(chunks, ""))
	})

	t.Run("whitespace-free run is hard-split instead of looping forever", func(t *testing.T) {
		input := strings.Repeat("a", 50)
		chunks := ChunkAtWhitespace(input, 20)

		assert.Equal(t, []string{strings.Repeat("a", 20), strings.Repeat("a", 20), strings.Repeat("a", 10)}, chunks)
	})
}
