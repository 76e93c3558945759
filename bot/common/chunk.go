package common

import (
	"unicode"
	"unicode/utf8"
)

// SplitAtWhitespace splits s into a prefix of at most limit characters ending
// at a whitespace boundary and the remainder. The prefix and remainder always
// concatenate back to s. If the first limit characters contain no whitespace
// the prefix is empty; callers that loop must handle that case (see
// ChunkAtWhitespace).
func SplitAtWhitespace(s string, limit int) (before, after string) {
	runes := []rune(s)
	if len(runes) <= limit {
		return s, ""
	}

	// Walk back from the limit to the nearest whitespace so no word is split
	i := limit - 1
	for i >= 0 && !unicode.IsSpace(runes[i]) {
		i--
	}

	return string(runes[:i+1]), string(runes[i+1:])
}

// ChunkAtWhitespace splits s into chunks of at most limit characters, each
// ending at a whitespace boundary where possible. A run of more than limit
// characters without whitespace is hard-split at the limit so the loop
// always terminates.
func ChunkAtWhitespace(s string, limit int) []string {
	var chunks []string
	for utf8.RuneCountInString(s) > limit {
		before, after := SplitAtWhitespace(s, limit)
		if before == "" {
			runes := []rune(s)
			before, after = string(runes[:limit]), string(runes[limit:])
		}
		chunks = append(chunks, before)
		s = after
	}
	return append(chunks, s)
}
