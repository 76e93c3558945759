package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "empty URL passes through",
			url:      "",
			expected: "",
		},
		{
			name:     "bare URL gets sslmode disabled",
			url:      "postgres://indexbot@localhost:5432/indexbot",
			expected: "postgres://indexbot@localhost:5432/indexbot?sslmode=disable",
		},
		{
			name:     "existing query parameters are preserved",
			url:      "postgres://indexbot@localhost:5432/indexbot?timezone=UTC",
			expected: "postgres://indexbot@localhost:5432/indexbot?timezone=UTC&sslmode=disable",
		},
		{
			name:     "explicit sslmode wins",
			url:      "postgres://indexbot@db.internal:5432/indexbot?sslmode=require",
			expected: "postgres://indexbot@db.internal:5432/indexbot?sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &Config{DatabaseURL: tt.url}
			assert.Equal(t, tt.expected, cfg.DatabaseDSN())
		})
	}
}
