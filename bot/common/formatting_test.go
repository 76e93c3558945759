package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMentionFormatting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<@111>", UserMention(111))
	assert.Equal(t, "<@&222>", RoleMention(222))
}

func TestUserMentionList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", UserMentionList(nil))
	assert.Equal(t, "<@1>", UserMentionList([]int64{1}))
	assert.Equal(t, "<@1> <@2> <@3>", UserMentionList([]int64{1, 2, 3}))
}
