package common

import (
	"fmt"
	"strings"
)

// UserMention returns the Discord mention string for a user ID
func UserMention(userID int64) string {
	return fmt.Sprintf("<@%d>", userID)
}

// UserMentionList joins user mentions with spaces, the shape both message
// content pings and embed field values use
func UserMentionList(userIDs []int64) string {
	mentions := make([]string, len(userIDs))
	for i, userID := range userIDs {
		mentions[i] = UserMention(userID)
	}
	return strings.Join(mentions, " ")
}

// RoleMention returns the Discord mention string for a role ID
func RoleMention(roleID int64) string {
	return fmt.Sprintf("<@&%d>", roleID)
}
