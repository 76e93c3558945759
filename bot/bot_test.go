package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestGatewayIntents(t *testing.T) {
	t.Parallel()

	// Everything the handlers rely on is requested
	assert.NotZero(t, gatewayIntents&discordgo.IntentsGuilds)
	assert.NotZero(t, gatewayIntents&discordgo.IntentsGuildMembers)
	assert.NotZero(t, gatewayIntents&discordgo.IntentsGuildMessages)
	assert.NotZero(t, gatewayIntents&discordgo.IntentMessageContent)

	// Privileged intents the bot has no use for stay off
	assert.Zero(t, gatewayIntents&discordgo.IntentsGuildPresences)
	assert.Zero(t, gatewayIntents&discordgo.IntentsDirectMessages)
	assert.Zero(t, gatewayIntents&discordgo.IntentsGuildVoiceStates)
}
