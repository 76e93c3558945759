package admin

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"indexbot/domain/testhelpers"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingTransport captures interaction responses instead of letting the
// session reach the Discord API
type recordingTransport struct {
	mu     sync.Mutex
	bodies [][]byte
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if req.Body != nil {
		body, _ := io.ReadAll(req.Body)
		rt.bodies = append(rt.bodies, body)
	}
	return &http.Response{
		StatusCode: http.StatusNoContent,
		Body:       io.NopCloser(bytes.NewReader(nil)),
		Header:     make(http.Header),
	}, nil
}

func newStubSession(t *testing.T) (*discordgo.Session, *recordingTransport) {
	t.Helper()
	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	transport := &recordingTransport{}
	session.Client = &http.Client{Transport: transport}
	return session, transport
}

func newCommandInteraction(name string, permissions int64) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "123456789",
			Data:    discordgo.ApplicationCommandInteractionData{Name: name},
			Member: &discordgo.Member{
				User:        &discordgo.User{ID: "111222333", Username: "someone"},
				Permissions: permissions,
			},
		},
	}
}

func TestHandleCommandRejectedWithoutManageRoles(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"forcejoin", "forceremove", "removerole"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			session, transport := newStubSession(t)
			factory := &testhelpers.MockUnitOfWorkFactory{}
			roleManager := &testhelpers.MockRoleManager{}
			feature := NewFeature(session, factory, roleManager)

			feature.HandleCommand(session, newCommandInteraction(name, discordgo.PermissionSendMessages))

			// Rejected before the store is ever touched
			factory.AssertNotCalled(t, "CreateForGuild", mock.Anything)
			roleManager.AssertNotCalled(t, "DeleteRole", mock.Anything, mock.Anything, mock.Anything)

			// The fixed no-permission embed is the only response
			transport.mu.Lock()
			defer transport.mu.Unlock()
			require.Len(t, transport.bodies, 1)

			var response struct {
				Data struct {
					Embeds []*discordgo.MessageEmbed `json:"embeds"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(transport.bodies[0], &response))
			require.Len(t, response.Data.Embeds, 1)
			assert.Equal(t, ":x: Error!", response.Data.Embeds[0].Title)
			assert.Equal(t, "You don't have permission to do that!", response.Data.Embeds[0].Description)
		})
	}
}
