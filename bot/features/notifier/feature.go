package notifier

import (
	"context"
	"strconv"

	"indexbot/domain/interfaces"
	"indexbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature watches guild messages for game role mentions and pings every
// subscribed user, including those not currently holding the Discord role
type Feature struct {
	session     *discordgo.Session
	uowFactory  interfaces.UnitOfWorkFactory
	roleManager interfaces.RoleManager
}

// NewFeature creates a new notifier feature instance
func NewFeature(session *discordgo.Session, uowFactory interfaces.UnitOfWorkFactory, roleManager interfaces.RoleManager) *Feature {
	return &Feature{
		session:     session,
		uowFactory:  uowFactory,
		roleManager: roleManager,
	}
}

// HandleMessage scans an incoming message for tracked role mentions and
// sends the notification ping when any are present
func (f *Feature) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Bot messages never trigger notifications, and DMs have no guild roles
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if len(m.MentionRoles) == 0 {
		return
	}

	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", m.GuildID, err)
		return
	}

	ctx := context.Background()

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		return
	}
	defer uow.Rollback()

	service := services.NewSubscriptionService(
		uow.SubscriptionRepository(),
		uow.GuildRepository(),
		f.roleManager,
	)

	tracked, err := service.SubscribedRoleIDs(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to list tracked roles for guild %d: %v", guildID, err)
		return
	}

	gameRoleIDs := matchTrackedRoles(m.MentionRoles, tracked)
	if len(gameRoleIDs) == 0 {
		return
	}

	var groups []roleSubscribers
	for _, roleID := range gameRoleIDs {
		role, err := f.roleManager.Role(guildID, roleID)
		if err != nil {
			log.Warnf("Skipping unresolvable role %d in guild %d: %v", roleID, guildID, err)
			continue
		}
		subscribers, err := service.Subscribers(ctx, guildID, roleID)
		if err != nil {
			log.Errorf("Failed to list subscribers of role %d: %v", roleID, err)
			return
		}
		groups = append(groups, roleSubscribers{role: role, subscribers: subscribers})
	}
	if len(groups) == 0 {
		return
	}

	chunks, embed := buildNotification(m, groups)
	for _, chunk := range chunks[:len(chunks)-1] {
		if _, err := s.ChannelMessageSend(m.ChannelID, chunk); err != nil {
			log.Errorf("Failed to send mention chunk: %v", err)
		}
	}
	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content: chunks[len(chunks)-1],
		Embed:   embed,
	})
	if err != nil {
		log.Errorf("Failed to send notification in channel %s: %v", m.ChannelID, err)
	}
}
