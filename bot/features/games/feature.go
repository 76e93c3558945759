package games

import (
	"indexbot/domain/interfaces"
	"indexbot/domain/services"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the self-service game subscription commands
type Feature struct {
	session     *discordgo.Session
	uowFactory  interfaces.UnitOfWorkFactory
	roleManager interfaces.RoleManager
}

// NewFeature creates a new games feature instance
func NewFeature(session *discordgo.Session, uowFactory interfaces.UnitOfWorkFactory, roleManager interfaces.RoleManager) *Feature {
	return &Feature{
		session:     session,
		uowFactory:  uowFactory,
		roleManager: roleManager,
	}
}

// HandleCommand routes game commands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "game":
		f.handleGame(s, i)
	case "join":
		f.handleJoin(s, i)
	case "remove":
		f.handleRemove(s, i)
	case "mygames":
		f.handleMyGames(s, i)
	case "roles":
		f.handleRoles(s, i)
	case "help":
		f.handleHelp(s, i)
	}
}

// newService instantiates the subscription service with repositories from the
// UnitOfWork
func (f *Feature) newService(uow interfaces.UnitOfWork) interfaces.SubscriptionService {
	return services.NewSubscriptionService(
		uow.SubscriptionRepository(),
		uow.GuildRepository(),
		f.roleManager,
	)
}
