package admin

import (
	"indexbot/bot/common"
	"indexbot/domain/interfaces"
	"indexbot/domain/services"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the privileged subscription management commands. Every
// command requires the Manage Roles permission, checked before any store
// access.
type Feature struct {
	session     *discordgo.Session
	uowFactory  interfaces.UnitOfWorkFactory
	roleManager interfaces.RoleManager
}

// NewFeature creates a new admin feature instance
func NewFeature(session *discordgo.Session, uowFactory interfaces.UnitOfWorkFactory, roleManager interfaces.RoleManager) *Feature {
	return &Feature{
		session:     session,
		uowFactory:  uowFactory,
		roleManager: roleManager,
	}
}

// HandleCommand routes admin commands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.HasManageRoles(i) {
		common.RespondWithEmbed(s, i, common.NoPermissionEmbed())
		return
	}

	switch i.ApplicationCommandData().Name {
	case "forcejoin":
		f.handleForceJoin(s, i)
	case "forceremove":
		f.handleForceRemove(s, i)
	case "removerole":
		f.handleRemoveRole(s, i)
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
