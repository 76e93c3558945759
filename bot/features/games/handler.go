package games

import (
	"context"
	"errors"
	"strconv"

	"indexbot/bot/common"
	"indexbot/domain/entities"
	"indexbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleGame handles the /game command with a free-text game name
func (f *Feature) handleGame(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, userID, ok := parseIDs(s, i)
	if !ok {
		return
	}
	input := i.ApplicationCommandData().Options[0].StringValue()

	ctx := context.Background()

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}
	defer uow.Rollback()

	service := f.newService(uow)
	result, err := service.JoinByName(ctx, guildID, input, userID)
	alreadySubscribed := errors.Is(err, interfaces.ErrAlreadySubscribed)
	if err != nil && !alreadySubscribed {
		log.Errorf("Failed to join game %q: %v", input, err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	common.RespondWithEmbed(s, i, joinEmbed(result, i.Member.User.Username, alreadySubscribed))
}

// handleJoin handles the /join command with an existing role
func (f *Feature) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, userID, ok := parseIDs(s, i)
	if !ok {
		return
	}
	roleID, ok := parseRoleOption(s, i, i.ApplicationCommandData().Options[0])
	if !ok {
		return
	}

	ctx := context.Background()

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}
	defer uow.Rollback()

	service := f.newService(uow)
	result, err := service.Join(ctx, guildID, roleID, userID)
	alreadySubscribed := errors.Is(err, interfaces.ErrAlreadySubscribed)
	if err != nil && !alreadySubscribed {
		log.Errorf("Failed to join role %d: %v", roleID, err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	common.RespondWithEmbed(s, i, joinEmbed(result, i.Member.User.Username, alreadySubscribed))
}

// handleRemove handles the /remove command
func (f *Feature) handleRemove(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, userID, ok := parseIDs(s, i)
	if !ok {
		return
	}
	roleID, ok := parseRoleOption(s, i, i.ApplicationCommandData().Options[0])
	if !ok {
		return
	}

	ctx := context.Background()

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}
	defer uow.Rollback()

	service := f.newService(uow)
	result, err := service.Leave(ctx, guildID, roleID, userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotSubscribed) {
			common.RespondWithEmbed(s, i, notSubscribedEmbed(roleID))
			return
		}
		log.Errorf("Failed to leave role %d: %v", roleID, err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	common.RespondWithEmbed(s, i, leaveEmbed(result))
}

// handleMyGames handles the /mygames command
func (f *Feature) handleMyGames(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, userID, ok := parseIDs(s, i)
	if !ok {
		return
	}

	ctx := context.Background()

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}
	defer uow.Rollback()

	service := f.newService(uow)
	roles, err := service.UserRoles(ctx, guildID, userID)
	if err != nil {
		log.Errorf("Failed to list roles for user %d: %v", userID, err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	common.RespondWithEmbed(s, i, myGamesEmbed(roles))
}

// handleRoles handles the /roles command, listing the guild's games or a
// single user's games
func (f *Feature) handleRoles(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, _, ok := parseIDs(s, i)
	if !ok {
		return
	}

	var target *discordgo.User
	if options := i.ApplicationCommandData().Options; len(options) > 0 {
		target = options[0].UserValue(s)
	}

	ctx := context.Background()

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}
	defer uow.Rollback()

	service := f.newService(uow)

	var roles []*entities.GameRole
	var err error
	var owner string
	if target == nil {
		roles, err = service.GuildRoles(ctx, guildID)
		owner = guildName(s, i.GuildID)
	} else {
		var targetID int64
		targetID, err = strconv.ParseInt(target.ID, 10, 64)
		if err == nil {
			roles, err = service.UserRoles(ctx, guildID, targetID)
		}
		owner = displayName(target)
	}
	if err != nil {
		log.Errorf("Failed to list roles: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	common.RespondWithEmbed(s, i, rolesEmbed(owner, target == nil, roles))
}

// handleHelp handles the /help command
func (f *Feature) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	common.RespondWithEmbed(s, i, helpEmbed())
}

// parseIDs extracts the guild and invoking user IDs from the interaction
func parseIDs(s *discordgo.Session, i *discordgo.InteractionCreate) (guildID, userID int64, ok bool) {
	if i.GuildID == "" || i.Member == nil {
		common.RespondWithError(s, i, "This command only works in a server")
		return 0, 0, false
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", i.GuildID, err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return 0, 0, false
	}

	userID, err = strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse user ID %s: %v", i.Member.User.ID, err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return 0, 0, false
	}

	return guildID, userID, true
}

// parseRoleOption extracts a role option value as an int64 ID
func parseRoleOption(s *discordgo.Session, i *discordgo.InteractionCreate, option *discordgo.ApplicationCommandInteractionDataOption) (int64, bool) {
	roleID, err := strconv.ParseInt(option.RoleValue(s, i.GuildID).ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse role ID: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return 0, false
	}
	return roleID, true
}

// guildName resolves the guild's display name from state, falling back to
// the API
func guildName(s *discordgo.Session, guildID string) string {
	if guild, err := s.State.Guild(guildID); err == nil && guild.Name != "" {
		return guild.Name
	}
	if guild, err := s.Guild(guildID); err == nil {
		return guild.Name
	}
	return "server"
}

// displayName returns the user's global display name when set
func displayName(user *discordgo.User) string {
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}
