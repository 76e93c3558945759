package admin

import (
	"context"
	"errors"
	"strconv"

	"indexbot/bot/common"
	"indexbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleForceJoin handles the /forcejoin command
func (f *Feature) handleForceJoin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, ok := parseGuildID(s, i)
	if !ok {
		return
	}
	target, targetID, role, roleID, ok := parseUserAndRole(s, i)
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
	_, err := service.Join(ctx, guildID, roleID, targetID)
	alreadySubscribed := errors.Is(err, interfaces.ErrAlreadySubscribed)
	if err != nil && !alreadySubscribed {
		log.Errorf("Failed to force join user %d to role %d: %v", targetID, roleID, err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	common.RespondWithContentAndEmbed(s, i, target.Mention(),
		forceJoinEmbed(target, role, alreadySubscribed))
}

// handleForceRemove handles the /forceremove command
func (f *Feature) handleForceRemove(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, ok := parseGuildID(s, i)
	if !ok {
		return
	}
	target, targetID, role, roleID, ok := parseUserAndRole(s, i)
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
	result, err := service.Leave(ctx, guildID, roleID, targetID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotSubscribed) {
			common.RespondWithEmbed(s, i, forceRemoveNotSubscribedEmbed(target, role))
			return
		}
		log.Errorf("Failed to force remove user %d from role %d: %v", targetID, roleID, err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	common.RespondWithContentAndEmbed(s, i, target.Mention(),
		forceRemoveEmbed(target, role, result))
}

// handleRemoveRole handles the /removerole command, dropping every
// subscription for the role at once
func (f *Feature) handleRemoveRole(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, ok := parseGuildID(s, i)
	if !ok {
		return
	}

	role := i.ApplicationCommandData().Options[0].RoleValue(s, i.GuildID)
	roleID, err := strconv.ParseInt(role.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse role ID: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
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
	result, err := service.RemoveRole(ctx, guildID, roleID)
	if err != nil {
		log.Errorf("Failed to remove role %d: %v", roleID, err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return
	}

	// The list of affected users can outgrow a single message; leading
	// chunks go out as plain messages and the final one carries the embed
	chunks := common.ChunkAtWhitespace(common.UserMentionList(result.SubscriberIDs), common.MaxContentLength)
	for _, chunk := range chunks[:len(chunks)-1] {
		if _, err := s.ChannelMessageSend(i.ChannelID, chunk); err != nil {
			log.Errorf("Failed to send mention chunk: %v", err)
		}
	}

	common.RespondWithContentAndEmbed(s, i, chunks[len(chunks)-1],
		removeRoleEmbed(role, result))
}

// parseGuildID extracts the guild ID from the interaction
func parseGuildID(s *discordgo.Session, i *discordgo.InteractionCreate) (int64, bool) {
	if i.GuildID == "" {
		common.RespondWithError(s, i, "This command only works in a server")
		return 0, false
	}

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", i.GuildID, err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return 0, false
	}
	return guildID, true
}

// parseUserAndRole extracts the user and role options shared by forcejoin
// and forceremove
func parseUserAndRole(s *discordgo.Session, i *discordgo.InteractionCreate) (*discordgo.User, int64, *discordgo.Role, int64, bool) {
	var target *discordgo.User
	var role *discordgo.Role
	for _, option := range i.ApplicationCommandData().Options {
		switch option.Name {
		case "user":
			target = option.UserValue(s)
		case "role":
			role = option.RoleValue(s, i.GuildID)
		}
	}
	if target == nil || role == nil {
		common.RespondWithError(s, i, "Missing user or role")
		return nil, 0, nil, 0, false
	}

	targetID, err := strconv.ParseInt(target.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse user ID %s: %v", target.ID, err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return nil, 0, nil, 0, false
	}
	roleID, err := strconv.ParseInt(role.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse role ID %s: %v", role.ID, err)
		common.RespondWithEmbed(s, i, common.InternalErrorEmbed())
		return nil, 0, nil, 0, false
	}

	return target, targetID, role, roleID, true
}
