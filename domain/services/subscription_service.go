package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"indexbot/domain/interfaces"

	"indexbot/domain/entities"

	log "github.com/sirupsen/logrus"
)

const roleDeleteReason = "No more notification subscriptions."

// subscriptionService implements the SubscriptionService interface
type subscriptionService struct {
	subscriptionRepo interfaces.SubscriptionRepository
	guildRepo        interfaces.GuildRepository
	roleManager      interfaces.RoleManager
}

// NewSubscriptionService creates a new subscription service bound to
// guild-scoped repositories from a unit of work
func NewSubscriptionService(
	subscriptionRepo interfaces.SubscriptionRepository,
	guildRepo interfaces.GuildRepository,
	roleManager interfaces.RoleManager,
) interfaces.SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		guildRepo:        guildRepo,
		roleManager:      roleManager,
	}
}

// JoinByName subscribes the user to the game with the given free-text name,
// creating the Discord role when no role with that lowercase name exists
func (s *subscriptionService) JoinByName(ctx context.Context, guildID int64, name string, userID int64) (*interfaces.JoinResult, error) {
	// Game names are matched and created lowercase so /game and /join agree
	name = strings.ToLower(name)

	role, err := s.roleManager.FindRoleByName(guildID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up role %q: %w", name, err)
	}

	created := false
	if role == nil {
		role, err = s.roleManager.CreateRole(guildID, name)
		if err != nil {
			return nil, fmt.Errorf("failed to create role %q: %w", name, err)
		}
		created = true
		log.Infof("New role %q (%d) created in guild %d", role.Name, role.ID, guildID)
	}

	if err := s.subscriptionRepo.Add(ctx, role.ID, userID); err != nil {
		if errors.Is(err, interfaces.ErrAlreadySubscribed) {
			return &interfaces.JoinResult{Role: role, RoleCreated: created}, err
		}
		return nil, fmt.Errorf("failed to add subscription: %w", err)
	}

	log.Infof("Added user %d to role %d in guild %d", userID, role.ID, guildID)
	return &interfaces.JoinResult{Role: role, RoleCreated: created}, nil
}

// Join subscribes the user to an existing role
func (s *subscriptionService) Join(ctx context.Context, guildID, roleID, userID int64) (*interfaces.JoinResult, error) {
	role, err := s.roleManager.Role(guildID, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role %d: %w", roleID, err)
	}

	if err := s.subscriptionRepo.Add(ctx, role.ID, userID); err != nil {
		if errors.Is(err, interfaces.ErrAlreadySubscribed) {
			return &interfaces.JoinResult{Role: role}, err
		}
		return nil, fmt.Errorf("failed to add subscription: %w", err)
	}

	log.Infof("Added user %d to role %d in guild %d", userID, roleID, guildID)
	return &interfaces.JoinResult{Role: role}, nil
}

// Leave unsubscribes the user and deletes the role once it has neither
// subscribers in the store nor live members on Discord
func (s *subscriptionService) Leave(ctx context.Context, guildID, roleID, userID int64) (*interfaces.LeaveResult, error) {
	role, err := s.roleManager.Role(guildID, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role %d: %w", roleID, err)
	}

	remaining, err := s.subscriptionRepo.Remove(ctx, roleID, userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotSubscribed) {
			return &interfaces.LeaveResult{Role: role}, err
		}
		return nil, fmt.Errorf("failed to remove subscription: %w", err)
	}
	log.Infof("Removed user %d from role %d in guild %d", userID, roleID, guildID)

	result := &interfaces.LeaveResult{Role: role}
	if remaining {
		return result, nil
	}

	// The deletion check runs against the live member list, not the store:
	// members may hold the role without ever having subscribed through us.
	memberCount, err := s.roleManager.RoleMemberCount(guildID, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members of role %d: %w", roleID, err)
	}
	if memberCount == 0 {
		if err := s.roleManager.DeleteRole(guildID, roleID, roleDeleteReason); err != nil {
			return nil, fmt.Errorf("failed to delete role %d: %w", roleID, err)
		}
		result.RoleDeleted = true
		log.Infof("Deleted role %d from guild %d", roleID, guildID)
	}

	return result, nil
}

// RemoveRole deletes every subscription row for the role and the Discord
// role itself when it has no live members
func (s *subscriptionService) RemoveRole(ctx context.Context, guildID, roleID int64) (*interfaces.RemoveRoleResult, error) {
	subscribers, err := s.subscriptionRepo.ListSubscribers(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers of role %d: %w", roleID, err)
	}

	if err := s.subscriptionRepo.DeleteRole(ctx, roleID); err != nil {
		return nil, fmt.Errorf("failed to delete subscriptions for role %d: %w", roleID, err)
	}
	log.Infof("Removed role %d from guild %d", roleID, guildID)

	result := &interfaces.RemoveRoleResult{SubscriberIDs: subscribers}

	memberCount, err := s.roleManager.RoleMemberCount(guildID, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members of role %d: %w", roleID, err)
	}
	if memberCount == 0 {
		if err := s.roleManager.DeleteRole(guildID, roleID, roleDeleteReason); err != nil {
			return nil, fmt.Errorf("failed to delete role %d: %w", roleID, err)
		}
		result.RoleDeleted = true
		log.Infof("Deleted role %d from guild %d", roleID, guildID)
	}

	return result, nil
}

// UserRoles returns the live roles the user is subscribed to
func (s *subscriptionService) UserRoles(ctx context.Context, guildID, userID int64) ([]*entities.GameRole, error) {
	roleIDs, err := s.subscriptionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions for user %d: %w", userID, err)
	}
	return s.resolveRoles(guildID, roleIDs)
}

// GuildRoles returns every live role with at least one subscriber
func (s *subscriptionService) GuildRoles(ctx context.Context, guildID int64) ([]*entities.GameRole, error) {
	roleIDs, err := s.subscriptionRepo.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles for guild %d: %w", guildID, err)
	}
	return s.resolveRoles(guildID, roleIDs)
}

// SubscribedRoleIDs returns the raw stored role IDs for the guild
func (s *subscriptionService) SubscribedRoleIDs(ctx context.Context, guildID int64) ([]int64, error) {
	roleIDs, err := s.subscriptionRepo.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles for guild %d: %w", guildID, err)
	}
	return roleIDs, nil
}

// Subscribers returns the stored subscriber IDs for a role
func (s *subscriptionService) Subscribers(ctx context.Context, guildID, roleID int64) ([]int64, error) {
	users, err := s.subscriptionRepo.ListSubscribers(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers of role %d: %w", roleID, err)
	}
	return users, nil
}

// EnsureGuild lazily initializes the guild's namespace
func (s *subscriptionService) EnsureGuild(ctx context.Context, guildID int64) error {
	if err := s.guildRepo.EnsureGuild(ctx, guildID); err != nil {
		return fmt.Errorf("failed to ensure guild %d: %w", guildID, err)
	}
	return nil
}

// resolveRoles translates stored role IDs to live roles, dropping entries
// that no longer resolve. The store may lag behind roles deleted out-of-band;
// stale IDs are logged and skipped rather than surfaced to the user.
func (s *subscriptionService) resolveRoles(guildID int64, roleIDs []int64) ([]*entities.GameRole, error) {
	roles := make([]*entities.GameRole, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		role, err := s.roleManager.Role(guildID, roleID)
		if err != nil {
			if errors.Is(err, interfaces.ErrRoleNotFound) {
				log.Warnf("Stored role %d no longer exists in guild %d, skipping", roleID, guildID)
				continue
			}
			return nil, fmt.Errorf("failed to resolve role %d: %w", roleID, err)
		}
		roles = append(roles, role)
	}
	return roles, nil
}
