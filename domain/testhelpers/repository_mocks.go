package testhelpers

import (
	"context"

	"indexbot/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockSubscriptionRepository is a mock implementation of SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Add(ctx context.Context, roleID, userID int64) error {
	args := m.Called(ctx, roleID, userID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Remove(ctx context.Context, roleID, userID int64) (bool, error) {
	args := m.Called(ctx, roleID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListByUser(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, roleID int64) ([]int64, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockSubscriptionRepository) ListRoles(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockSubscriptionRepository) DeleteRole(ctx context.Context, roleID int64) error {
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

// MockGuildRepository is a mock implementation of GuildRepository
type MockGuildRepository struct {
	mock.Mock
}

func (m *MockGuildRepository) EnsureGuild(ctx context.Context, guildID int64) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

// MockRoleManager is a mock implementation of RoleManager
type MockRoleManager struct {
	mock.Mock
}

func (m *MockRoleManager) FindRoleByName(guildID int64, name string) (*entities.GameRole, error) {
	args := m.Called(guildID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameRole), args.Error(1)
}

func (m *MockRoleManager) CreateRole(guildID int64, name string) (*entities.GameRole, error) {
	args := m.Called(guildID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameRole), args.Error(1)
}

func (m *MockRoleManager) DeleteRole(guildID, roleID int64, reason string) error {
	args := m.Called(guildID, roleID, reason)
	return args.Error(0)
}

func (m *MockRoleManager) Role(guildID, roleID int64) (*entities.GameRole, error) {
	args := m.Called(guildID, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameRole), args.Error(1)
}

func (m *MockRoleManager) RoleMemberCount(guildID, roleID int64) (int, error) {
	args := m.Called(guildID, roleID)
	return args.Int(0), args.Error(1)
}
