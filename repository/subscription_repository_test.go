package repository

import (
	"context"
	"testing"

	"indexbot/database"
	"indexbot/domain/interfaces"
	"indexbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGuild(t *testing.T, db *database.DB, guildID int64) {
	t.Helper()
	guildRepo := NewGuildRepository(db)
	require.NoError(t, guildRepo.EnsureGuild(context.Background(), guildID))
}

func TestSubscriptionRepository_Add(t *testing.T) {
	db := testutil.Setup(t)
	ctx := context.Background()

	guildID := int64(12345)
	setupGuild(t, db, guildID)
	repo := NewSubscriptionRepository(db, guildID)

	t.Run("successful add", func(t *testing.T) {
		err := repo.Add(ctx, 1001, 2001)
		require.NoError(t, err)

		roles, err := repo.ListByUser(ctx, 2001)
		require.NoError(t, err)
		assert.Equal(t, []int64{1001}, roles)
	})

	t.Run("duplicate add fails and leaves store unchanged", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, 1002, 2002))

		err := repo.Add(ctx, 1002, 2002)
		assert.ErrorIs(t, err, interfaces.ErrAlreadySubscribed)

		subscribers, err := repo.ListSubscribers(ctx, 1002)
		require.NoError(t, err)
		assert.Equal(t, []int64{2002}, subscribers)
	})

	t.Run("same role different users", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, 1003, 2003))
		require.NoError(t, repo.Add(ctx, 1003, 2004))

		subscribers, err := repo.ListSubscribers(ctx, 1003)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{2003, 2004}, subscribers)
	})
}

func TestSubscriptionRepository_Remove(t *testing.T) {
	db := testutil.Setup(t)
	ctx := context.Background()

	guildID := int64(23456)
	setupGuild(t, db, guildID)
	repo := NewSubscriptionRepository(db, guildID)

	t.Run("remove without prior add fails", func(t *testing.T) {
		_, err := repo.Remove(ctx, 1001, 2001)
		assert.ErrorIs(t, err, interfaces.ErrNotSubscribed)
	})

	t.Run("add then remove returns store to empty", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, 1010, 2010))

		remaining, err := repo.Remove(ctx, 1010, 2010)
		require.NoError(t, err)
		assert.False(t, remaining)

		roles, err := repo.ListByUser(ctx, 2010)
		require.NoError(t, err)
		assert.Empty(t, roles)
	})

	t.Run("remaining reports other subscribers", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, 1020, 2020))
		require.NoError(t, repo.Add(ctx, 1020, 2021))

		remaining, err := repo.Remove(ctx, 1020, 2020)
		require.NoError(t, err)
		assert.True(t, remaining)

		remaining, err = repo.Remove(ctx, 1020, 2021)
		require.NoError(t, err)
		assert.False(t, remaining)
	})

	t.Run("second remove fails", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, 1030, 2030))
		_, err := repo.Remove(ctx, 1030, 2030)
		require.NoError(t, err)

		_, err = repo.Remove(ctx, 1030, 2030)
		assert.ErrorIs(t, err, interfaces.ErrNotSubscribed)
	})
}

func TestSubscriptionRepository_ListRoles(t *testing.T) {
	db := testutil.Setup(t)
	ctx := context.Background()

	guildID := int64(34567)
	setupGuild(t, db, guildID)
	repo := NewSubscriptionRepository(db, guildID)

	t.Run("empty guild has no roles", func(t *testing.T) {
		roles, err := repo.ListRoles(ctx)
		require.NoError(t, err)
		assert.Empty(t, roles)
	})

	t.Run("roles are distinct across subscribers", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, 1001, 2001))
		require.NoError(t, repo.Add(ctx, 1001, 2002))
		require.NoError(t, repo.Add(ctx, 1002, 2001))

		roles, err := repo.ListRoles(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1001, 1002}, roles)
	})
}

func TestSubscriptionRepository_DeleteRole(t *testing.T) {
	db := testutil.Setup(t)
	ctx := context.Background()

	guildID := int64(45678)
	setupGuild(t, db, guildID)
	repo := NewSubscriptionRepository(db, guildID)

	t.Run("deletes all rows for the role", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, 1001, 2001))
		require.NoError(t, repo.Add(ctx, 1001, 2002))
		require.NoError(t, repo.Add(ctx, 1002, 2001))

		require.NoError(t, repo.DeleteRole(ctx, 1001))

		subscribers, err := repo.ListSubscribers(ctx, 1001)
		require.NoError(t, err)
		assert.Empty(t, subscribers)

		// Other roles are untouched
		subscribers, err = repo.ListSubscribers(ctx, 1002)
		require.NoError(t, err)
		assert.Equal(t, []int64{2001}, subscribers)
	})

	t.Run("idempotent on absent role", func(t *testing.T) {
		require.NoError(t, repo.DeleteRole(ctx, 9999))
	})
}

func TestSubscriptionRepository_GuildScoping(t *testing.T) {
	db := testutil.Setup(t)
	ctx := context.Background()

	guildA := int64(11111)
	guildB := int64(22222)
	setupGuild(t, db, guildA)
	setupGuild(t, db, guildB)

	repoA := NewSubscriptionRepository(db, guildA)
	repoB := NewSubscriptionRepository(db, guildB)

	// Same (role, user) pair in two guilds is two independent subscriptions
	require.NoError(t, repoA.Add(ctx, 1001, 2001))
	require.NoError(t, repoB.Add(ctx, 1001, 2001))

	remaining, err := repoA.Remove(ctx, 1001, 2001)
	require.NoError(t, err)
	assert.False(t, remaining)

	// Guild B's subscription survives
	subscribers, err := repoB.ListSubscribers(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, []int64{2001}, subscribers)
}

func TestGuildRepository_EnsureGuild(t *testing.T) {
	db := testutil.Setup(t)
	ctx := context.Background()

	repo := NewGuildRepository(db)

	// Idempotent across reconnects
	require.NoError(t, repo.EnsureGuild(ctx, 55555))
	require.NoError(t, repo.EnsureGuild(ctx, 55555))
}

func TestUnitOfWork_TransactionBoundaries(t *testing.T) {
	db := testutil.Setup(t)
	ctx := context.Background()

	guildID := int64(66666)
	factory := NewUnitOfWorkFactory(db)

	t.Run("committed writes are visible", func(t *testing.T) {
		uow := factory.CreateForGuild(guildID)
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		require.NoError(t, uow.GuildRepository().EnsureGuild(ctx, guildID))
		require.NoError(t, uow.SubscriptionRepository().Add(ctx, 1001, 2001))
		require.NoError(t, uow.Commit())

		repo := NewSubscriptionRepository(db, guildID)
		subscribers, err := repo.ListSubscribers(ctx, 1001)
		require.NoError(t, err)
		assert.Equal(t, []int64{2001}, subscribers)
	})

	t.Run("rolled back batch leaves no partial state", func(t *testing.T) {
		uow := factory.CreateForGuild(guildID)
		require.NoError(t, uow.Begin(ctx))

		require.NoError(t, uow.SubscriptionRepository().Add(ctx, 1002, 2002))
		require.NoError(t, uow.SubscriptionRepository().Add(ctx, 1002, 2003))
		require.NoError(t, uow.Rollback())

		repo := NewSubscriptionRepository(db, guildID)
		subscribers, err := repo.ListSubscribers(ctx, 1002)
		require.NoError(t, err)
		assert.Empty(t, subscribers)
	})

	t.Run("rollback after commit is a no-op", func(t *testing.T) {
		uow := factory.CreateForGuild(guildID)
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.SubscriptionRepository().Add(ctx, 1003, 2003))
		require.NoError(t, uow.Commit())
		require.NoError(t, uow.Rollback())
	})
}
