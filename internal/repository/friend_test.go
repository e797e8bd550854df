package repository

import (
	"context"
	"testing"

	"grove/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, "fr_alice")
	u2 := createTestUser(t, db, "fr_bob")

	t.Run("Create and GetPendingRequests", func(t *testing.T) {
		friendship := &models.Friendship{
			RequesterID: u1.ID,
			AddresseeID: u2.ID,
			Status:      models.FriendshipStatusPending,
		}

		err := repo.Create(ctx, friendship)
		require.NoError(t, err)

		reqs, err := repo.GetPendingRequests(ctx, u2.ID)
		assert.NoError(t, err)
		assert.Len(t, reqs, 1)
		assert.Equal(t, u1.ID, reqs[0].RequesterID)

		// The requester has no inbound requests
		reqs, err = repo.GetPendingRequests(ctx, u1.ID)
		assert.NoError(t, err)
		assert.Empty(t, reqs)
	})

	t.Run("UpdateStatus and GetFriends", func(t *testing.T) {
		f, err := repo.GetFriendshipBetweenUsers(ctx, u1.ID, u2.ID)
		require.NoError(t, err)
		require.NotNil(t, f)

		err = repo.UpdateStatus(ctx, f.ID, models.FriendshipStatusAccepted)
		assert.NoError(t, err)

		friends, err := repo.GetFriends(ctx, u1.ID)
		assert.NoError(t, err)
		assert.Len(t, friends, 1)
		assert.Equal(t, u2.Username, friends[0].Username)
	})

	t.Run("Delete", func(t *testing.T) {
		f, err := repo.GetFriendshipBetweenUsers(ctx, u1.ID, u2.ID)
		require.NoError(t, err)

		err = repo.Delete(ctx, f.ID)
		assert.NoError(t, err)

		friends, _ := repo.GetFriends(ctx, u1.ID)
		assert.Empty(t, friends)
	})
}

func TestFriendRepository_AcceptedFriendIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "af_alice")
	bob := createTestUser(t, db, "af_bob")
	carol := createTestUser(t, db, "af_carol")
	dave := createTestUser(t, db, "af_dave")

	// Alice requested Bob, Carol requested Alice: both accepted, opposite
	// directions. Dave is only pending.
	require.NoError(t, db.Create(&models.Friendship{
		RequesterID: alice.ID, AddresseeID: bob.ID, Status: models.FriendshipStatusAccepted,
	}).Error)
	require.NoError(t, db.Create(&models.Friendship{
		RequesterID: carol.ID, AddresseeID: alice.ID, Status: models.FriendshipStatusAccepted,
	}).Error)
	require.NoError(t, db.Create(&models.Friendship{
		RequesterID: dave.ID, AddresseeID: alice.ID, Status: models.FriendshipStatusPending,
	}).Error)

	t.Run("collects both directions, skips pending", func(t *testing.T) {
		ids, err := repo.AcceptedFriendIDs(ctx, alice.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, ids)
	})

	t.Run("pending-only user has no friends", func(t *testing.T) {
		ids, err := repo.AcceptedFriendIDs(ctx, dave.ID)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("blocked edges never contribute", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Friendship{
			RequesterID: alice.ID, AddresseeID: dave.ID, Status: models.FriendshipStatusBlocked,
		}).Error)

		ids, err := repo.AcceptedFriendIDs(ctx, alice.ID)
		require.NoError(t, err)
		assert.NotContains(t, ids, dave.ID)
	})

	t.Run("self edge is ignored", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Friendship{
			RequesterID: bob.ID, AddresseeID: bob.ID, Status: models.FriendshipStatusAccepted,
		}).Error)

		ids, err := repo.AcceptedFriendIDs(ctx, bob.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{alice.ID}, ids)
	})

	t.Run("duplicate pair in both directions collapses", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Friendship{
			RequesterID: bob.ID, AddresseeID: alice.ID, Status: models.FriendshipStatusAccepted,
		}).Error)

		ids, err := repo.AcceptedFriendIDs(ctx, alice.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, ids)
	})
}
