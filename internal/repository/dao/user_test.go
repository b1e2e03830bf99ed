package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishwell/wishwell-api/internal/repository/dao"
)

func TestUserDAO_Insert(t *testing.T) {
	d := dao.NewUserDAO(openTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, dao.User{
		Email:    "sarah@example.com",
		Password: "hashed",
		Name:     "Sarah",
		Currency: "USD",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = d.Insert(ctx, dao.User{
		Email:    "sarah@example.com",
		Password: "hashed",
		Name:     "Other Sarah",
		Currency: "USD",
	})
	assert.ErrorIs(t, err, dao.ErrUserEmailExists)
}

func TestUserDAO_FindByEmail(t *testing.T) {
	d := dao.NewUserDAO(openTestDB(t))
	ctx := context.Background()

	_, err := d.Insert(ctx, dao.User{Email: "a@example.com", Password: "x", Name: "A", Currency: "USD"})
	require.NoError(t, err)

	user, err := d.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)

	_, err = d.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, dao.ErrUserNotFound)
}

func TestUserDAO_UpdatePayoutStatus(t *testing.T) {
	d := dao.NewUserDAO(openTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, dao.User{Email: "a@example.com", Password: "x", Name: "A", Currency: "USD"})
	require.NoError(t, err)
	require.NoError(t, d.SetStripeAccountID(ctx, created.ID, "acct_123"))

	t.Run("partial onboarding leaves setup incomplete", func(t *testing.T) {
		require.NoError(t, d.UpdatePayoutStatus(ctx, "acct_123", true, true, false))

		user, err := d.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, user.DetailsSubmitted)
		assert.True(t, user.ChargesEnabled)
		assert.False(t, user.PayoutsEnabled)
		assert.False(t, user.SetupComplete)
	})

	t.Run("all flags set completes setup", func(t *testing.T) {
		require.NoError(t, d.UpdatePayoutStatus(ctx, "acct_123", true, true, true))

		user, err := d.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, user.SetupComplete)
	})

	t.Run("unknown account id", func(t *testing.T) {
		err := d.UpdatePayoutStatus(ctx, "acct_missing", true, true, true)

		assert.ErrorIs(t, err, dao.ErrUserNotFound)
	})
}

func TestUserDAO_ClearPayoutAccount(t *testing.T) {
	d := dao.NewUserDAO(openTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, dao.User{Email: "a@example.com", Password: "x", Name: "A", Currency: "USD"})
	require.NoError(t, err)
	require.NoError(t, d.SetStripeAccountID(ctx, created.ID, "acct_123"))
	require.NoError(t, d.UpdatePayoutStatus(ctx, "acct_123", true, true, true))

	require.NoError(t, d.ClearPayoutAccount(ctx, created.ID))

	user, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, user.StripeAccountID)
	assert.False(t, user.SetupComplete)
}
