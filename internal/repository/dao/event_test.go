package dao_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishwell/wishwell-api/internal/repository/dao"
)

func testEvent(userID uint, slug string) dao.Event {
	return dao.Event{
		UserID: userID,
		Name:   "Sarah's Wedding!",
		Slug:   slug,
		Date:   time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestEventDAO_Insert(t *testing.T) {
	d := dao.NewEventDAO(openTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, testEvent(1, "sarahs-wedding"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = d.Insert(ctx, testEvent(2, "sarahs-wedding"))
	assert.ErrorIs(t, err, dao.ErrEventSlugExists)
}

func TestEventDAO_FindBySlug(t *testing.T) {
	db := openTestDB(t)
	events := dao.NewEventDAO(db)
	wishes := dao.NewWishDAO(db)
	ctx := context.Background()

	created, err := events.Insert(ctx, testEvent(1, "sarahs-wedding"))
	require.NoError(t, err)

	_, err = wishes.Insert(ctx, dao.Wish{
		EventID:          created.ID,
		Title:            "Stand mixer",
		PriceUSD:         450,
		OriginalCurrency: "USD",
		OriginalAmount:   450,
	})
	require.NoError(t, err)

	event, err := events.FindBySlug(ctx, "sarahs-wedding")
	require.NoError(t, err)
	assert.Equal(t, created.ID, event.ID)
	require.Len(t, event.Wishes, 1)
	assert.Equal(t, "Stand mixer", event.Wishes[0].Title)

	_, err = events.FindBySlug(ctx, "nope")
	assert.ErrorIs(t, err, dao.ErrEventNotFound)
}

func TestEventDAO_SlugExists(t *testing.T) {
	d := dao.NewEventDAO(openTestDB(t))
	ctx := context.Background()

	_, err := d.Insert(ctx, testEvent(1, "sarahs-wedding"))
	require.NoError(t, err)

	exists, err := d.SlugExists(ctx, "sarahs-wedding")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = d.SlugExists(ctx, "free-slug")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEventDAO_Update(t *testing.T) {
	d := dao.NewEventDAO(openTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, testEvent(1, "sarahs-wedding"))
	require.NoError(t, err)

	created.Name = "Sarah & Tom's Wedding"
	created.Description = "Join us in June."
	updated, err := d.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Sarah & Tom's Wedding", updated.Name)
	assert.Equal(t, "sarahs-wedding", updated.Slug, "slug stays frozen on rename")

	_, err = d.Update(ctx, dao.Event{ID: 999, Name: "x"})
	assert.ErrorIs(t, err, dao.ErrEventNotFound)
}

func TestEventDAO_Delete(t *testing.T) {
	db := openTestDB(t)
	events := dao.NewEventDAO(db)
	wishes := dao.NewWishDAO(db)
	ctx := context.Background()

	created, err := events.Insert(ctx, testEvent(1, "sarahs-wedding"))
	require.NoError(t, err)

	wish, err := wishes.Insert(ctx, dao.Wish{EventID: created.ID, Title: "Stand mixer", PriceUSD: 450, OriginalCurrency: "USD", OriginalAmount: 450})
	require.NoError(t, err)

	require.NoError(t, events.Delete(ctx, created.ID))

	_, err = events.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, dao.ErrEventNotFound)

	_, err = wishes.FindByID(ctx, wish.ID)
	assert.ErrorIs(t, err, dao.ErrWishNotFound)

	assert.ErrorIs(t, events.Delete(ctx, created.ID), dao.ErrEventNotFound)
}
