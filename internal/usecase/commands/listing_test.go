//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"boilerbites/internal/domain/listing"
	"boilerbites/internal/domain/venue"
	"boilerbites/internal/infra/memstore"
	"boilerbites/internal/pkg/clock"
	"boilerbites/internal/usecase/commands"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingFixture(t *testing.T) (*memstore.Store, *clock.MockClock, commands.ListingCommands) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC))
	store := memstore.New(clk, 3*time.Second)
	t.Cleanup(store.Close)
	node, err := snowflake.NewNode(3)
	require.NoError(t, err)
	factory := listing.NewFactory(clk, node)
	return store, clk, commands.NewListingCommands(store, factory, discardLogger())
}

func TestCreateAbandonment(t *testing.T) {
	ctx := context.Background()

	t.Run("registers each unit and raises the feed flag", func(t *testing.T) {
		store, _, cmd := newListingFixture(t)

		created, err := cmd.CreateAbandonment(ctx, commands.CreateListingParams{
			Name:          "Pepperoni Slice",
			OriginalPrice: decimal.RequireFromString("4.29"),
			Quantity:      3,
			VenueID:       "pizza",
		})
		require.NoError(t, err)
		require.Len(t, created, 3)

		assert.Len(t, store.Available(), 3)
		assert.True(t, store.PushNotificationActive())
		for _, l := range created {
			assert.Equal(t, "pizza", l.VenueID())
			assert.Equal(t, "Anyway You Slice It", l.VenueName())
			assert.Equal(t, 1, l.Quantity())
			assert.True(t, l.DiscountedPrice().Equal(decimal.RequireFromString("2.145")))
		}
	})

	t.Run("falls back to the selected venue", func(t *testing.T) {
		store, _, cmd := newListingFixture(t)
		store.SelectVenue("zen")

		created, err := cmd.CreateAbandonment(ctx, commands.CreateListingParams{
			Name:          "Hawaiian Classic Poke",
			OriginalPrice: decimal.RequireFromString("12.95"),
		})
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, "zen", created[0].VenueID())
		assert.Equal(t, "Zen", created[0].VenueName())
	})

	t.Run("no venue anywhere yields the sentinel name", func(t *testing.T) {
		_, _, cmd := newListingFixture(t)

		created, err := cmd.CreateAbandonment(ctx, commands.CreateListingParams{
			Name:          "Mystery Meal",
			OriginalPrice: decimal.NewFromInt(5),
		})
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Empty(t, created[0].VenueID())
		assert.Equal(t, venue.UnknownVenueName, created[0].VenueName())
	})

	t.Run("explicit venue beats the selected one", func(t *testing.T) {
		store, _, cmd := newListingFixture(t)
		store.SelectVenue("zen")

		created, err := cmd.CreateAbandonment(ctx, commands.CreateListingParams{
			Name:          "Cajun Ribeye",
			OriginalPrice: decimal.RequireFromString("24.99"),
			VenueID:       "walkons",
		})
		require.NoError(t, err)
		assert.Equal(t, "walkons", created[0].VenueID())
	})

	t.Run("item tags beat the request tags", func(t *testing.T) {
		_, _, cmd := newListingFixture(t)

		created, err := cmd.CreateAbandonment(ctx, commands.CreateListingParams{
			Name:          "Vegetable Samosa",
			OriginalPrice: decimal.RequireFromString("1.49"),
			Tags:          []string{"from-request"},
			ItemTags:      []string{"Veg", "Vegan"},
			VenueID:       "choolaah",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Veg", "Vegan"}, created[0].DietaryTags())
	})

	t.Run("validation failure", func(t *testing.T) {
		store, _, cmd := newListingFixture(t)

		_, err := cmd.CreateAbandonment(ctx, commands.CreateListingParams{
			OriginalPrice: decimal.NewFromInt(5),
			VenueID:       "zen",
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Empty(t, store.All())
		assert.False(t, store.PushNotificationActive())
	})
}

func TestCreateBatchSurplus(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a single listing without the feed flag", func(t *testing.T) {
		store, clk, cmd := newListingFixture(t)

		l, err := cmd.CreateBatchSurplus(ctx, commands.CreateListingParams{
			Name:          "3 Piece Tenders",
			OriginalPrice: decimal.RequireFromString("6.09"),
			Quantity:      8,
			VenueID:       "tlc",
		})
		require.NoError(t, err)

		assert.Equal(t, listing.SourceBatchSurplus, l.Source())
		assert.Equal(t, 8, l.Quantity())
		assert.Equal(t, clk.Now().Add(listing.SurplusTTL), l.ExpiresAt())
		assert.Len(t, store.Available(), 1)
		assert.False(t, store.PushNotificationActive())
	})

	t.Run("honors an explicit expiry", func(t *testing.T) {
		_, clk, cmd := newListingFixture(t)
		expiresAt := clk.Now().Add(20 * time.Minute)

		l, err := cmd.CreateBatchSurplus(ctx, commands.CreateListingParams{
			Name:      "Cookie Sandwich",
			VenueID:   "foodlab",
			ExpiresAt: &expiresAt,
		})
		require.NoError(t, err)
		assert.Equal(t, expiresAt, l.ExpiresAt())
	})
}

func TestListingMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle, update, remove round-trip through the store", func(t *testing.T) {
		store, _, cmd := newListingFixture(t)
		created, err := cmd.CreateAbandonment(ctx, commands.CreateListingParams{
			Name:          "Pepperoni Slice",
			OriginalPrice: decimal.RequireFromString("4.29"),
			VenueID:       "pizza",
		})
		require.NoError(t, err)
		id := created[0].ID()

		cmd.ToggleBoost(ctx, id)
		got, _ := store.Get(id)
		assert.True(t, got.IsBoosted())

		newName := "Pepperoni Slice (day-old)"
		cmd.Update(ctx, id, listing.Update{Name: &newName})
		got, _ = store.Get(id)
		assert.Equal(t, newName, got.Name())

		cmd.Remove(ctx, id)
		_, ok := store.Get(id)
		assert.False(t, ok)
	})

	t.Run("mutations on unknown listings are silent", func(t *testing.T) {
		store, _, cmd := newListingFixture(t)

		cmd.ToggleBoost(ctx, snowflake.ID(42))
		cmd.Update(ctx, snowflake.ID(42), listing.Update{})
		cmd.Remove(ctx, snowflake.ID(42))
		assert.Empty(t, store.All())
	})

	t.Run("select venue updates the kitchen context", func(t *testing.T) {
		store, _, cmd := newListingFixture(t)

		cmd.SelectVenue(ctx, "burgers")
		assert.Equal(t, "burgers", store.SelectedVenue())
	})
}
