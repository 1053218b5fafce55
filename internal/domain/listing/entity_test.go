//go:build unit

package listing_test

import (
	"testing"
	"time"

	"boilerbites/internal/domain/listing"
	"boilerbites/internal/pkg/clock"
	"boilerbites/tests/common/builder"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T, now time.Time) (*listing.Factory, *clock.MockClock) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	clk := clock.NewMockClock(now)
	return listing.NewFactory(clk, node), clk
}

func TestNewAbandonmentBatch(t *testing.T) {
	now := time.Date(2025, 10, 3, 18, 30, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		factory, _ := newFactory(t, now)

		items, err := factory.NewAbandonmentBatch(listing.ItemSpec{
			Name:          "Spicy Tuna Roll",
			OriginalPrice: decimal.RequireFromString("8.99"),
		}, []string{"Raw", "Spicy"}, "sushi", "Sushi Boss", 1)
		require.NoError(t, err)
		require.Len(t, items, 1)

		l := items[0]
		assert.Equal(t, listing.SourceReadyNow, l.Source())
		assert.Equal(t, listing.StatusAvailable, l.Status())
		assert.Equal(t, listing.DefaultAbandonmentEco, l.EcoScore())
		assert.Equal(t, 1, l.Quantity())
		assert.Equal(t, []string{"Raw", "Spicy"}, l.DietaryTags())
		assert.Equal(t, now, l.PreparedTime())
		assert.Equal(t, now.Add(listing.AbandonmentTTL), l.ExpiresAt())
	})

	t.Run("discount is exactly half the original", func(t *testing.T) {
		factory, _ := newFactory(t, now)

		for _, price := range []string{"12.95", "4.29", "9.29", "0", "0.01", "24.99"} {
			items, err := factory.NewAbandonmentBatch(listing.ItemSpec{
				Name:          "Cajun Ribeye",
				OriginalPrice: decimal.RequireFromString(price),
			}, nil, "walkons", "Walk-On's Sports Bistreaux", 1)
			require.NoError(t, err)

			want := decimal.RequireFromString(price).Div(decimal.NewFromInt(2))
			assert.True(t, items[0].DiscountedPrice().Equal(want),
				"price %s: got %s, want %s", price, items[0].DiscountedPrice(), want)
		}
	})

	t.Run("quantity fans out to independent listings", func(t *testing.T) {
		factory, _ := newFactory(t, now)

		items, err := factory.NewAbandonmentBatch(listing.ItemSpec{
			Name:          "Pepperoni Slice",
			OriginalPrice: decimal.RequireFromString("4.29"),
		}, []string{"Quick"}, "pizza", "Anyway You Slice It", 3)
		require.NoError(t, err)
		require.Len(t, items, 3)

		ids := make(map[snowflake.ID]bool)
		for _, l := range items {
			ids[l.ID()] = true
			assert.Equal(t, 1, l.Quantity())
		}
		assert.Len(t, ids, 3, "each unit must have its own ID")
	})

	t.Run("item tags override the tags argument", func(t *testing.T) {
		factory, _ := newFactory(t, now)

		items, err := factory.NewAbandonmentBatch(listing.ItemSpec{
			Name:          "Vegetable Samosa",
			OriginalPrice: decimal.RequireFromString("1.49"),
			Tags:          []string{"Veg", "Vegan"},
		}, []string{"ignored"}, "choolaah", "Choolaah Indian BBQ", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"Veg", "Vegan"}, items[0].DietaryTags())
	})

	t.Run("explicit eco score wins over default", func(t *testing.T) {
		factory, _ := newFactory(t, now)
		eco := 40

		items, err := factory.NewAbandonmentBatch(listing.ItemSpec{
			Name:          "Brownie Sundae",
			OriginalPrice: decimal.RequireFromString("7.49"),
			EcoScore:      &eco,
		}, nil, "foodlab", "FoodLab", 1)
		require.NoError(t, err)
		assert.Equal(t, 40, items[0].EcoScore())
	})

	t.Run("validation", func(t *testing.T) {
		factory, _ := newFactory(t, now)
		negativeEco := -1

		cases := []struct {
			name  string
			spec  listing.ItemSpec
			errIs error
		}{
			{
				name:  "empty name",
				spec:  listing.ItemSpec{OriginalPrice: decimal.NewFromInt(5)},
				errIs: listing.ErrEmptyName,
			},
			{
				name:  "negative price",
				spec:  listing.ItemSpec{Name: "x", OriginalPrice: decimal.NewFromInt(-1)},
				errIs: listing.ErrNegativePrice,
			},
			{
				name:  "negative eco score",
				spec:  listing.ItemSpec{Name: "x", EcoScore: &negativeEco},
				errIs: listing.ErrNegativeEco,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := factory.NewAbandonmentBatch(tc.spec, nil, "zen", "Zen", 1)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestNewBatchSurplus(t *testing.T) {
	now := time.Date(2025, 10, 3, 21, 0, 0, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		factory, _ := newFactory(t, now)

		l, err := factory.NewBatchSurplus(listing.ItemSpec{
			Name:          "3 Piece Tenders",
			OriginalPrice: decimal.RequireFromString("6.09"),
			Quantity:      8,
		}, []string{"Chicken"}, "tlc", "Tenders, Love & Chicken")
		require.NoError(t, err)

		assert.Equal(t, listing.SourceBatchSurplus, l.Source())
		assert.Equal(t, listing.DefaultSurplusEco, l.EcoScore())
		assert.Equal(t, 8, l.Quantity())
		assert.True(t, l.DiscountedPrice().IsZero())
		assert.Equal(t, now.Add(listing.SurplusTTL), l.ExpiresAt())
	})

	t.Run("explicit expiry is honored verbatim", func(t *testing.T) {
		factory, _ := newFactory(t, now)
		expiresAt := now.Add(27 * time.Minute)

		l, err := factory.NewBatchSurplus(listing.ItemSpec{
			Name:      "Cookie Sandwich",
			ExpiresAt: &expiresAt,
		}, nil, "foodlab", "FoodLab")
		require.NoError(t, err)
		assert.Equal(t, expiresAt, l.ExpiresAt())
	})

	t.Run("expiry before prepared time is rejected", func(t *testing.T) {
		factory, _ := newFactory(t, now)
		expiresAt := now.Add(-time.Minute)

		_, err := factory.NewBatchSurplus(listing.ItemSpec{
			Name:      "Cookie Sandwich",
			ExpiresAt: &expiresAt,
		}, nil, "foodlab", "FoodLab")
		assert.ErrorIs(t, err, listing.ErrInvalidExpiry)
	})

	t.Run("past expiry is allowed with an earlier prepared time", func(t *testing.T) {
		factory, _ := newFactory(t, now)
		preparedTime := now.Add(-time.Hour)
		expiresAt := now.Add(-time.Second)

		l, err := factory.NewBatchSurplus(listing.ItemSpec{
			Name:         "Ranch Fries",
			PreparedTime: &preparedTime,
			ExpiresAt:    &expiresAt,
		}, nil, "burgers", "Burgers + Fries")
		require.NoError(t, err)
		assert.True(t, l.HasExpired(now))
	})
}

func TestStatusTransitions(t *testing.T) {
	now := time.Now()

	t.Run("claim consumes availability", func(t *testing.T) {
		l := builder.NewListingBuilder(now).Build()

		require.NoError(t, l.Claim())
		assert.Equal(t, listing.StatusClaimed, l.Status())

		assert.ErrorIs(t, l.Claim(), listing.ErrNotAvailable)
	})

	t.Run("claimed never reverts via expire", func(t *testing.T) {
		l := builder.NewListingBuilder(now).Build()
		require.NoError(t, l.Claim())

		l.Expire()
		assert.Equal(t, listing.StatusClaimed, l.Status())
	})

	t.Run("expired never becomes claimable", func(t *testing.T) {
		l := builder.NewListingBuilder(now).WithStatus(listing.StatusExpired).Build()

		assert.ErrorIs(t, l.Claim(), listing.ErrNotAvailable)
		l.Expire()
		assert.Equal(t, listing.StatusExpired, l.Status())
	})

	t.Run("boost is a parity flip independent of status", func(t *testing.T) {
		l := builder.NewListingBuilder(now).WithStatus(listing.StatusClaimed).Build()

		l.ToggleBoost()
		assert.True(t, l.IsBoosted())
		l.ToggleBoost()
		assert.False(t, l.IsBoosted())
	})
}

func TestAvailableAt(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		mutate  func(*builder.ListingBuilder)
		at      time.Time
		expects bool
	}{
		{
			name:    "live listing before expiry",
			mutate:  func(b *builder.ListingBuilder) {},
			at:      now,
			expects: true,
		},
		{
			name:    "at the expiry instant",
			mutate:  func(b *builder.ListingBuilder) {},
			at:      now.Add(10 * time.Minute),
			expects: false,
		},
		{
			name:    "claimed",
			mutate:  func(b *builder.ListingBuilder) { b.WithStatus(listing.StatusClaimed) },
			at:      now,
			expects: false,
		},
		{
			name:    "expired status",
			mutate:  func(b *builder.ListingBuilder) { b.WithStatus(listing.StatusExpired) },
			at:      now,
			expects: false,
		},
		{
			name:    "zero quantity",
			mutate:  func(b *builder.ListingBuilder) { b.WithQuantity(0) },
			at:      now,
			expects: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewListingBuilder(now)
			tc.mutate(b)
			assert.Equal(t, tc.expects, b.Build().AvailableAt(tc.at))
		})
	}
}
