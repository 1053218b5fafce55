package memstore

import (
	"time"

	"boilerbites/internal/domain/listing"
	"boilerbites/internal/domain/stats"
	"boilerbites/internal/pkg/clock"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// SeedDemo loads the launch demo state: three live abandonment listings
// and the baseline aggregate figures shown before any real claims.
func SeedDemo(s *Store, clk clock.Clock, ids *snowflake.Node) {
	now := clk.Now()

	seeds := []struct {
		name      string
		price     string
		tags      []string
		eco       int
		venueID   string
		venueName string
		prepared  int // minutes ago
		expires   int // minutes from now
	}{
		{"Hawaiian Classic Poke", "12.95", []string{"Raw", "Fresh"}, 25, "zen", "Zen", 5, 10},
		{"Pepperoni Slice", "4.29", []string{"Quick"}, 15, "pizza", "Anyway You Slice It", 10, 45},
		{"Double Bacon Cheese", "9.29", []string{"Beef", "Heavy"}, 20, "burgers", "Burgers + Fries", 2, 5},
	}

	half := decimal.New(5, -1)
	for _, seed := range seeds {
		price := decimal.RequireFromString(seed.price)
		l := listing.Reconstruct(
			ids.Generate(),
			seed.name,
			listing.SourceReadyNow,
			price,
			price.Mul(half),
			listing.StatusAvailable,
			seed.tags,
			seed.eco,
			false,
			1,
			seed.venueID,
			seed.venueName,
			now.Add(-time.Duration(seed.prepared)*time.Minute),
			now.Add(time.Duration(seed.expires)*time.Minute),
		)
		s.Add(l)
	}

	s.SeedStats(
		stats.KitchenStats{
			RevenueRecovered: decimal.NewFromInt(450),
			WasteDiverted:    12,
			ActiveUsers:      85,
		},
		stats.StudentStats{
			Points:   120,
			CO2Saved: decimal.RequireFromString("4.5"),
		},
	)
}
