package venue

import "math/rand"

// DisplayStats is the decorative per-venue dashboard seed. It is
// randomized within a band per venue profile and is NOT derived from
// the order log; the audit-backed aggregates live in the stats package.
type DisplayStats struct {
	RevenueRecovered int `json:"revenueRecovered"`
	WasteDiverted    int `json:"wasteDiverted"`
	ActiveUsers      int `json:"activeUsers"`
}

// StatsSeedFor buckets venues into three display profiles: premium
// venues show high recovered revenue with low waste weight, volume
// venues the reverse, and everyone else sits in the middle band.
func StatsSeedFor(venueID string) DisplayStats {
	switch venueID {
	case "sushi", "zen", "walkons":
		return DisplayStats{
			RevenueRecovered: 800 + rand.Intn(200),
			WasteDiverted:    5 + rand.Intn(3),
			ActiveUsers:      120 + rand.Intn(30),
		}
	case "pizza", "burgers", "tlc":
		return DisplayStats{
			RevenueRecovered: 300 + rand.Intn(100),
			WasteDiverted:    25 + rand.Intn(10),
			ActiveUsers:      85 + rand.Intn(20),
		}
	default:
		return DisplayStats{
			RevenueRecovered: 450 + rand.Intn(150),
			WasteDiverted:    12 + rand.Intn(8),
			ActiveUsers:      95 + rand.Intn(25),
		}
	}
}
