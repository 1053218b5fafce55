package stats

import "github.com/shopspring/decimal"

// co2PerEcoPoint converts eco score to kg of CO2 saved on claim.
var co2PerEcoPoint = decimal.NewFromInt(1).Shift(-1) // 0.1

// KitchenStats is the global audit-backed kitchen aggregate. It is
// mutated additively by successful claims only; the decorative
// per-venue display figures live in the venue catalog instead.
type KitchenStats struct {
	RevenueRecovered decimal.Decimal
	WasteDiverted    int
	ActiveUsers      int // display-only, not derived from real sessions
}

func (s *KitchenStats) RecordClaim(discountedPrice decimal.Decimal) {
	s.RevenueRecovered = s.RevenueRecovered.Add(discountedPrice)
	s.WasteDiverted++
}

// StudentStats is the single implicit current student's gamified tally.
type StudentStats struct {
	Points   int
	CO2Saved decimal.Decimal
}

func (s *StudentStats) RecordClaim(ecoScore int) {
	s.Points += ecoScore
	s.CO2Saved = s.CO2Saved.Add(decimal.NewFromInt(int64(ecoScore)).Mul(co2PerEcoPoint))
}
