package listing

import (
	"time"

	"boilerbites/internal/pkg/clock"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

const (
	// AbandonmentTTL is how long a ready-now abandonment stays claimable.
	AbandonmentTTL = 30 * time.Minute
	// SurplusTTL is the default window for end-of-period batch surplus.
	SurplusTTL = 2 * time.Hour

	DefaultAbandonmentEco = 15
	DefaultSurplusEco     = 25
)

// half applies the fixed 50% abandonment discount without float drift.
var half = decimal.NewFromInt(5).Shift(-1)

// ItemSpec carries the caller-supplied fields for a new listing.
// Optional fields are pointers; nil means "use the default".
type ItemSpec struct {
	Name            string
	OriginalPrice   decimal.Decimal
	DiscountedPrice *decimal.Decimal
	EcoScore        *int
	Quantity        int
	Tags            []string
	PreparedTime    *time.Time
	ExpiresAt       *time.Time
}

// Factory mints listings with snowflake IDs: time-ordered and
// collision-free even when a batch creates many listings in the same
// millisecond.
type Factory struct {
	clock clock.Clock
	ids   *snowflake.Node
}

func NewFactory(clk clock.Clock, ids *snowflake.Node) *Factory {
	return &Factory{clock: clk, ids: ids}
}

// NewAbandonmentBatch creates `quantity` independent ready-now listings,
// each separately claimable with quantity 1. The discounted price is
// exactly half the original.
func (f *Factory) NewAbandonmentBatch(spec ItemSpec, tags []string, venueID, venueName string, quantity int) ([]*Listing, error) {
	if quantity < 1 {
		quantity = 1
	}
	now := f.clock.Now()
	expiresAt := now.Add(AbandonmentTTL)

	finalTags := spec.Tags
	if len(finalTags) == 0 {
		finalTags = tags
	}

	eco := DefaultAbandonmentEco
	if spec.EcoScore != nil {
		eco = *spec.EcoScore
	}

	template := ItemSpec{
		Name:          spec.Name,
		OriginalPrice: spec.OriginalPrice,
		EcoScore:      &eco,
		Tags:          finalTags,
	}
	if err := validateSpec(template, now, expiresAt); err != nil {
		return nil, err
	}
	discounted := spec.OriginalPrice.Mul(half)

	items := make([]*Listing, 0, quantity)
	for i := 0; i < quantity; i++ {
		items = append(items, &Listing{
			id:              f.ids.Generate(),
			name:            spec.Name,
			source:          SourceReadyNow,
			originalPrice:   spec.OriginalPrice,
			discountedPrice: discounted,
			status:          StatusAvailable,
			dietaryTags:     copyTags(finalTags),
			ecoScore:        eco,
			quantity:        1,
			venueID:         venueID,
			venueName:       venueName,
			preparedTime:    now,
			expiresAt:       expiresAt,
		})
	}
	return items, nil
}

// NewBatchSurplus creates a single leftover listing. An explicit
// spec.ExpiresAt is honored verbatim; otherwise the surplus window
// applies. The displayed quantity is never decremented by claims.
func (f *Factory) NewBatchSurplus(spec ItemSpec, tags []string, venueID, venueName string) (*Listing, error) {
	now := f.clock.Now()

	preparedTime := now
	if spec.PreparedTime != nil {
		preparedTime = *spec.PreparedTime
	}
	expiresAt := now.Add(SurplusTTL)
	if spec.ExpiresAt != nil {
		expiresAt = *spec.ExpiresAt
	}

	eco := DefaultSurplusEco
	if spec.EcoScore != nil {
		eco = *spec.EcoScore
	}
	discounted := decimal.Zero
	if spec.DiscountedPrice != nil {
		discounted = *spec.DiscountedPrice
	}
	quantity := spec.Quantity
	if quantity < 1 {
		quantity = 1
	}

	checked := ItemSpec{
		Name:            spec.Name,
		OriginalPrice:   spec.OriginalPrice,
		DiscountedPrice: &discounted,
		EcoScore:        &eco,
	}
	if err := validateSpec(checked, preparedTime, expiresAt); err != nil {
		return nil, err
	}

	return &Listing{
		id:              f.ids.Generate(),
		name:            spec.Name,
		source:          SourceBatchSurplus,
		originalPrice:   spec.OriginalPrice,
		discountedPrice: discounted,
		status:          StatusAvailable,
		dietaryTags:     copyTags(tags),
		ecoScore:        eco,
		quantity:        quantity,
		venueID:         venueID,
		venueName:       venueName,
		preparedTime:    preparedTime,
		expiresAt:       expiresAt,
	}, nil
}

func validateSpec(spec ItemSpec, preparedTime, expiresAt time.Time) error {
	if spec.Name == "" {
		return ErrEmptyName
	}
	if spec.OriginalPrice.IsNegative() {
		return ErrNegativePrice
	}
	if spec.DiscountedPrice != nil && spec.DiscountedPrice.IsNegative() {
		return ErrNegativePrice
	}
	if spec.EcoScore != nil && *spec.EcoScore < 0 {
		return ErrNegativeEco
	}
	if !expiresAt.After(preparedTime) {
		return ErrInvalidExpiry
	}
	return nil
}

func copyTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
