package listing

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

var (
	ErrNotAvailable    = errors.New("listing is not available")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrNegativeEco     = errors.New("eco score cannot be negative")
	ErrEmptyName       = errors.New("listing name cannot be empty")
	ErrInvalidExpiry   = errors.New("expiry must be after prepared time")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Listing is a single discounted food unit offered by a venue.
// Each record is independently claimable; claiming consumes the whole
// record regardless of the displayed quantity.
type Listing struct {
	id              snowflake.ID
	name            string
	source          Source
	originalPrice   decimal.Decimal
	discountedPrice decimal.Decimal
	status          Status
	dietaryTags     []string
	ecoScore        int
	boosted         bool
	quantity        int
	venueID         string
	venueName       string // captured at creation, does not track renames
	preparedTime    time.Time
	expiresAt       time.Time
}

func (l *Listing) ID() snowflake.ID                 { return l.id }
func (l *Listing) Name() string                     { return l.name }
func (l *Listing) Source() Source                   { return l.source }
func (l *Listing) OriginalPrice() decimal.Decimal   { return l.originalPrice }
func (l *Listing) DiscountedPrice() decimal.Decimal { return l.discountedPrice }
func (l *Listing) Status() Status                   { return l.status }
func (l *Listing) EcoScore() int                    { return l.ecoScore }
func (l *Listing) IsBoosted() bool                  { return l.boosted }
func (l *Listing) Quantity() int                    { return l.quantity }
func (l *Listing) VenueID() string                  { return l.venueID }
func (l *Listing) VenueName() string                { return l.venueName }
func (l *Listing) PreparedTime() time.Time          { return l.preparedTime }
func (l *Listing) ExpiresAt() time.Time             { return l.expiresAt }

func (l *Listing) DietaryTags() []string {
	tags := make([]string, len(l.dietaryTags))
	copy(tags, l.dietaryTags)
	return tags
}

func (l *Listing) HasTag(tag string) bool {
	for _, t := range l.dietaryTags {
		if t == tag {
			return true
		}
	}
	return false
}

func (l *Listing) HasExpired(now time.Time) bool {
	return !now.Before(l.expiresAt)
}

// AvailableAt is the canonical availability check: claimable status,
// positive quantity, and not yet past expiry at the given instant.
func (l *Listing) AvailableAt(now time.Time) bool {
	return l.status == StatusAvailable && l.quantity > 0 && now.Before(l.expiresAt)
}

// Claim transitions Available -> Claimed. The caller must hold the
// store's write lock so the status gate and the write are one atomic step.
func (l *Listing) Claim() error {
	if l.status != StatusAvailable {
		return ErrNotAvailable
	}
	l.status = StatusClaimed
	return nil
}

// Expire transitions Available -> Expired. No-op on any other status,
// so repeated sweeps are harmless.
func (l *Listing) Expire() {
	if l.status == StatusAvailable {
		l.status = StatusExpired
	}
}

// ToggleBoost flips hot-deal placement. Boost is independent of status
// and never affects claim eligibility.
func (l *Listing) ToggleBoost() {
	l.boosted = !l.boosted
}

// Reconstruct rebuilds a listing from raw state. Used for seed data
// and test fixtures; regular creation goes through the Factory.
func Reconstruct(
	id snowflake.ID,
	name string,
	source Source,
	originalPrice, discountedPrice decimal.Decimal,
	status Status,
	dietaryTags []string,
	ecoScore int,
	boosted bool,
	quantity int,
	venueID, venueName string,
	preparedTime, expiresAt time.Time,
) *Listing {
	return &Listing{
		id:              id,
		name:            name,
		source:          source,
		originalPrice:   originalPrice,
		discountedPrice: discountedPrice,
		status:          status,
		dietaryTags:     copyTags(dietaryTags),
		ecoScore:        ecoScore,
		boosted:         boosted,
		quantity:        quantity,
		venueID:         venueID,
		venueName:       venueName,
		preparedTime:    preparedTime,
		expiresAt:       expiresAt,
	}
}

// Update holds merge-only partial changes for a listing. Nil fields are
// left untouched; no validation beyond what the setter types enforce.
type Update struct {
	Name            *string
	OriginalPrice   *decimal.Decimal
	DiscountedPrice *decimal.Decimal
	DietaryTags     []string
	EcoScore        *int
	Quantity        *int
	ExpiresAt       *time.Time
}

// Apply merges non-nil update fields into the listing.
func (l *Listing) Apply(u Update) {
	if u.Name != nil {
		l.name = *u.Name
	}
	if u.OriginalPrice != nil {
		l.originalPrice = *u.OriginalPrice
	}
	if u.DiscountedPrice != nil {
		l.discountedPrice = *u.DiscountedPrice
	}
	if u.DietaryTags != nil {
		tags := make([]string, len(u.DietaryTags))
		copy(tags, u.DietaryTags)
		l.dietaryTags = tags
	}
	if u.EcoScore != nil {
		l.ecoScore = *u.EcoScore
	}
	if u.Quantity != nil {
		l.quantity = *u.Quantity
	}
	if u.ExpiresAt != nil {
		l.expiresAt = *u.ExpiresAt
	}
}
