//go:build unit

package builder

import (
	"time"

	"boilerbites/internal/domain/listing"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

var idNode *snowflake.Node

func init() {
	node, err := snowflake.NewNode(511)
	if err != nil {
		panic(err)
	}
	idNode = node
}

// ListingBuilder produces listing fixtures. Defaults mirror the poke
// bowl demo listing: $12.95 at half off, eco score 25, expiring in ten
// minutes.
type ListingBuilder struct {
	ID              snowflake.ID
	Name            string
	Source          listing.Source
	OriginalPrice   decimal.Decimal
	DiscountedPrice decimal.Decimal
	Status          listing.Status
	DietaryTags     []string
	EcoScore        int
	Boosted         bool
	Quantity        int
	VenueID         string
	VenueName       string
	PreparedTime    time.Time
	ExpiresAt       time.Time
}

func NewListingBuilder(now time.Time) *ListingBuilder {
	return &ListingBuilder{
		ID:              idNode.Generate(),
		Name:            "Hawaiian Classic Poke",
		Source:          listing.SourceReadyNow,
		OriginalPrice:   decimal.RequireFromString("12.95"),
		DiscountedPrice: decimal.RequireFromString("6.475"),
		Status:          listing.StatusAvailable,
		DietaryTags:     []string{"Raw", "Fresh"},
		EcoScore:        25,
		Quantity:        1,
		VenueID:         "zen",
		VenueName:       "Zen",
		PreparedTime:    now.Add(-5 * time.Minute),
		ExpiresAt:       now.Add(10 * time.Minute),
	}
}

func (b *ListingBuilder) WithName(name string) *ListingBuilder {
	b.Name = name
	return b
}

func (b *ListingBuilder) WithVenue(venueID, venueName string) *ListingBuilder {
	b.VenueID = venueID
	b.VenueName = venueName
	return b
}

func (b *ListingBuilder) WithPrices(original, discounted string) *ListingBuilder {
	b.OriginalPrice = decimal.RequireFromString(original)
	b.DiscountedPrice = decimal.RequireFromString(discounted)
	return b
}

func (b *ListingBuilder) WithEcoScore(eco int) *ListingBuilder {
	b.EcoScore = eco
	return b
}

func (b *ListingBuilder) WithStatus(status listing.Status) *ListingBuilder {
	b.Status = status
	return b
}

func (b *ListingBuilder) WithTags(tags ...string) *ListingBuilder {
	b.DietaryTags = tags
	return b
}

func (b *ListingBuilder) WithBoost() *ListingBuilder {
	b.Boosted = true
	return b
}

func (b *ListingBuilder) WithQuantity(quantity int) *ListingBuilder {
	b.Quantity = quantity
	return b
}

func (b *ListingBuilder) WithExpiry(expiresAt time.Time) *ListingBuilder {
	b.ExpiresAt = expiresAt
	return b
}

func (b *ListingBuilder) WithPreparedTime(preparedTime time.Time) *ListingBuilder {
	b.PreparedTime = preparedTime
	return b
}

func (b *ListingBuilder) Build() *listing.Listing {
	return listing.Reconstruct(
		b.ID,
		b.Name,
		b.Source,
		b.OriginalPrice,
		b.DiscountedPrice,
		b.Status,
		b.DietaryTags,
		b.EcoScore,
		b.Boosted,
		b.Quantity,
		b.VenueID,
		b.VenueName,
		b.PreparedTime,
		b.ExpiresAt,
	)
}
