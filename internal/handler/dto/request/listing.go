package request

import (
	"time"

	"boilerbites/internal/pkg/patch"
	"boilerbites/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateAbandonmentRequest struct {
	Name          string           `json:"name" binding:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	EcoScore      *int             `json:"eco_score,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	ItemTags      []string         `json:"item_tags,omitempty"`
	Quantity      int              `json:"quantity,omitempty"`
	VenueID       string           `json:"venue_id,omitempty"`
}

func (r CreateAbandonmentRequest) ToParams() commands.CreateListingParams {
	quantity := r.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return commands.CreateListingParams{
		Name:          r.Name,
		OriginalPrice: patch.Coalesce(r.OriginalPrice, decimal.Zero),
		EcoScore:      r.EcoScore,
		Tags:          r.Tags,
		ItemTags:      r.ItemTags,
		Quantity:      quantity,
		VenueID:       r.VenueID,
	}
}

type CreateSurplusRequest struct {
	Name            string           `json:"name" binding:"required"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	DiscountedPrice *decimal.Decimal `json:"discounted_price,omitempty"`
	EcoScore        *int             `json:"eco_score,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
	Quantity        int              `json:"quantity,omitempty"`
	VenueID         string           `json:"venue_id,omitempty"`
	PreparedTime    *time.Time       `json:"prepared_time,omitempty"`
	ExpiresAt       *time.Time       `json:"expires_at,omitempty"`
}

func (r CreateSurplusRequest) ToParams() commands.CreateListingParams {
	return commands.CreateListingParams{
		Name:            r.Name,
		OriginalPrice:   patch.Coalesce(r.OriginalPrice, decimal.Zero),
		DiscountedPrice: r.DiscountedPrice,
		EcoScore:        r.EcoScore,
		Tags:            r.Tags,
		Quantity:        r.Quantity,
		VenueID:         r.VenueID,
		PreparedTime:    r.PreparedTime,
		ExpiresAt:       r.ExpiresAt,
	}
}

type UpdateListingRequest struct {
	Name            *string          `json:"name,omitempty"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	DiscountedPrice *decimal.Decimal `json:"discounted_price,omitempty"`
	DietaryTags     []string         `json:"dietary_tags,omitempty"`
	EcoScore        *int             `json:"eco_score,omitempty"`
	Quantity        *int             `json:"quantity,omitempty"`
	ExpiresAt       *time.Time       `json:"expires_at,omitempty"`
}

type SelectVenueRequest struct {
	VenueID string `json:"venue_id" binding:"required"`
}
