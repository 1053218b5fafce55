package response

import (
	"time"

	"boilerbites/internal/domain/listing"
	"boilerbites/internal/usecase/queries"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type ListingResponse struct {
	ID              snowflake.ID    `json:"id"`
	Name            string          `json:"name"`
	Source          string          `json:"source"`
	OriginalPrice   decimal.Decimal `json:"originalPrice"`
	DiscountedPrice decimal.Decimal `json:"discountedPrice"`
	Status          string          `json:"status"`
	DietaryTags     []string        `json:"dietaryTags"`
	EcoScore        int             `json:"ecoScore"`
	IsBoosted       bool            `json:"isBoosted"`
	Quantity        int             `json:"quantity"`
	VenueID         string          `json:"venueId"`
	VenueName       string          `json:"venueName"`
	PreparedTime    time.Time       `json:"preparedTime"`
	ExpiresAt       time.Time       `json:"expiresAt"`
}

func FromListingView(v queries.ListingView) ListingResponse {
	return ListingResponse{
		ID:              v.ID,
		Name:            v.Name,
		Source:          v.Source,
		OriginalPrice:   v.OriginalPrice,
		DiscountedPrice: v.DiscountedPrice,
		Status:          v.Status,
		DietaryTags:     v.DietaryTags,
		EcoScore:        v.EcoScore,
		IsBoosted:       v.IsBoosted,
		Quantity:        v.Quantity,
		VenueID:         v.VenueID,
		VenueName:       v.VenueName,
		PreparedTime:    v.PreparedTime,
		ExpiresAt:       v.ExpiresAt,
	}
}

func FromListingViews(views []queries.ListingView) []ListingResponse {
	out := make([]ListingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromListingView(v))
	}
	return out
}

func FromListing(l listing.Listing) ListingResponse {
	return ListingResponse{
		ID:              l.ID(),
		Name:            l.Name(),
		Source:          l.Source().String(),
		OriginalPrice:   l.OriginalPrice(),
		DiscountedPrice: l.DiscountedPrice(),
		Status:          l.Status().String(),
		DietaryTags:     l.DietaryTags(),
		EcoScore:        l.EcoScore(),
		IsBoosted:       l.IsBoosted(),
		Quantity:        l.Quantity(),
		VenueID:         l.VenueID(),
		VenueName:       l.VenueName(),
		PreparedTime:    l.PreparedTime(),
		ExpiresAt:       l.ExpiresAt(),
	}
}

func FromListings(items []listing.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(items))
	for _, l := range items {
		out = append(out, FromListing(l))
	}
	return out
}
