package commands

import (
	"context"
	"log/slog"
	"time"

	"boilerbites/internal/domain/listing"
	"boilerbites/internal/domain/venue"
	"boilerbites/internal/pkg/errs"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

var ErrDomainValidation = errs.New("domain validation error")

// CreateListingParams carries the kitchen's input for a new listing.
// VenueID may be empty; creation then falls back to the store's
// selected-venue context, and failing that the listing is created with
// an unresolved venue (a valid outcome, displayed under the sentinel).
type CreateListingParams struct {
	Name            string
	OriginalPrice   decimal.Decimal
	DiscountedPrice *decimal.Decimal
	EcoScore        *int
	Tags            []string
	ItemTags        []string
	Quantity        int
	VenueID         string
	PreparedTime    *time.Time
	ExpiresAt       *time.Time
}

type ListingCommands interface {
	CreateAbandonment(ctx context.Context, params CreateListingParams) ([]listing.Listing, error)
	CreateBatchSurplus(ctx context.Context, params CreateListingParams) (*listing.Listing, error)
	ToggleBoost(ctx context.Context, id snowflake.ID)
	Update(ctx context.Context, id snowflake.ID, u listing.Update)
	Remove(ctx context.Context, id snowflake.ID)
	SelectVenue(ctx context.Context, venueID string)
}

type listingCommandsImpl struct {
	registry Registry
	factory  *listing.Factory
	logger   *slog.Logger
}

func NewListingCommands(registry Registry, factory *listing.Factory, logger *slog.Logger) ListingCommands {
	return &listingCommandsImpl{
		registry: registry,
		factory:  factory,
		logger:   logger,
	}
}

// CreateAbandonment posts a ready-now item left behind at the counter.
// Each unit of quantity becomes its own independently claimable record.
func (c *listingCommandsImpl) CreateAbandonment(_ context.Context, params CreateListingParams) ([]listing.Listing, error) {
	venueID, venueName := c.resolveVenue(params.VenueID)

	spec := listing.ItemSpec{
		Name:          params.Name,
		OriginalPrice: params.OriginalPrice,
		EcoScore:      params.EcoScore,
		Tags:          params.ItemTags,
	}
	items, err := c.factory.NewAbandonmentBatch(spec, params.Tags, venueID, venueName, params.Quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	c.registry.AddAbandonment(items)
	c.logger.Info("abandonment pushed to feed",
		"name", params.Name, "venue", venueID, "count", len(items))

	out := make([]listing.Listing, 0, len(items))
	for _, l := range items {
		out = append(out, *l)
	}
	return out, nil
}

// CreateBatchSurplus posts end-of-period leftovers as a single listing.
func (c *listingCommandsImpl) CreateBatchSurplus(_ context.Context, params CreateListingParams) (*listing.Listing, error) {
	venueID, venueName := c.resolveVenue(params.VenueID)

	spec := listing.ItemSpec{
		Name:            params.Name,
		OriginalPrice:   params.OriginalPrice,
		DiscountedPrice: params.DiscountedPrice,
		EcoScore:        params.EcoScore,
		Quantity:        params.Quantity,
		PreparedTime:    params.PreparedTime,
		ExpiresAt:       params.ExpiresAt,
	}
	l, err := c.factory.NewBatchSurplus(spec, params.Tags, venueID, venueName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	c.registry.Add(l)
	c.logger.Info("batch surplus listed",
		"name", params.Name, "venue", venueID, "quantity", l.Quantity())

	snapshot := *l
	return &snapshot, nil
}

func (c *listingCommandsImpl) ToggleBoost(_ context.Context, id snowflake.ID) {
	if !c.registry.ToggleBoost(id) {
		c.logger.Warn("boost toggle on unknown listing", "id", id)
	}
}

func (c *listingCommandsImpl) Update(_ context.Context, id snowflake.ID, u listing.Update) {
	if !c.registry.Update(id, u) {
		c.logger.Warn("update on unknown listing", "id", id)
	}
}

func (c *listingCommandsImpl) Remove(_ context.Context, id snowflake.ID) {
	if !c.registry.Remove(id) {
		c.logger.Warn("remove on unknown listing", "id", id)
	}
}

func (c *listingCommandsImpl) SelectVenue(_ context.Context, venueID string) {
	c.registry.SelectVenue(venueID)
}

// resolveVenue applies the venue fallback chain: explicit param, then
// the kitchen's selected venue, then the unresolved sentinel.
func (c *listingCommandsImpl) resolveVenue(venueID string) (string, string) {
	if venueID == "" {
		venueID = c.registry.SelectedVenue()
	}
	if venueID == "" {
		return "", venue.UnknownVenueName
	}
	return venueID, venue.ResolveName(venueID)
}
