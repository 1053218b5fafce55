package queries

import (
	"context"

	"boilerbites/internal/domain/venue"
)

// VenueReadStore narrows the registry to the selected-venue context.
type VenueReadStore interface {
	SelectedVenue() string
}

// VenueQueries serves the static catalog plus the decorative per-venue
// display stats. Lookup misses degrade to sentinels and empty menus
// rather than failing; the catalog is reference data, not state.
type VenueQueries interface {
	List(ctx context.Context) []venue.Venue
	ResolveName(ctx context.Context, venueID string) string
	Menu(ctx context.Context, venueID string) []venue.MenuItem
	DisplayStats(ctx context.Context, venueID string) venue.DisplayStats
	Selected(ctx context.Context) string
}

type venueQueriesImpl struct {
	store VenueReadStore
}

func NewVenueQueries(store VenueReadStore) VenueQueries {
	return &venueQueriesImpl{store: store}
}

func (q *venueQueriesImpl) List(_ context.Context) []venue.Venue {
	out := make([]venue.Venue, len(venue.Venues))
	copy(out, venue.Venues)
	return out
}

func (q *venueQueriesImpl) ResolveName(_ context.Context, venueID string) string {
	return venue.ResolveName(venueID)
}

func (q *venueQueriesImpl) Menu(_ context.Context, venueID string) []venue.MenuItem {
	return venue.MenuFor(venueID)
}

func (q *venueQueriesImpl) DisplayStats(_ context.Context, venueID string) venue.DisplayStats {
	return venue.StatsSeedFor(venueID)
}

func (q *venueQueriesImpl) Selected(_ context.Context) string {
	return q.store.SelectedVenue()
}
