package queries

import (
	"context"
	"sort"

	"boilerbites/internal/domain/listing"
	"boilerbites/internal/pkg/errs"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

var (
	ErrListingNotFound = errs.New("listing not found")
	ErrInvalidFilter   = errs.New("invalid feed filter")
)

// Filter is the fixed dietary/price filter vocabulary of the student feed.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterUnder4     Filter = "under-4"
	FilterVegetarian Filter = "vegetarian"
	FilterGlutenFree Filter = "gluten-free"
)

func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterUnder4, FilterVegetarian, FilterGlutenFree:
		return Filter(s), nil
	default:
		return "", ErrInvalidFilter
	}
}

// priceCeiling is the under-$4 budget filter boundary.
var priceCeiling = decimal.NewFromInt(4)

// ListingReadStore is the read surface of the in-memory registry.
// Available must re-evaluate against the wall clock on every call;
// availability decays with time even without new writes.
type ListingReadStore interface {
	Available() []listing.Listing
	All() []listing.Listing
	Get(id snowflake.ID) (listing.Listing, bool)
}

type ListingQueries interface {
	// Feed returns claimable listings. With no venue filter the feed is
	// in urgency order: soonest expiry first, insertion order breaking
	// ties. A venue filter waives the ordering contract.
	Feed(ctx context.Context, venueID string, filter Filter) ([]ListingView, error)
	// HotDeals returns the boosted subset of the available feed.
	HotDeals(ctx context.Context) ([]ListingView, error)
	GetByID(ctx context.Context, id snowflake.ID) (*ListingView, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
}

func NewListingQueries(store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{store: store}
}

func (q *listingQueriesImpl) Feed(_ context.Context, venueID string, filter Filter) ([]ListingView, error) {
	if filter == "" {
		filter = FilterAll
	}

	items := q.store.Available()
	filtered := make([]listing.Listing, 0, len(items))
	for _, l := range items {
		if venueID != "" && l.VenueID() != venueID {
			continue
		}
		if !matchesFilter(l, filter) {
			continue
		}
		filtered = append(filtered, l)
	}

	if venueID == "" {
		// Stable keeps insertion order for equal expiry instants.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ExpiresAt().Before(filtered[j].ExpiresAt())
		})
	}

	return toViews(filtered), nil
}

func (q *listingQueriesImpl) HotDeals(_ context.Context) ([]ListingView, error) {
	items := q.store.Available()
	boosted := make([]listing.Listing, 0, len(items))
	for _, l := range items {
		if l.IsBoosted() {
			boosted = append(boosted, l)
		}
	}
	return toViews(boosted), nil
}

func (q *listingQueriesImpl) GetByID(_ context.Context, id snowflake.ID) (*ListingView, error) {
	l, ok := q.store.Get(id)
	if !ok {
		return nil, ErrListingNotFound
	}
	view := toView(l)
	return &view, nil
}

func matchesFilter(l listing.Listing, filter Filter) bool {
	switch filter {
	case FilterUnder4:
		return l.DiscountedPrice().LessThan(priceCeiling)
	case FilterVegetarian:
		return l.HasTag("Vegetarian")
	case FilterGlutenFree:
		return l.HasTag("Gluten-Free")
	default:
		return true
	}
}

func toView(l listing.Listing) ListingView {
	return ListingView{
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

func toViews(items []listing.Listing) []ListingView {
	out := make([]ListingView, 0, len(items))
	for _, l := range items {
		out = append(out, toView(l))
	}
	return out
}
