package commands

import (
	"context"

	"boilerbites/internal/domain/listing"
	"boilerbites/internal/domain/order"
	"boilerbites/internal/infra/mailer"

	"github.com/bwmarrin/snowflake"
)

// Registry is the write surface of the in-memory store consumed by the
// command layer.
type Registry interface {
	AddAbandonment(items []*listing.Listing)
	Add(l *listing.Listing)
	Claim(id snowflake.ID, studentName, studentEmail string) (*order.Order, error)
	ToggleBoost(id snowflake.ID) bool
	Update(id snowflake.ID, u listing.Update) bool
	Remove(id snowflake.ID) bool
	Get(id snowflake.ID) (listing.Listing, bool)
	SelectVenue(venueID string)
	SelectedVenue() string
}

// Mailer dispatches the claim confirmation side channel. Failures must
// surface as advisories only; the claim has already committed.
type Mailer interface {
	SendClaimConfirmation(ctx context.Context, email mailer.ClaimEmail) error
}
