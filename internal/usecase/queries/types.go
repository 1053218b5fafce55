package queries

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type ListingView struct {
	ID              snowflake.ID    `json:"id"`
	Name            string          `json:"name"`
	Source          string          `json:"source"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	Status          string          `json:"status"`
	DietaryTags     []string        `json:"dietary_tags"`
	EcoScore        int             `json:"eco_score"`
	IsBoosted       bool            `json:"is_boosted"`
	Quantity        int             `json:"quantity"`
	VenueID         string          `json:"venue_id"`
	VenueName       string          `json:"venue_name"`
	PreparedTime    time.Time       `json:"prepared_time"`
	ExpiresAt       time.Time       `json:"expires_at"`
}

type OrderView struct {
	ID           uuid.UUID `json:"id"`
	DisplayCode  string    `json:"display_code"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	ItemName     string    `json:"item_name"`
	VenueID      string    `json:"venue_id"`
	Timestamp    time.Time `json:"timestamp"`
}

type KitchenStatsView struct {
	RevenueRecovered decimal.Decimal `json:"revenue_recovered"`
	WasteDiverted    int             `json:"waste_diverted"`
	ActiveUsers      int             `json:"active_users"`
}

type StudentStatsView struct {
	Points   int             `json:"points"`
	CO2Saved decimal.Decimal `json:"co2_saved"`
}

// FlagsView is the snapshot of the transient notification flags the
// view layer polls for its toasts.
type FlagsView struct {
	PushNotification bool `json:"push_notification"`
	ClaimSuccess     bool `json:"claim_success"`
}
