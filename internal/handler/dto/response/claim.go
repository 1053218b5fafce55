package response

import (
	"time"

	"boilerbites/internal/usecase/commands"
	"boilerbites/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID           uuid.UUID `json:"id"`
	DisplayCode  string    `json:"displayCode"`
	StudentName  string    `json:"studentName"`
	StudentEmail string    `json:"studentEmail"`
	ItemName     string    `json:"itemName"`
	VenueID      string    `json:"venueId"`
	Timestamp    time.Time `json:"timestamp"`
}

type ClaimResponse struct {
	Success        bool          `json:"success"`
	Order          OrderResponse `json:"order"`
	EmailDelivered bool          `json:"emailDelivered"`
	Advisory       string        `json:"advisory,omitempty"`
}

func FromClaimResult(result *commands.ClaimResult) ClaimResponse {
	o := result.Order
	return ClaimResponse{
		Success: true,
		Order: OrderResponse{
			ID:           o.ID(),
			DisplayCode:  o.DisplayCode(),
			StudentName:  o.StudentName(),
			StudentEmail: o.StudentEmail(),
			ItemName:     o.ItemName(),
			VenueID:      o.VenueID(),
			Timestamp:    o.Timestamp(),
		},
		EmailDelivered: result.EmailDelivered,
		Advisory:       result.Advisory,
	}
}

func FromOrderView(v queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:           v.ID,
		DisplayCode:  v.DisplayCode,
		StudentName:  v.StudentName,
		StudentEmail: v.StudentEmail,
		ItemName:     v.ItemName,
		VenueID:      v.VenueID,
		Timestamp:    v.Timestamp,
	}
}

func FromOrderViews(views []queries.OrderView) []OrderResponse {
	out := make([]OrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromOrderView(v))
	}
	return out
}
