package response

import (
	"boilerbites/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type KitchenStatsResponse struct {
	RevenueRecovered decimal.Decimal `json:"revenueRecovered"`
	WasteDiverted    int             `json:"wasteDiverted"`
	ActiveUsers      int             `json:"activeUsers"`
}

type StudentStatsResponse struct {
	Points   int             `json:"points"`
	CO2Saved decimal.Decimal `json:"co2Saved"`
}

type FlagsResponse struct {
	PushNotification bool `json:"pushNotification"`
	ClaimSuccess     bool `json:"claimSuccess"`
}

func FromKitchenStats(v queries.KitchenStatsView) KitchenStatsResponse {
	return KitchenStatsResponse{
		RevenueRecovered: v.RevenueRecovered,
		WasteDiverted:    v.WasteDiverted,
		ActiveUsers:      v.ActiveUsers,
	}
}

func FromStudentStats(v queries.StudentStatsView) StudentStatsResponse {
	return StudentStatsResponse{
		Points:   v.Points,
		CO2Saved: v.CO2Saved,
	}
}

func FromFlags(v queries.FlagsView) FlagsResponse {
	return FlagsResponse{
		PushNotification: v.PushNotification,
		ClaimSuccess:     v.ClaimSuccess,
	}
}
