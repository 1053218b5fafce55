package queries

import (
	"context"

	"boilerbites/internal/domain/order"
	"boilerbites/internal/domain/stats"
)

// StatsReadStore exposes the aggregates, the order log, and the
// transient flags for the read side.
type StatsReadStore interface {
	KitchenStats() stats.KitchenStats
	StudentStats() stats.StudentStats
	Orders() []order.Order
	TotalWasteSaved() int
	PushNotificationActive() bool
	ClaimSuccessActive() bool
}

type StatsQueries interface {
	Kitchen(ctx context.Context) KitchenStatsView
	Student(ctx context.Context) StudentStatsView
	Orders(ctx context.Context) []OrderView
	TotalWasteSaved(ctx context.Context) int
	Flags(ctx context.Context) FlagsView
}

type statsQueriesImpl struct {
	store StatsReadStore
}

func NewStatsQueries(store StatsReadStore) StatsQueries {
	return &statsQueriesImpl{store: store}
}

func (q *statsQueriesImpl) Kitchen(_ context.Context) KitchenStatsView {
	s := q.store.KitchenStats()
	return KitchenStatsView{
		RevenueRecovered: s.RevenueRecovered,
		WasteDiverted:    s.WasteDiverted,
		ActiveUsers:      s.ActiveUsers,
	}
}

func (q *statsQueriesImpl) Student(_ context.Context) StudentStatsView {
	s := q.store.StudentStats()
	return StudentStatsView{
		Points:   s.Points,
		CO2Saved: s.CO2Saved,
	}
}

func (q *statsQueriesImpl) Orders(_ context.Context) []OrderView {
	orders := q.store.Orders()
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderView{
			ID:           o.ID(),
			DisplayCode:  o.DisplayCode(),
			StudentName:  o.StudentName(),
			StudentEmail: o.StudentEmail(),
			ItemName:     o.ItemName(),
			VenueID:      o.VenueID(),
			Timestamp:    o.Timestamp(),
		})
	}
	return out
}

func (q *statsQueriesImpl) TotalWasteSaved(_ context.Context) int {
	return q.store.TotalWasteSaved()
}

func (q *statsQueriesImpl) Flags(_ context.Context) FlagsView {
	return FlagsView{
		PushNotification: q.store.PushNotificationActive(),
		ClaimSuccess:     q.store.ClaimSuccessActive(),
	}
}
