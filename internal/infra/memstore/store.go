package memstore

import (
	"sync"
	"time"

	"boilerbites/internal/domain/listing"
	"boilerbites/internal/domain/order"
	"boilerbites/internal/domain/stats"
	"boilerbites/internal/pkg/clock"
	"boilerbites/internal/pkg/errs"
	"boilerbites/internal/pkg/transient"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Store is the single in-memory registry for listings, aggregates, the
// order log, and the kitchen's selected-venue context. All state lives
// for the process lifetime only; a restart resets everything.
//
// One RWMutex guards the whole registry. Claim's status gate and status
// write happen under the same write lock, which is what makes "at most
// one successful claim per listing" hold under concurrent callers.
type Store struct {
	mu    sync.RWMutex
	clock clock.Clock

	listings []*listing.Listing // insertion order, the stable sort tiebreak
	index    map[snowflake.ID]*listing.Listing

	orders  []*order.Order
	kitchen stats.KitchenStats
	student stats.StudentStats

	selectedVenue string

	pushNotification *transient.Flag
	claimSuccess     *transient.Flag
}

func New(clk clock.Clock, flagWindow time.Duration) *Store {
	return &Store{
		clock:            clk,
		index:            make(map[snowflake.ID]*listing.Listing),
		kitchen:          stats.KitchenStats{RevenueRecovered: decimal.Zero},
		student:          stats.StudentStats{CO2Saved: decimal.Zero},
		pushNotification: transient.NewFlag(flagWindow),
		claimSuccess:     transient.NewFlag(flagWindow),
	}
}

// SeedStats initializes the aggregate baselines shown at startup.
func (s *Store) SeedStats(kitchen stats.KitchenStats, student stats.StudentStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kitchen = kitchen
	s.student = student
}

// AddAbandonment registers freshly minted ready-now listings and raises
// the pushed-to-feed flag for its display window.
func (s *Store) AddAbandonment(items []*listing.Listing) {
	s.mu.Lock()
	for _, l := range items {
		s.listings = append(s.listings, l)
		s.index[l.ID()] = l
	}
	s.mu.Unlock()

	s.pushNotification.Raise()
}

// Add registers a listing without raising the feed flag. Batch surplus
// and seed data come through here.
func (s *Store) Add(l *listing.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = append(s.listings, l)
	s.index[l.ID()] = l
}

// Claim is the exclusive claim transaction. The lookup, status gate,
// order append, status write, and aggregate updates commit as one
// critical section; a concurrent claim or sweep on the same listing
// observes the already-changed status and fails or no-ops.
func (s *Store) Claim(id snowflake.ID, studentName, studentEmail string) (*order.Order, error) {
	s.mu.Lock()
	l, ok := s.index[id]
	if !ok || l.Status() != listing.StatusAvailable {
		s.mu.Unlock()
		return nil, errs.ErrItemUnavailable
	}

	ord, err := order.NewOrder(studentName, studentEmail, l.Name(), l.VenueID(), s.clock.Now())
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	if err := l.Claim(); err != nil {
		s.mu.Unlock()
		return nil, errs.ErrItemUnavailable
	}
	s.orders = append(s.orders, ord)
	s.kitchen.RecordClaim(l.DiscountedPrice())
	s.student.RecordClaim(l.EcoScore())
	s.mu.Unlock()

	s.claimSuccess.Raise()
	return ord, nil
}

// ToggleBoost flips hot-deal placement; misses are silent no-ops.
func (s *Store) ToggleBoost(id snowflake.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.index[id]
	if !ok {
		return false
	}
	l.ToggleBoost()
	return true
}

// Update merges partial fields into a listing; misses are silent no-ops.
func (s *Store) Update(id snowflake.ID, u listing.Update) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.index[id]
	if !ok {
		return false
	}
	l.Apply(u)
	return true
}

// Remove deletes a listing unconditionally, regardless of status.
// Kitchens can pull a listing at any point.
func (s *Store) Remove(id snowflake.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, l := range s.listings {
		if l.ID() == id {
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			break
		}
	}
	return true
}

// Sweep transitions every Available listing past its expiry to Expired
// and reports how many changed. Idempotent: already-expired listings
// are skipped, so overlapping sweeps are harmless.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	expired := 0
	for _, l := range s.listings {
		if l.Status() == listing.StatusAvailable && l.HasExpired(now) {
			l.Expire()
			expired++
		}
	}
	return expired
}

// Available returns value snapshots of every claimable listing at the
// current instant, in insertion order. Recomputed against the clock on
// every call; availability is time-dependent even without writes.
func (s *Store) Available() []listing.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.clock.Now()
	out := make([]listing.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if l.AvailableAt(now) {
			out = append(out, *l)
		}
	}
	return out
}

// All returns value snapshots of every listing regardless of status.
func (s *Store) All() []listing.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]listing.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		out = append(out, *l)
	}
	return out
}

// Get returns a snapshot of one listing.
func (s *Store) Get(id snowflake.ID) (listing.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.index[id]
	if !ok {
		return listing.Listing{}, false
	}
	return *l, true
}

// Orders returns the append-only claim log, oldest first.
func (s *Store) Orders() []order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *o)
	}
	return out
}

func (s *Store) KitchenStats() stats.KitchenStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kitchen
}

func (s *Store) StudentStats() stats.StudentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.student
}

// TotalWasteSaved counts claimed listings across all venues.
func (s *Store) TotalWasteSaved() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, l := range s.listings {
		if l.Status() == listing.StatusClaimed {
			n++
		}
	}
	return n
}

// SelectVenue sets the kitchen dashboard's venue context; listing
// creation without an explicit venue falls back to it.
func (s *Store) SelectVenue(venueID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedVenue = venueID
}

func (s *Store) SelectedVenue() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedVenue
}

func (s *Store) PushNotificationActive() bool {
	return s.pushNotification.Active()
}

func (s *Store) ClaimSuccessActive() bool {
	return s.claimSuccess.Active()
}

// Close stops pending flag timers.
func (s *Store) Close() {
	s.pushNotification.Stop()
	s.claimSuccess.Stop()
}
