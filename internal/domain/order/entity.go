package order

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyStudentName = errors.New("student name cannot be empty")
	ErrInvalidEmail     = errors.New("student email is invalid")
	ErrEmptyListingName = errors.New("claimed item name cannot be empty")
)

// Order is the append-only record of a successful claim. Orders are
// never mutated or deleted after creation.
type Order struct {
	id           uuid.UUID
	displayCode  string
	studentName  string
	studentEmail string
	itemName     string
	venueID      string
	timestamp    time.Time
}

// NewOrder records a claim for the given student identity. The display
// code is the short human-facing identifier used on pickup and in the
// confirmation email.
func NewOrder(studentName, studentEmail, itemName, venueID string, now time.Time) (*Order, error) {
	studentName = strings.TrimSpace(studentName)
	if studentName == "" {
		return nil, ErrEmptyStudentName
	}
	studentEmail = strings.TrimSpace(studentEmail)
	if !strings.Contains(studentEmail, "@") {
		return nil, ErrInvalidEmail
	}
	if itemName == "" {
		return nil, ErrEmptyListingName
	}

	return &Order{
		id:           uuid.New(),
		displayCode:  newDisplayCode(),
		studentName:  studentName,
		studentEmail: studentEmail,
		itemName:     itemName,
		venueID:      venueID,
		timestamp:    now,
	}, nil
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) DisplayCode() string  { return o.displayCode }
func (o *Order) StudentName() string  { return o.studentName }
func (o *Order) StudentEmail() string { return o.studentEmail }
func (o *Order) ItemName() string     { return o.itemName }
func (o *Order) VenueID() string      { return o.venueID }
func (o *Order) Timestamp() time.Time { return o.timestamp }

func newDisplayCode() string {
	return fmt.Sprintf("#BB-%d", rand.Intn(1000))
}
