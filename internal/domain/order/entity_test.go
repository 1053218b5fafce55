//go:build unit

package order_test

import (
	"testing"
	"time"

	"boilerbites/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	now := time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ord, err := order.NewOrder("Jordan Lee", "jlee@purdue.edu", "Hawaiian Classic Poke", "zen", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, ord.ID())
		assert.Regexp(t, `^#BB-\d{1,3}$`, ord.DisplayCode())
		assert.Equal(t, "Jordan Lee", ord.StudentName())
		assert.Equal(t, "jlee@purdue.edu", ord.StudentEmail())
		assert.Equal(t, "Hawaiian Classic Poke", ord.ItemName())
		assert.Equal(t, "zen", ord.VenueID())
		assert.Equal(t, now, ord.Timestamp())
	})

	t.Run("trims the student identity", func(t *testing.T) {
		ord, err := order.NewOrder("  Jordan Lee  ", " jlee@purdue.edu ", "Poke", "zen", now)
		require.NoError(t, err)
		assert.Equal(t, "Jordan Lee", ord.StudentName())
		assert.Equal(t, "jlee@purdue.edu", ord.StudentEmail())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name         string
			studentName  string
			studentEmail string
			itemName     string
			errIs        error
		}{
			{"blank student name", "   ", "jlee@purdue.edu", "Poke", order.ErrEmptyStudentName},
			{"email without at sign", "Jordan Lee", "not-an-email", "Poke", order.ErrInvalidEmail},
			{"empty item name", "Jordan Lee", "jlee@purdue.edu", "", order.ErrEmptyListingName},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(tc.studentName, tc.studentEmail, tc.itemName, "zen", now)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
