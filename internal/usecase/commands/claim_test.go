//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"boilerbites/internal/infra/mailer"
	"boilerbites/internal/infra/memstore"
	"boilerbites/internal/pkg/clock"
	"boilerbites/internal/usecase/commands"
	"boilerbites/tests/common/builder"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	sent []mailer.ClaimEmail
	err  error
}

func (m *stubMailer) SendClaimConfirmation(_ context.Context, email mailer.ClaimEmail) error {
	m.sent = append(m.sent, email)
	return m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClaimFixture(t *testing.T) (*memstore.Store, *clock.MockClock, *stubMailer, commands.ClaimCommands) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC))
	store := memstore.New(clk, 3*time.Second)
	t.Cleanup(store.Close)
	m := &stubMailer{}
	return store, clk, m, commands.NewClaimCommands(store, m, discardLogger())
}

func TestClaimCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("claims and dispatches the confirmation email", func(t *testing.T) {
		store, clk, m, cmd := newClaimFixture(t)
		l := builder.NewListingBuilder(clk.Now()).Build()
		store.Add(l)

		result, err := cmd.Claim(ctx, l.ID(), "Jordan Lee", "jlee@purdue.edu")
		require.NoError(t, err)

		assert.True(t, result.EmailDelivered)
		assert.Empty(t, result.Advisory)
		assert.Equal(t, "Jordan Lee", result.Order.StudentName())

		require.Len(t, m.sent, 1)
		email := m.sent[0]
		assert.Equal(t, "Jordan Lee", email.StudentName)
		assert.Equal(t, "jlee@purdue.edu", email.StudentEmail)
		assert.Equal(t, "Hawaiian Classic Poke", email.ItemName)
		assert.Equal(t, "Zen", email.VenueName)
		assert.Equal(t, "6.48", email.Price)
		assert.Equal(t, result.Order.DisplayCode(), email.OrderCode)
	})

	t.Run("email failure downgrades to an advisory", func(t *testing.T) {
		store, clk, m, cmd := newClaimFixture(t)
		m.err = assert.AnError
		l := builder.NewListingBuilder(clk.Now()).Build()
		store.Add(l)

		result, err := cmd.Claim(ctx, l.ID(), "Jordan Lee", "jlee@purdue.edu")
		require.NoError(t, err)

		assert.False(t, result.EmailDelivered)
		assert.Equal(t, commands.EmailAdvisory, result.Advisory)

		// the claim itself stayed committed
		require.Len(t, store.Orders(), 1)
		assert.Equal(t, 1, store.KitchenStats().WasteDiverted)
	})

	t.Run("already claimed listing", func(t *testing.T) {
		store, clk, m, cmd := newClaimFixture(t)
		l := builder.NewListingBuilder(clk.Now()).Build()
		store.Add(l)

		_, err := cmd.Claim(ctx, l.ID(), "First Student", "first@purdue.edu")
		require.NoError(t, err)

		_, err = cmd.Claim(ctx, l.ID(), "Second Student", "second@purdue.edu")
		assert.ErrorIs(t, err, commands.ErrItemUnavailable)
		assert.Len(t, m.sent, 1)
	})

	t.Run("unknown listing", func(t *testing.T) {
		_, _, m, cmd := newClaimFixture(t)

		_, err := cmd.Claim(ctx, snowflake.ID(42), "Jordan Lee", "jlee@purdue.edu")
		assert.ErrorIs(t, err, commands.ErrItemUnavailable)
		assert.Empty(t, m.sent)
	})

	t.Run("bad student identity maps to validation", func(t *testing.T) {
		store, clk, m, cmd := newClaimFixture(t)
		l := builder.NewListingBuilder(clk.Now()).Build()
		store.Add(l)

		_, err := cmd.Claim(ctx, l.ID(), "Jordan Lee", "not-an-email")
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Empty(t, m.sent)
	})
}
