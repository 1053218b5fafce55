package commands

import (
	"context"
	"errors"
	"log/slog"

	"boilerbites/internal/domain/order"
	"boilerbites/internal/infra/mailer"
	"boilerbites/internal/pkg/errs"

	"github.com/bwmarrin/snowflake"
)

var ErrItemUnavailable = errs.New("item not available")

// EmailAdvisory is the non-fatal message surfaced when the confirmation
// email could not be sent for an already-committed claim.
const EmailAdvisory = "Could not send email, but reservation saved."

type ClaimResult struct {
	Order          order.Order
	EmailDelivered bool
	Advisory       string
}

type ClaimCommands interface {
	Claim(ctx context.Context, id snowflake.ID, studentName, studentEmail string) (*ClaimResult, error)
}

type claimCommandsImpl struct {
	registry Registry
	mailer   Mailer
	logger   *slog.Logger
}

func NewClaimCommands(registry Registry, m Mailer, logger *slog.Logger) ClaimCommands {
	return &claimCommandsImpl{
		registry: registry,
		mailer:   m,
		logger:   logger,
	}
}

// Claim runs the exclusive claim transaction and then attempts the
// confirmation email. The email is a compensating notification, not a
// second commit phase: its failure is captured as an advisory and never
// rolls back the claim.
func (c *claimCommandsImpl) Claim(ctx context.Context, id snowflake.ID, studentName, studentEmail string) (*ClaimResult, error) {
	claimed, ok := c.registry.Get(id)
	if !ok {
		return nil, ErrItemUnavailable
	}

	ord, err := c.registry.Claim(id, studentName, studentEmail)
	if err != nil {
		if errors.Is(err, errs.ErrItemUnavailable) {
			return nil, ErrItemUnavailable
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	result := &ClaimResult{Order: *ord, EmailDelivered: true}

	email := mailer.ClaimEmail{
		StudentName:  ord.StudentName(),
		StudentEmail: ord.StudentEmail(),
		ItemName:     claimed.Name(),
		VenueName:    claimed.VenueName(),
		Price:        claimed.DiscountedPrice().StringFixed(2),
		OrderCode:    ord.DisplayCode(),
	}
	if sendErr := c.mailer.SendClaimConfirmation(ctx, email); sendErr != nil {
		c.logger.Warn("claim confirmation email failed",
			"order", ord.DisplayCode(), "error", sendErr)
		result.EmailDelivered = false
		result.Advisory = EmailAdvisory
	}

	return result, nil
}
