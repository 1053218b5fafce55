package bootstrap

import (
	"log/slog"

	"boilerbites/internal/infra/mailer"
	"boilerbites/internal/pkg/config"
	"boilerbites/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Mailer)),
		),
	),
)

func NewMailer(cfg config.Config, logger *slog.Logger) *mailer.EmailJS {
	if !cfg.Mailer.Enabled() {
		logger.Info("mailer not configured; claim confirmations will be skipped")
	}
	return mailer.NewEmailJS(cfg.Mailer, logger)
}
