package bootstrap

import (
	"boilerbites/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	MailerModule,
	components.UseCaseModule,
	components.HandlerModule,
	SweeperModule,
)
