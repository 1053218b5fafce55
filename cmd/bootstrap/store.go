package bootstrap

import (
	"context"

	"boilerbites/internal/domain/listing"
	"boilerbites/internal/infra/memstore"
	"boilerbites/internal/infra/sweeper"
	"boilerbites/internal/pkg/clock"
	"boilerbites/internal/pkg/config"
	"boilerbites/internal/usecase/commands"
	"boilerbites/internal/usecase/queries"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		NewIDNode,
		listing.NewFactory,
		fx.Annotate(
			NewStore,
			fx.As(new(commands.Registry)),
			fx.As(new(queries.ListingReadStore)),
			fx.As(new(queries.StatsReadStore)),
			fx.As(new(queries.VenueReadStore)),
			fx.As(new(sweeper.Registry)),
		),
	),
)

func NewIDNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}

// NewStore builds the process-wide in-memory registry. State lives for
// the process lifetime only; restarts reset it to the seed.
func NewStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, ids *snowflake.Node) *memstore.Store {
	store := memstore.New(clk, cfg.Store.FlagWindow)
	if cfg.Store.SeedDemoData {
		memstore.SeedDemo(store, clk, ids)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			store.Close()
			return nil
		},
	})

	return store
}
