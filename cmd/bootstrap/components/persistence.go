package components

import (
	"hotel-booking-api/internal/infra/blob"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/infra/qr"
	"hotel-booking-api/internal/infra/readstore"
	"hotel-booking-api/internal/infra/uow"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserStore)),
		),
		qr.NewEncoder,
		func(cfg config.Config) (commands.BlobStore, error) {
			return blob.NewFSStore(cfg.QR)
		},
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
