package components

import (
	"carhire-booking/internal/infra/readstore"
	"carhire-booking/internal/infra/repository"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/infra/uow"
	"carhire-booking/internal/usecase/commands"
	"carhire-booking/internal/usecase/queries"
	"carhire-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Query-side stores. Command-side reads go through the unit of work.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AgreementReadQueries)),
		),
		fx.Annotate(
			readstore.NewAgreementReadStore,
			fx.As(new(queries.AgreementReadStore)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.InspectionReadQueries)),
		),
		fx.Annotate(
			readstore.NewInspectionReadStore,
			fx.As(new(queries.InspectionReadStore)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Notifications are written after commit, outside the unit of work.
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
	),
)

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
