package components

import (
	"carhire-booking/internal/pkg/clock"
	"carhire-booking/internal/pkg/config"
	"carhire-booking/internal/usecase"
	"carhire-booking/internal/usecase/commands"
	"carhire-booking/internal/usecase/queries"
	"carhire-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewEmitter,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAvailabilityUseCase,
		newBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewCoordinatorUseCase,
		commands.NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newBookingUseCase(uow shared.UnitOfWork, emitter *commands.Emitter, clk clock.Clock, cfg config.Config) commands.BookingCommands {
	return commands.NewBookingUseCase(uow, emitter, clk, cfg.Booking.IdempotencyTTL)
}
