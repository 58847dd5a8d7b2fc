package components

import (
	"carhire-booking/internal/handler"
	"carhire-booking/internal/handler/api"
	"carhire-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewVehicleHandler,
		api.NewRentalHandler,
		api.NewNotificationHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	bookings *api.BookingHandler,
	vehicles *api.VehicleHandler,
	rentals *api.RentalHandler,
	notifications *api.NotificationHandler,
	webhooks *api.WebhookHandler,
) handler.Handlers {
	return handler.Handlers{
		Bookings:      bookings,
		Vehicles:      vehicles,
		Rentals:       rentals,
		Notifications: notifications,
		Webhooks:      webhooks,
	}
}
