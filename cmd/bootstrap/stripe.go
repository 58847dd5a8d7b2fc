package bootstrap

import (
	"carhire-booking/internal/handler/api"
	"carhire-booking/internal/infra/stripe"
	"carhire-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		fx.Annotate(
			NewStripeVerifier,
			fx.As(new(api.PaymentEventDecoder)),
		),
	),
)

func NewStripeVerifier(cfg config.Config) *stripe.Verifier {
	return stripe.NewVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.WebhookTolerance)
}
