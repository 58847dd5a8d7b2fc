package bootstrap

import (
	"carhire-booking/internal/infra/mailer"
	"carhire-booking/internal/pkg/config"
	"carhire-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Mailer)),
		),
	),
)

func NewMailer(cfg config.Config) mailer.Mailer {
	return mailer.New(cfg.Mail)
}
