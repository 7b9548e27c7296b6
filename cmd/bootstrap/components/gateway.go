package components

import (
	"tienda-api/internal/infra/mail"
	"tienda-api/internal/infra/mercadopago"
	"tienda-api/internal/pkg/config"
	"tienda-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Mailer)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *mercadopago.Client {
	return mercadopago.NewClient(cfg.MercadoPago)
}

func NewMailer(cfg config.Config) *mail.SendGridMailer {
	return mail.NewSendGridMailer(cfg.Mail)
}
