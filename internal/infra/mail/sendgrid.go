// Package mail sends transactional order emails through SendGrid.
package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"tienda-api/internal/pkg/config"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/commands"
)

type SendGridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewSendGridMailer(cfg config.MailConfig) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:   sgmail.NewEmail(cfg.FromName, cfg.FromAddress),
	}
}

func (m *SendGridMailer) SendOrderStatus(ctx context.Context, email commands.OrderStatusEmail) error {
	to := sgmail.NewEmail(email.Nombres, email.To)
	subject := subjectFor(email)
	plain, html := renderBody(email)

	message := sgmail.NewSingleEmail(m.from, subject, to, plain, html)
	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "failed to send order email")
	}
	if resp.StatusCode >= 300 {
		return errs.Newf("sendgrid rejected order email: status %d", resp.StatusCode)
	}
	return nil
}

func subjectFor(email commands.OrderStatusEmail) string {
	shortID := email.OrderID.String()[:8]
	if email.Status == commands.PaymentStatusApproved {
		return fmt.Sprintf("¡Pago confirmado! Pedido %s", shortID)
	}
	return fmt.Sprintf("Pago pendiente - Pedido %s", shortID)
}

func renderBody(email commands.OrderStatusEmail) (plain, html string) {
	var lines []string
	for _, it := range email.Items {
		lines = append(lines, fmt.Sprintf("- %s%s x%d (S/ %.2f)", it.Name, sizeSuffix(it.Size), it.Qty, it.Price))
	}

	intro := "Hemos recibido tu pago. Pronto prepararemos tu pedido."
	if email.Status != commands.PaymentStatusApproved {
		intro = "Tu pago está pendiente de confirmación. Te avisaremos cuando se acredite."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s,\n\n%s\n\n", email.Nombres, intro)
	fmt.Fprintf(&b, "Pedido: %s\n", email.OrderID)
	if len(lines) > 0 {
		fmt.Fprintf(&b, "\n%s\n", strings.Join(lines, "\n"))
	}
	fmt.Fprintf(&b, "\nTotal: S/ %.2f\n", email.Total)
	if email.Direccion != "" {
		fmt.Fprintf(&b, "\nEnvío a: %s, %s, %s, %s\n", email.Direccion, email.Distrito, email.Provincia, email.Departamento)
		if email.Referencia != "" {
			fmt.Fprintf(&b, "Referencia: %s\n", email.Referencia)
		}
	}
	plain = b.String()

	html = "<pre style=\"font-family:inherit\">" + htmlEscape(plain) + "</pre>"
	return plain, html
}

func sizeSuffix(size string) string {
	if size == "" {
		return ""
	}
	return " talla " + size
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
