package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"tienda-api/internal/infra"
	"tienda-api/internal/pkg/clock"
	"tienda-api/internal/pkg/errs"
)

// Payment providers deliver webhooks at least once, out of order and
// possibly duplicated. Process is therefore replay-safe: the authoritative
// payment state is re-fetched on every delivery and the customer email is
// gated on an atomically claimed flag, not on "first time we see this event".

type Outcome string

const (
	OutcomeUpdated       Outcome = "updated"
	OutcomeIgnored       Outcome = "ignored"
	OutcomeNoPaymentID   Outcome = "no-payment-id"
	OutcomeNoExternalRef Outcome = "no-external-ref"
)

const (
	PaymentStatusApproved = "approved"
	PaymentStatusPending  = "pending"
)

var (
	// ErrPaymentFetch invites a provider retry of the whole notification.
	ErrPaymentFetch = errs.New("failed to fetch payment from provider")
	// ErrOrderUpdate invites a provider retry of the whole notification.
	ErrOrderUpdate = errs.New("failed to persist payment status")
)

type Notification struct {
	Type      string
	Action    string
	PaymentID string
}

// IsPayment reports whether the event concerns a payment at all. Anything
// else is acknowledged and dropped without side effects.
func (n Notification) IsPayment() bool {
	return n.Type == "payment" || strings.Contains(n.Action, "payment")
}

type WebhookCommands interface {
	Process(ctx context.Context, n Notification) (Outcome, error)
}

type webhookUseCaseImpl struct {
	gateway   PaymentGateway
	orderRepo OrderWriteRepository
	orders    OrderReadStore
	mailer    Mailer
	clock     clock.Clock
}

func NewWebhookUseCase(
	gateway PaymentGateway,
	orderRepo OrderWriteRepository,
	orders OrderReadStore,
	mailer Mailer,
	clk clock.Clock,
) WebhookCommands {
	return &webhookUseCaseImpl{
		gateway:   gateway,
		orderRepo: orderRepo,
		orders:    orders,
		mailer:    mailer,
		clock:     clk,
	}
}

func (u *webhookUseCaseImpl) Process(ctx context.Context, n Notification) (Outcome, error) {
	if !n.IsPayment() {
		return OutcomeIgnored, nil
	}
	if n.PaymentID == "" {
		return OutcomeNoPaymentID, nil
	}

	payment, err := u.gateway.GetPayment(ctx, n.PaymentID)
	if err != nil {
		return "", errs.Mark(err, ErrPaymentFetch)
	}
	if payment.ExternalReference == "" {
		return OutcomeNoExternalRef, nil
	}
	orderID, err := uuid.Parse(payment.ExternalReference)
	if err != nil {
		slog.Warn("webhook external reference is not an order id",
			"external_reference", payment.ExternalReference, "payment_id", payment.ID)
		return OutcomeNoExternalRef, nil
	}

	// The update is keyed by id directly, so a failed lookup here only
	// disables the email step; the payment-state update still runs.
	order, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		slog.Warn("order lookup failed before payment update",
			"order_id", orderID, "error", err.Error())
		order = nil
	}

	upd := PaymentStatusUpdate{
		PaymentID:    payment.ID,
		Status:       payment.Status,
		StatusDetail: payment.StatusDetail,
		Raw:          payment.Raw,
		UpdatedAt:    u.clock.Now(),
	}
	if err := u.orderRepo.UpdatePaymentStatus(ctx, orderID, upd); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// No row for this reference. A retry can never succeed, so
			// acknowledge instead of asking the provider to redeliver.
			slog.Warn("payment update matched no order",
				"order_id", orderID, "payment_id", payment.ID)
			return OutcomeUpdated, nil
		}
		return "", errs.Mark(err, ErrOrderUpdate)
	}

	u.maybeSendEmail(ctx, order, payment)

	return OutcomeUpdated, nil
}

// maybeSendEmail sends the one-time confirmation/pending email. Failures
// here are logged only: the payment-state update has already succeeded and
// must not be retried because the mail step failed.
func (u *webhookUseCaseImpl) maybeSendEmail(ctx context.Context, order *OrderSnapshot, payment *PaymentResource) {
	if order == nil || order.EmailSent {
		return
	}

	var shownStatus string
	switch payment.Status {
	case PaymentStatusApproved:
		shownStatus = PaymentStatusApproved
	case PaymentStatusPending:
		shownStatus = PaymentStatusPending
	default:
		return
	}

	claimed, err := u.orderRepo.ClaimEmailSent(ctx, order.ID)
	if err != nil {
		slog.Error("failed to claim email flag", "order_id", order.ID, "error", err.Error())
		return
	}
	if !claimed {
		// another delivery got there first
		return
	}

	items, err := u.orders.ListItems(ctx, order.ID)
	if err != nil {
		slog.Error("failed to load order items for email", "order_id", order.ID, "error", err.Error())
		items = nil
	}

	mail := OrderStatusEmail{
		To:           order.Email,
		OrderID:      order.ID,
		Status:       shownStatus,
		Nombres:      order.Nombres,
		Total:        order.Total,
		Departamento: order.Departamento,
		Provincia:    order.Provincia,
		Distrito:     order.Distrito,
		Direccion:    order.Direccion,
		Referencia:   order.Referencia,
		Items:        items,
	}
	if err := u.mailer.SendOrderStatus(ctx, mail); err != nil {
		slog.Error("failed to send order status email", "order_id", order.ID, "error", err.Error())
		// release so a later delivery may retry the mail
		if relErr := u.orderRepo.ReleaseEmailSent(ctx, order.ID); relErr != nil {
			slog.Error("failed to release email flag", "order_id", order.ID, "error", relErr.Error())
		}
	}
}
