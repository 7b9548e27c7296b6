package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tienda-api/internal/domain/cart"
)

// Write-side snapshots prevent dependency on read-side query types

type NewOrder struct {
	ID              uuid.UUID
	ReceiptType     string
	Nombres         string
	DocType         string
	DocNumber       string
	RUC             string
	RazonSocial     string
	DireccionFiscal string
	Telefono        string
	Email           string
	Departamento    string
	Provincia       string
	Distrito        string
	Direccion       string
	Referencia      string
	Subtotal        float64
	Envio           float64
	Total           float64
	Carrier         string
	ShippingMode    string
	Gateway         string
	AppliedCoupon   string
	Status          string
}

type NewOrderItem struct {
	Slug  string
	Name  string
	Size  string
	Qty   int
	Price float64
}

type OrderSnapshot struct {
	ID           uuid.UUID
	Nombres      string
	Email        string
	Departamento string
	Provincia    string
	Distrito     string
	Direccion    string
	Referencia   string
	Subtotal     float64
	Envio        float64
	Total        float64
	Status       string
	EmailSent    bool
}

type OrderItemSnapshot struct {
	Name  string
	Size  string
	Qty   int
	Price float64
}

type PaymentStatusUpdate struct {
	PaymentID    string
	Status       string
	StatusDetail string
	Raw          json.RawMessage
	UpdatedAt    time.Time
}

type Preference struct {
	Items             []PreferenceItem
	Payer             PreferencePayer
	ShippingCost      float64
	ExternalReference string
	SuccessURL        string
	FailureURL        string
	PendingURL        string
	NotificationURL   string
}

type PreferenceItem struct {
	Title     string
	Quantity  int
	UnitPrice float64
}

type PreferencePayer struct {
	Name      string
	Email     string
	DocType   string
	DocNumber string
	Phone     string
}

// PaymentResource is the authoritative payment state re-fetched from the
// provider on every webhook delivery.
type PaymentResource struct {
	ID                string
	Status            string
	StatusDetail      string
	ExternalReference string
	Raw               json.RawMessage
}

type OrderStatusEmail struct {
	To           string
	OrderID      uuid.UUID
	Status       string // approved | pending
	Nombres      string
	Total        float64
	Departamento string
	Provincia    string
	Distrito     string
	Direccion    string
	Referencia   string
	Items        []OrderItemSnapshot
}

type OrderWriteRepository interface {
	CreateWithItems(ctx context.Context, tx pgx.Tx, order NewOrder, items []NewOrderItem) error
	SetPreferenceID(ctx context.Context, orderID uuid.UUID, preferenceID string) error
	UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, upd PaymentStatusUpdate) error
	// ClaimEmailSent atomically flips email_sent from false to true and
	// reports whether this caller won the claim.
	ClaimEmailSent(ctx context.Context, orderID uuid.UUID) (bool, error)
	ReleaseEmailSent(ctx context.Context, orderID uuid.UUID) error
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
	ListItems(ctx context.Context, orderID uuid.UUID) ([]OrderItemSnapshot, error)
}

type PaymentGateway interface {
	CreatePreference(ctx context.Context, pref Preference) (string, error)
	GetPayment(ctx context.Context, paymentID string) (*PaymentResource, error)
}

type Mailer interface {
	SendOrderStatus(ctx context.Context, email OrderStatusEmail) error
}

type CartStore interface {
	Get(ctx context.Context, id uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, c *cart.Cart) error
	Delete(ctx context.Context, id uuid.UUID) error
}
