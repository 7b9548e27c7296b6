package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"

	reqdto "tienda-api/internal/handler/dto/request"
	"tienda-api/internal/pkg/config"
	"tienda-api/internal/pkg/errs"
)

var (
	ErrPaymentProvider    = errs.New("payment provider request failed")
	ErrInvalidOrderRef    = errs.New("external reference is not a valid order id")
	ErrPreferenceNotSaved = errs.New("failed to persist preference id")
)

type CreatePreferenceResult struct {
	PreferenceID string
}

type PaymentCommands interface {
	CreatePreference(ctx context.Context, req reqdto.CreatePreferenceRequest) (*CreatePreferenceResult, error)
}

type paymentUseCaseImpl struct {
	gateway   PaymentGateway
	orderRepo OrderWriteRepository
	site      config.SiteConfig
}

func NewPaymentUseCase(gateway PaymentGateway, orderRepo OrderWriteRepository, site config.SiteConfig) PaymentCommands {
	return &paymentUseCaseImpl{
		gateway:   gateway,
		orderRepo: orderRepo,
		site:      site,
	}
}

// CreatePreference builds a hosted-checkout preference (redirect and webhook
// URLs derived from the site base URL) and persists the returned preference
// id onto the order named by external_reference.
func (u *paymentUseCaseImpl) CreatePreference(ctx context.Context, req reqdto.CreatePreferenceRequest) (*CreatePreferenceResult, error) {
	orderID, err := uuid.Parse(req.ExternalReference)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOrderRef)
	}

	base := strings.TrimSuffix(u.site.BaseURL, "/")

	pref := Preference{
		ExternalReference: req.ExternalReference,
		ShippingCost:      req.Shipping.Cost,
		SuccessURL:        base + "/checkout/success",
		FailureURL:        base + "/checkout/failure",
		PendingURL:        base + "/checkout/pending",
		NotificationURL:   base + "/api/payments/webhook",
		Payer: PreferencePayer{
			Name:      req.Buyer.FirstName,
			Email:     req.Email,
			DocType:   req.Buyer.DocType,
			DocNumber: req.Buyer.DocNumber,
			Phone:     req.Buyer.Phone,
		},
	}
	for _, item := range req.Items {
		pref.Items = append(pref.Items, PreferenceItem{
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	prefID, err := u.gateway.CreatePreference(ctx, pref)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentProvider)
	}

	if err := u.orderRepo.SetPreferenceID(ctx, orderID, prefID); err != nil {
		return nil, errs.Mark(err, ErrPreferenceNotSaved)
	}

	return &CreatePreferenceResult{PreferenceID: prefID}, nil
}
