// Package mercadopago is a thin typed client for the two Checkout Pro calls
// the storefront needs: creating a payment preference and re-fetching a
// payment after a webhook notification.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"tienda-api/internal/pkg/config"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/commands"
)

type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewClient(cfg config.MercadoPagoConfig) *Client {
	return &Client{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

type preferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
}

type preferencePayer struct {
	Name           string           `json:"name,omitempty"`
	Email          string           `json:"email,omitempty"`
	Phone          *preferencePhone `json:"phone,omitempty"`
	Identification *identification  `json:"identification,omitempty"`
}

type preferencePhone struct {
	Number string `json:"number"`
}

type identification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type backURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type shipments struct {
	Cost float64 `json:"cost"`
	Mode string  `json:"mode"`
}

type preferenceRequest struct {
	Items             []preferenceItem `json:"items"`
	Payer             preferencePayer  `json:"payer"`
	BackURLs          backURLs         `json:"back_urls"`
	AutoReturn        string           `json:"auto_return"`
	NotificationURL   string           `json:"notification_url"`
	ExternalReference string           `json:"external_reference"`
	Shipments         *shipments       `json:"shipments,omitempty"`
	StatementDescr    string           `json:"statement_descriptor,omitempty"`
}

type preferenceResponse struct {
	ID string `json:"id"`
}

func (c *Client) CreatePreference(ctx context.Context, pref commands.Preference) (string, error) {
	items := make([]preferenceItem, 0, len(pref.Items))
	for _, it := range pref.Items {
		items = append(items, preferenceItem{
			Title:      it.Title,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			CurrencyID: "PEN",
		})
	}

	body := preferenceRequest{
		Items: items,
		Payer: preferencePayer{
			Name:  pref.Payer.Name,
			Email: pref.Payer.Email,
		},
		BackURLs: backURLs{
			Success: pref.SuccessURL,
			Failure: pref.FailureURL,
			Pending: pref.PendingURL,
		},
		AutoReturn:        "approved",
		NotificationURL:   pref.NotificationURL,
		ExternalReference: pref.ExternalReference,
	}
	if pref.Payer.Phone != "" {
		body.Payer.Phone = &preferencePhone{Number: pref.Payer.Phone}
	}
	if pref.Payer.DocType != "" && pref.Payer.DocNumber != "" {
		body.Payer.Identification = &identification{Type: pref.Payer.DocType, Number: pref.Payer.DocNumber}
	}
	if pref.ShippingCost > 0 {
		body.Shipments = &shipments{Cost: pref.ShippingCost, Mode: "not_specified"}
	}

	var resp preferenceResponse
	if err := c.post(ctx, "/checkout/preferences", body, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", errs.New("preference response missing id")
	}
	return resp.ID, nil
}

type paymentResponse struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	StatusDetail      string      `json:"status_detail"`
	ExternalReference string      `json:"external_reference"`
}

// GetPayment re-fetches a payment so webhook handling never trusts the
// notification body for payment state.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*commands.PaymentResource, error) {
	raw, err := c.get(ctx, "/v1/payments/"+paymentID)
	if err != nil {
		return nil, err
	}

	var resp paymentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errs.Wrap(err, "failed to decode payment response")
	}

	return &commands.PaymentResource{
		ID:                resp.ID.String(),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		ExternalReference: resp.ExternalReference,
		Raw:               raw,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Wrap(err, "failed to read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(path, resp.StatusCode, raw)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Wrap(err, "failed to decode response body")
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError(path, resp.StatusCode, raw)
	}
	return raw, nil
}

func apiError(path string, status int, body []byte) error {
	msg := string(body)
	if len(msg) > 512 {
		msg = msg[:512]
	}
	return errs.Newf("mercadopago %s: status %d: %s", path, status, msg)
}
