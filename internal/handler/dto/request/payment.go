package request

import "encoding/json"

type PreferenceItem struct {
	Title     string  `json:"title" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

type PreferenceBuyer struct {
	FirstName string `json:"firstName"`
	DocType   string `json:"docType"`
	DocNumber string `json:"docNumber"`
	Phone     string `json:"phone"`
}

type PreferenceShipping struct {
	Cost         float64 `json:"cost"`
	Carrier      string  `json:"carrier"`
	Mode         string  `json:"mode"`
	Departamento string  `json:"departamento"`
	Provincia    string  `json:"provincia"`
	Distrito     string  `json:"distrito"`
	Direccion    string  `json:"direccion"`
	Referencia   string  `json:"referencia"`
}

type CreatePreferenceRequest struct {
	Items             []PreferenceItem   `json:"items" binding:"required,min=1,dive"`
	ExternalReference string             `json:"external_reference" binding:"required"`
	Email             string             `json:"email" binding:"required,email"`
	Buyer             PreferenceBuyer    `json:"buyer"`
	Shipping          PreferenceShipping `json:"shipping"`
}

// WebhookNotification is Mercado Pago's callback body. data.id arrives as a
// string or a number depending on the notification channel.
type WebhookNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}
