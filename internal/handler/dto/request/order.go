package request

type CartLine struct {
	Slug  string  `json:"slug" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Size  string  `json:"size"`
	Qty   int     `json:"qty" binding:"required,gt=0"`
	Price float64 `json:"price" binding:"gte=0"`
}

type CreateOrderRequest struct {
	ReceiptType     string     `json:"receiptType"`
	Nombres         string     `json:"nombres" binding:"required"`
	DocType         string     `json:"docType"`
	DocNumber       string     `json:"docNumber"`
	RUC             string     `json:"ruc"`
	RazonSocial     string     `json:"razonSocial"`
	DireccionFiscal string     `json:"direccionFiscal"`
	Telefono        string     `json:"telefono"`
	Email           string     `json:"email" binding:"required,email"`
	Departamento    string     `json:"departamento"`
	Provincia       string     `json:"provincia"`
	Distrito        string     `json:"distrito"`
	Direccion       string     `json:"direccion"`
	Referencia      string     `json:"referencia"`
	Subtotal        float64    `json:"subtotal" binding:"gte=0"`
	Envio           float64    `json:"envio" binding:"gte=0"`
	Total           float64    `json:"total" binding:"gte=0"`
	Carrier         string     `json:"carrier"`
	ShippingMode    string     `json:"shippingMode"`
	Gateway         string     `json:"gateway"`
	AppliedCoupon   string     `json:"appliedCoupon"`
	Cart            []CartLine `json:"cart" binding:"required,min=1,dive"`
}
