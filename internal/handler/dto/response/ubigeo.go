package response

import "tienda-api/internal/domain/ubigeo"

type UbigeoTreeResponse struct {
	OK   bool                `json:"ok"`
	Data []ubigeo.Department `json:"data"`
}
