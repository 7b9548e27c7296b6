package response

import "github.com/google/uuid"

type CreateOrderResponse struct {
	OK      bool      `json:"ok"`
	OrderID uuid.UUID `json:"orderId"`
}

// FailureResponse is the storefront's expected-business-outcome body: HTTP
// 200 with ok:false for things like an invalid coupon, HTTP 500 with ok:false
// for upstream failures.
type FailureResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func Failure(errMsg string) FailureResponse {
	return FailureResponse{OK: false, Error: errMsg}
}

func FailureMessage(msg string) FailureResponse {
	return FailureResponse{OK: false, Message: msg}
}
