package response

type CreatePreferenceResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type WebhookResponse struct {
	Status string `json:"status"`
}

type WebhookHealthResponse struct {
	OK bool `json:"ok"`
}
