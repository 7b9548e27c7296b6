//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tienda-api/internal/handler/api"
	resdto "tienda-api/internal/handler/dto/response"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/commands"
	"tienda-api/tests/common/httptest"
	commandsmock "tienda-api/tests/mock/commands"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebhookCommands
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockCommands)

	s.router.GET("/payments/webhook", s.handler.Health)
	s.router.POST("/payments/webhook", s.handler.Receive)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/webhook", nil)

	var resp resdto.WebhookHealthResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.True(resp.OK)
}

func (s *WebhookHandlerTestSuite) TestReceive() {
	url := "/payments/webhook"

	body := map[string]any{
		"type":   "payment",
		"action": "payment.updated",
		"data":   map[string]any{"id": 12345},
	}

	s.Run("updated: 200 with status updated", func() {
		s.mockCommands.EXPECT().Process(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, n commands.Notification) (commands.Outcome, error) {
				s.Equal("payment", n.Type)
				s.Equal("12345", n.PaymentID)
				return commands.OutcomeUpdated, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var resp resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("updated", resp.Status)
	})

	s.Run("string data.id is accepted", func() {
		s.mockCommands.EXPECT().Process(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, n commands.Notification) (commands.Outcome, error) {
				s.Equal("12345", n.PaymentID)
				return commands.OutcomeUpdated, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"type": "payment",
			"data": map[string]any{"id": "12345"},
		})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("ignored: 200 with status ignored", func() {
		s.mockCommands.EXPECT().Process(gomock.Any(), gomock.Any()).
			Return(commands.OutcomeIgnored, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"type": "merchant_order",
		})

		var resp resdto.WebhookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("ignored", resp.Status)
	})

	s.Run("provider fetch failure: 500 with status mp-error", func() {
		s.mockCommands.EXPECT().Process(gomock.Any(), gomock.Any()).
			Return(commands.Outcome(""), errs.Mark(errs.New("status 404"), commands.ErrPaymentFetch))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		s.Equal(http.StatusInternalServerError, rec.Code)
		var resp resdto.WebhookResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal("mp-error", resp.Status)
	})

	s.Run("persistence failure: 500 with status db-error", func() {
		s.mockCommands.EXPECT().Process(gomock.Any(), gomock.Any()).
			Return(commands.Outcome(""), errs.Mark(errs.New("connection reset"), commands.ErrOrderUpdate))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		s.Equal(http.StatusInternalServerError, rec.Code)
		var resp resdto.WebhookResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal("db-error", resp.Status)
	})

	s.Run("unknown failure: 500 with status error", func() {
		s.mockCommands.EXPECT().Process(gomock.Any(), gomock.Any()).
			Return(commands.Outcome(""), errs.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		s.Equal(http.StatusInternalServerError, rec.Code)
		var resp resdto.WebhookResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal("error", resp.Status)
	})
}
