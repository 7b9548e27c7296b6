//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tienda-api/internal/domain/cart"
	"tienda-api/internal/handler/api"
	resdto "tienda-api/internal/handler/dto/response"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/commands"
	"tienda-api/tests/common/httptest"
	commandsmock "tienda-api/tests/mock/commands"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands)

	s.router.POST("/carts", s.handler.Create)
	s.router.GET("/carts/:id", s.handler.Get)
	s.router.DELETE("/carts/:id", s.handler.Clear)
	s.router.POST("/carts/:id/items", s.handler.AddItem)
	s.router.PATCH("/carts/:id/items", s.handler.SetItemQty)
	s.router.DELETE("/carts/:id/items", s.handler.RemoveItem)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func sampleCart(id uuid.UUID) *cart.Cart {
	c := cart.New(id)
	_ = c.Add(cart.Line{
		ProductID: uuid.New(),
		Slug:      "polo-clasico",
		Name:      "Polo clásico",
		Price:     79.90,
		Color:     "rojo",
		Size:      "M",
		Qty:       2,
	})
	return c
}

func (s *CartHandlerTestSuite) TestCreate() {
	s.Run("success: returns 201 with empty cart", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any()).Return(cart.New(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/carts", nil)

		var resp resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.True(resp.OK)
		s.Equal(id, resp.ID)
		s.Empty(resp.Lines)
	})
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: returns cart with totals", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Get(gomock.Any(), id).Return(sampleCart(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/carts/"+id.String(), nil)

		var resp resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Lines, 1)
		s.InDelta(159.80, resp.Subtotal, 0.001)
		s.Equal(2, resp.TotalQty)
	})

	s.Run("unknown cart: 404", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Get(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("redis: nil"), commands.ErrCartNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/carts/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed id: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/carts/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	id := uuid.New()
	url := "/carts/" + id.String() + "/items"

	s.Run("success: returns merged cart", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), id, gomock.Any()).
			Return(sampleCart(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"productId": uuid.New().String(),
			"slug":      "polo-clasico",
			"name":      "Polo clásico",
			"price":     79.90,
			"color":     "rojo",
			"size":      "M",
			"qty":       2,
		})

		var resp resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Lines, 1)
	})

	s.Run("missing qty: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"productId": uuid.New().String(),
			"slug":      "polo-clasico",
			"name":      "Polo clásico",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestSetItemQty() {
	id := uuid.New()
	url := "/carts/" + id.String() + "/items"

	s.Run("unknown line: 404", func() {
		s.mockCommands.EXPECT().SetItemQty(gomock.Any(), id, gomock.Any()).
			Return(nil, cart.ErrLineNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{
			"productId": uuid.New().String(),
			"qty":       3,
		})
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	s.Run("success: 204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Clear(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/carts/"+id.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
