//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	reqdto "tienda-api/internal/handler/dto/request"
	"tienda-api/internal/pkg/clock"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/commands"
	commandsmock "tienda-api/tests/mock/commands"
)

// passthroughUoW runs the body without a real transaction.
type passthroughUoW struct{}

func (passthroughUoW) Within(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	return fn(ctx, nil)
}

type OrderUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *commandsmock.MockOrderWriteRepository
	uc       commands.OrderCommands
}

func (s *OrderUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockOrderWriteRepository(s.mockCtrl)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.uc = commands.NewOrderUseCase(s.mockRepo, passthroughUoW{}, clk)
}

func (s *OrderUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderUseCaseSuite(t *testing.T) {
	suite.Run(t, new(OrderUseCaseTestSuite))
}

func (s *OrderUseCaseTestSuite) request() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		ReceiptType:  "boleta",
		Nombres:      "Maria Quispe",
		DocType:      "DNI",
		DocNumber:    "45678912",
		Telefono:     "987654321",
		Email:        "maria@example.pe",
		Departamento: "LIMA",
		Provincia:    "LIMA",
		Distrito:     "MIRAFLORES",
		Direccion:    "Av. Larco 123",
		Subtotal:     159.80,
		Envio:        15,
		Total:        174.80,
		Carrier:      "olva",
		ShippingMode: "domicilio",
		Gateway:      "mercadopago",
		Cart: []reqdto.CartLine{
			{Slug: "polo-clasico", Name: "Polo clásico", Size: "M", Qty: 2, Price: 79.90},
		},
	}
}

func (s *OrderUseCaseTestSuite) TestCreatePersistsOrderWithItems() {
	var captured commands.NewOrder
	var capturedItems []commands.NewOrderItem

	s.mockRepo.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, order commands.NewOrder, items []commands.NewOrderItem) error {
			captured = order
			capturedItems = items
			return nil
		})

	result, err := s.uc.Create(context.Background(), s.request())

	s.NoError(err)
	s.Equal(captured.ID, result.OrderID)
	s.Equal("Maria Quispe", captured.Nombres)
	s.Equal(174.80, captured.Total)
	s.Require().Len(capturedItems, 1)
	s.Equal("polo-clasico", capturedItems[0].Slug)
	s.Equal(2, capturedItems[0].Qty)
}

func (s *OrderUseCaseTestSuite) TestStatusIsAlwaysPendingPayment() {
	s.mockRepo.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, order commands.NewOrder, _ []commands.NewOrderItem) error {
			s.Equal(commands.StatusPendingPayment, order.Status)
			return nil
		})

	_, err := s.uc.Create(context.Background(), s.request())
	s.NoError(err)
}

func (s *OrderUseCaseTestSuite) TestEmptyCartIsRejected() {
	req := s.request()
	req.Cart = nil

	result, err := s.uc.Create(context.Background(), req)

	s.Nil(result)
	s.ErrorIs(err, commands.ErrEmptyCart)
}

func (s *OrderUseCaseTestSuite) TestRepositoryFailureIsMarked() {
	s.mockRepo.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errs.New("insert failed"))

	result, err := s.uc.Create(context.Background(), s.request())

	s.Nil(result)
	s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
}
