//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tienda-api/internal/domain/cart"
	reqdto "tienda-api/internal/handler/dto/request"
	"tienda-api/internal/infra"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/commands"
	commandsmock "tienda-api/tests/mock/commands"
)

type CartUseCaseTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *commandsmock.MockCartStore
	uc        commands.CartCommands
}

func (s *CartUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = commandsmock.NewMockCartStore(s.mockCtrl)
	s.uc = commands.NewCartUseCase(s.mockStore)
}

func (s *CartUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CartUseCaseTestSuite))
}

func (s *CartUseCaseTestSuite) TestCreateSavesEmptyCart() {
	s.mockStore.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *cart.Cart) error {
			s.NotEqual(uuid.Nil, c.ID)
			s.Empty(c.Lines)
			return nil
		})

	c, err := s.uc.Create(context.Background())

	s.NoError(err)
	s.NotNil(c)
}

func (s *CartUseCaseTestSuite) TestAddItemMergesAndSaves() {
	cartID := uuid.New()
	productID := uuid.New()
	existing := cart.New(cartID)
	s.NoError(existing.Add(cart.Line{ProductID: productID, Slug: "polo-clasico", Name: "Polo clásico", Price: 79.90, Size: "M", Qty: 1}))

	s.mockStore.EXPECT().Get(gomock.Any(), cartID).Return(existing, nil)
	s.mockStore.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *cart.Cart) error {
			s.Require().Len(c.Lines, 1)
			s.Equal(2, c.Lines[0].Qty)
			return nil
		})

	c, err := s.uc.AddItem(context.Background(), cartID, reqdto.AddCartItemRequest{
		ProductID: productID,
		Slug:      "polo-clasico",
		Name:      "Polo clásico",
		Price:     79.90,
		Size:      "M",
		Qty:       1,
	})

	s.NoError(err)
	s.Equal(2, c.TotalQty())
}

func (s *CartUseCaseTestSuite) TestMissingCartIsNotFound() {
	cartID := uuid.New()

	s.mockStore.EXPECT().
		Get(gomock.Any(), cartID).
		Return(nil, infra.WrapRepoErr("cart missing", nil, infra.KindNotFound))

	c, err := s.uc.Get(context.Background(), cartID)

	s.Nil(c)
	s.True(errs.Is(err, commands.ErrCartNotFound))
}

func (s *CartUseCaseTestSuite) TestSetQtyZeroDropsLine() {
	cartID := uuid.New()
	productID := uuid.New()
	existing := cart.New(cartID)
	s.NoError(existing.Add(cart.Line{ProductID: productID, Slug: "polo-clasico", Name: "Polo clásico", Price: 79.90, Size: "M", Qty: 2}))

	s.mockStore.EXPECT().Get(gomock.Any(), cartID).Return(existing, nil)
	s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	c, err := s.uc.SetItemQty(context.Background(), cartID, reqdto.UpdateCartItemRequest{
		ProductID: productID,
		Size:      "M",
		Qty:       0,
	})

	s.NoError(err)
	s.Empty(c.Lines)
}

func (s *CartUseCaseTestSuite) TestRemoveUnknownLine() {
	cartID := uuid.New()

	s.mockStore.EXPECT().Get(gomock.Any(), cartID).Return(cart.New(cartID), nil)

	c, err := s.uc.RemoveItem(context.Background(), cartID, reqdto.RemoveCartItemRequest{
		ProductID: uuid.New(),
	})

	s.Nil(c)
	s.ErrorIs(err, cart.ErrLineNotFound)
}

func (s *CartUseCaseTestSuite) TestClearDeletesStoredCart() {
	cartID := uuid.New()

	s.mockStore.EXPECT().Delete(gomock.Any(), cartID).Return(nil)

	s.NoError(s.uc.Clear(context.Background(), cartID))
}
