package commands

import (
	"context"

	"github.com/google/uuid"

	"tienda-api/internal/domain/cart"
	reqdto "tienda-api/internal/handler/dto/request"
	"tienda-api/internal/infra"
	"tienda-api/internal/pkg/errs"
)

var ErrCartNotFound = errs.New("cart not found")

type CartCommands interface {
	Create(ctx context.Context) (*cart.Cart, error)
	Get(ctx context.Context, id uuid.UUID) (*cart.Cart, error)
	AddItem(ctx context.Context, id uuid.UUID, req reqdto.AddCartItemRequest) (*cart.Cart, error)
	SetItemQty(ctx context.Context, id uuid.UUID, req reqdto.UpdateCartItemRequest) (*cart.Cart, error)
	RemoveItem(ctx context.Context, id uuid.UUID, req reqdto.RemoveCartItemRequest) (*cart.Cart, error)
	Clear(ctx context.Context, id uuid.UUID) error
}

type cartUseCaseImpl struct {
	store CartStore
}

func NewCartUseCase(store CartStore) CartCommands {
	return &cartUseCaseImpl{store: store}
}

func (u *cartUseCaseImpl) Create(ctx context.Context) (*cart.Cart, error) {
	c := cart.New(uuid.New())
	if err := u.store.Save(ctx, c); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c, nil
}

func (u *cartUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	return u.load(ctx, id)
}

func (u *cartUseCaseImpl) AddItem(ctx context.Context, id uuid.UUID, req reqdto.AddCartItemRequest) (*cart.Cart, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	line := cart.Line{
		ProductID: req.ProductID,
		Slug:      req.Slug,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
		Color:     req.Color,
		Size:      req.Size,
		Qty:       req.Qty,
	}
	if err := c.Add(line); err != nil {
		return nil, err
	}
	if err := u.store.Save(ctx, c); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c, nil
}

func (u *cartUseCaseImpl) SetItemQty(ctx context.Context, id uuid.UUID, req reqdto.UpdateCartItemRequest) (*cart.Cart, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	key := cart.Line{ProductID: req.ProductID, Color: req.Color, Size: req.Size}.Key()
	if err := c.SetQty(key, req.Qty); err != nil {
		return nil, err
	}
	if err := u.store.Save(ctx, c); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c, nil
}

func (u *cartUseCaseImpl) RemoveItem(ctx context.Context, id uuid.UUID, req reqdto.RemoveCartItemRequest) (*cart.Cart, error) {
	c, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	key := cart.Line{ProductID: req.ProductID, Color: req.Color, Size: req.Size}.Key()
	if err := c.Remove(key); err != nil {
		return nil, err
	}
	if err := u.store.Save(ctx, c); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c, nil
}

func (u *cartUseCaseImpl) Clear(ctx context.Context, id uuid.UUID) error {
	if err := u.store.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *cartUseCaseImpl) load(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	c, err := u.store.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCartNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c, nil
}
