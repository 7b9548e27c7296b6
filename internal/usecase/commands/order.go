package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	reqdto "tienda-api/internal/handler/dto/request"
	"tienda-api/internal/infra/uow"
	"tienda-api/internal/pkg/clock"
	"tienda-api/internal/pkg/errs"
)

const StatusPendingPayment = "pending_payment"

var (
	ErrEmptyCart               = errs.New("cart is empty")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateOrderResult struct {
	OrderID uuid.UUID
}

type OrderCommands interface {
	Create(ctx context.Context, req reqdto.CreateOrderRequest) (*CreateOrderResult, error)
}

type orderUseCaseImpl struct {
	orderRepo OrderWriteRepository
	uow       uow.UnitOfWork
	clock     clock.Clock
}

func NewOrderUseCase(orderRepo OrderWriteRepository, unit uow.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderUseCaseImpl{
		orderRepo: orderRepo,
		uow:       unit,
		clock:     clk,
	}
}

// Create inserts the order row and its line-item snapshots in one
// transaction: either both land or neither does. The status is forced to
// pending_payment regardless of anything the caller sent.
func (u *orderUseCaseImpl) Create(ctx context.Context, req reqdto.CreateOrderRequest) (*CreateOrderResult, error) {
	if len(req.Cart) == 0 {
		return nil, ErrEmptyCart
	}

	order := NewOrder{
		ID:              uuid.New(),
		ReceiptType:     req.ReceiptType,
		Nombres:         req.Nombres,
		DocType:         req.DocType,
		DocNumber:       req.DocNumber,
		RUC:             req.RUC,
		RazonSocial:     req.RazonSocial,
		DireccionFiscal: req.DireccionFiscal,
		Telefono:        req.Telefono,
		Email:           req.Email,
		Departamento:    req.Departamento,
		Provincia:       req.Provincia,
		Distrito:        req.Distrito,
		Direccion:       req.Direccion,
		Referencia:      req.Referencia,
		Subtotal:        req.Subtotal,
		Envio:           req.Envio,
		Total:           req.Total,
		Carrier:         req.Carrier,
		ShippingMode:    req.ShippingMode,
		Gateway:         req.Gateway,
		AppliedCoupon:   req.AppliedCoupon,
		Status:          StatusPendingPayment,
	}

	items := make([]NewOrderItem, 0, len(req.Cart))
	for _, line := range req.Cart {
		items = append(items, NewOrderItem{
			Slug:  line.Slug,
			Name:  line.Name,
			Size:  line.Size,
			Qty:   line.Qty,
			Price: line.Price,
		})
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return u.orderRepo.CreateWithItems(ctx, tx, order, items)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateOrderResult{OrderID: order.ID}, nil
}
