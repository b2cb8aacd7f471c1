package ports

import (
	"context"

	"github.com/example/order-rules/internal/domain"
)

// OrderValidator — набор правил для команды создания заказа.
// Бизнес-нарушения возвращаются в Result; ошибка — только при сбое
// источника справочных данных.
type OrderValidator interface {
	ValidateCreate(ctx context.Context, cmd *domain.CreateOrderCommand) (domain.Result, error)
}
