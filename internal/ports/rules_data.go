package ports

import (
	"context"

	"github.com/example/order-rules/internal/domain"
)

// RulesData — абстракция над справочными данными для правил валидации.
// Каждый хост (HTTP API, офлайн-CLI) подставляет свою реализацию.
// Контракт: отсутствие записи — это (nil, nil), а не ошибка;
// ошибка означает сбой самого источника (БД/сеть).
type RulesData interface {
	// CustomerByID — клиент по идентификатору; (nil, nil), если не найден.
	CustomerByID(ctx context.Context, id string) (*domain.Customer, error)

	// ProductBySKU — товар по артикулу; (nil, nil), если не найден.
	ProductBySKU(ctx context.Context, sku string) (*domain.Product, error)

	// OrderNumberTaken — занят ли уже номер заказа.
	OrderNumberTaken(ctx context.Context, number string) (bool, error)
}
