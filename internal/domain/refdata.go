package domain

import "time"

// CustomerStatus — статус клиента в справочнике.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusBlocked  CustomerStatus = "blocked"
	CustomerStatusArchived CustomerStatus = "archived"
)

// Customer — запись справочника клиентов.
type Customer struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Status    CustomerStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// Active — клиент существует и ему разрешено оформлять заказы.
func (c *Customer) Active() bool {
	return c != nil && c.Status == CustomerStatusActive
}

// ProductStatus — статус товара в каталоге.
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Product — запись каталога товаров.
type Product struct {
	SKU        string        `json:"sku"`
	Name       string        `json:"name"`
	Status     ProductStatus `json:"status"`
	PriceMinor int64         `json:"price"` // каталожная цена за единицу, минорные единицы
	Stock      int           `json:"stock"` // доступный остаток
}
