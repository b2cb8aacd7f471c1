package domain

import "time"

// OrderLine — позиция команды создания заказа.
type OrderLine struct {
	SKU            string `json:"sku"`
	Qty            int    `json:"qty"`
	UnitPriceMinor int64  `json:"unit_price"` // цена за единицу в минорных единицах валюты
	LineTotalMinor int64  `json:"line_total"` // сумма позиции в минорных единицах валюты
}

// CreateOrderCommand — входная команда «создать заказ», которую проверяет набор правил.
// Денежные суммы храним в минорных единицах (копейки/центы), чтобы не терять точность.
type CreateOrderCommand struct {
	OrderNumber string      `json:"order_number"`
	CustomerID  string      `json:"customer_id"`
	Currency    string      `json:"currency"`
	OrderDate   time.Time   `json:"order_date"`
	TotalMinor  int64       `json:"total"`
	Lines       []OrderLine `json:"lines"`
}

// LinesTotalMinor — сумма всех позиций (для сверки с заявленным итогом).
func (c *CreateOrderCommand) LinesTotalMinor() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.LineTotalMinor
	}
	return total
}
