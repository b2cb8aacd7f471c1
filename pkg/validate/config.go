package validate

import "time"

// Config — настраиваемые границы правил.
// Нулевые значения заменяются дефолтами в withDefaults.
type Config struct {
	// PriceToleranceBP — допустимое отклонение цены позиции от каталожной,
	// в базисных пунктах (100 = 1%).
	PriceToleranceBP int64

	// MinOrderDate — нижняя граница даты заказа.
	MinOrderDate time.Time

	// MaxFuture — насколько далеко в будущем может лежать дата заказа.
	MaxFuture time.Duration

	// Currencies — поддерживаемые коды валют (ISO 4217).
	Currencies []string

	// MaxLines — максимум позиций в команде.
	MaxLines int

	// MaxQtyPerLine — максимум единиц товара в одной позиции.
	MaxQtyPerLine int
}

// DefaultConfig — границы по умолчанию.
func DefaultConfig() Config {
	return Config{
		PriceToleranceBP: 500,
		MinOrderDate:     time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		MaxFuture:        30 * 24 * time.Hour,
		Currencies:       []string{"RUB", "USD", "EUR"},
		MaxLines:         100,
		MaxQtyPerLine:    1000,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.PriceToleranceBP <= 0 {
		c.PriceToleranceBP = def.PriceToleranceBP
	}
	if c.MinOrderDate.IsZero() {
		c.MinOrderDate = def.MinOrderDate
	}
	if c.MaxFuture <= 0 {
		c.MaxFuture = def.MaxFuture
	}
	if len(c.Currencies) == 0 {
		c.Currencies = def.Currencies
	}
	if c.MaxLines <= 0 {
		c.MaxLines = def.MaxLines
	}
	if c.MaxQtyPerLine <= 0 {
		c.MaxQtyPerLine = def.MaxQtyPerLine
	}
	return c
}

func (c Config) currencySupported(code string) bool {
	for _, cur := range c.Currencies {
		if cur == code {
			return true
		}
	}
	return false
}
