//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/order-rules/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return strings.ToUpper(randHex(6)) }

// SeedRefData — наполняет справочники минимальным набором данных,
// на который рассчитаны MakeCommand и правила каталога:
// активный клиент cust-1, заблокированный cust-blocked,
// товар SKU-1 (цена 1000, остаток 100) и снятый с продажи SKU-DISC.
func SeedRefData(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`INSERT INTO customers (id, name, status) VALUES
			('cust-1', 'Acme Inc', 'active'),
			('cust-blocked', 'Blocked LLC', 'blocked')
		 ON CONFLICT (id) DO NOTHING`,
		`INSERT INTO products (sku, name, status, price, stock) VALUES
			('SKU-1', 'Widget', 'active', 1000, 100),
			('SKU-DISC', 'Old Widget', 'discontinued', 500, 10)
		 ON CONFLICT (sku) DO NOTHING`,
	}
	for _, q := range stmts {
		if _, err := pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("seed ref data: %w", err)
		}
	}
	return nil
}

// SeedAcceptedOrder — регистрирует номер заказа как уже занятый.
func SeedAcceptedOrder(ctx context.Context, pool *pgxpool.Pool, number, customerID string) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO orders (order_number, customer_id) VALUES ($1, $2)
		 ON CONFLICT (order_number) DO NOTHING`, number, customerID)
	return err
}

// Мини-генератор валидной команды (в связке с SeedRefData)
func MakeCommand(opts ...func(*domain.CreateOrderCommand)) domain.CreateOrderCommand {
	number := "ORD-" + UniqSuffix()
	now := time.Now().UTC().Truncate(time.Second)

	cmd := domain.CreateOrderCommand{
		OrderNumber: number,
		CustomerID:  "cust-1",
		Currency:    "USD",
		OrderDate:   now,
		TotalMinor:  2000,
		Lines: []domain.OrderLine{
			{SKU: "SKU-1", Qty: 2, UnitPriceMinor: 1000, LineTotalMinor: 2000},
		},
	}

	for _, fn := range opts {
		fn(&cmd)
	}
	return cmd
}

// Доп. опции — точечные поломки команды для негативных сценариев

func WithCustomer(id string) func(*domain.CreateOrderCommand) {
	return func(c *domain.CreateOrderCommand) { c.CustomerID = id }
}

func WithOrderNumber(number string) func(*domain.CreateOrderCommand) {
	return func(c *domain.CreateOrderCommand) { c.OrderNumber = number }
}

func WithCurrency(cur string) func(*domain.CreateOrderCommand) {
	return func(c *domain.CreateOrderCommand) { c.Currency = cur }
}

func WithLines(lines ...domain.OrderLine) func(*domain.CreateOrderCommand) {
	return func(c *domain.CreateOrderCommand) {
		c.Lines = lines
		c.TotalMinor = c.LinesTotalMinor()
	}
}

// MakeReport — готовый отчёт для тестов хранилища/кэша.
func MakeReport(opts ...func(*domain.ValidationReport)) *domain.ValidationReport {
	r := &domain.ValidationReport{
		OrderNumber: "ORD-" + UniqSuffix(),
		CustomerID:  "cust-1",
		Valid:       true,
		ValidatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, fn := range opts {
		fn(r)
	}
	return r
}

func WithViolations(errs ...domain.RuleError) func(*domain.ValidationReport) {
	return func(r *domain.ValidationReport) {
		r.Valid = len(errs) == 0
		r.Errors = errs
	}
}
