package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/order-rules/internal/domain"
	"github.com/example/order-rules/internal/ports"
)

// Проверка, что RulesData удовлетворяет интерфейсу RulesData.
var _ ports.RulesData = (*RulesData)(nil)

// RulesData — реализация справочных данных для правил на Postgres (pgxpool).
// Это источник данных HTTP- и Kafka-хостов; офлайн-CLI использует
// снапшот в памяти.
type RulesData struct {
	pool *pgxpool.Pool
}

// NewRulesData — конструктор RulesData.
func NewRulesData(pool *pgxpool.Pool) *RulesData { return &RulesData{pool: pool} }

// CustomerByID — клиент по id; (nil, nil), если записи нет.
func (d *RulesData) CustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	var c domain.Customer
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, status, created_at
		FROM customers WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select customer: %w", err)
	}
	return &c, nil
}

// ProductBySKU — товар по артикулу; (nil, nil), если записи нет.
func (d *RulesData) ProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var p domain.Product
	err := d.pool.QueryRow(ctx, `
		SELECT sku, name, status, price, stock
		FROM products WHERE sku = $1
	`, sku).Scan(&p.SKU, &p.Name, &p.Status, &p.PriceMinor, &p.Stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return &p, nil
}

// OrderNumberTaken — есть ли уже принятый заказ с таким номером.
func (d *RulesData) OrderNumberTaken(ctx context.Context, number string) (bool, error) {
	var taken bool
	err := d.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM orders WHERE order_number = $1)
	`, number).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("probe order number: %w", err)
	}
	return taken, nil
}
