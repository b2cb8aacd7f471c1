package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/example/order-rules/internal/domain"
	"github.com/example/order-rules/internal/ports"
)

// Проверка, что SnapshotRulesData удовлетворяет интерфейсу RulesData.
var _ ports.RulesData = (*SnapshotRulesData)(nil)

// Snapshot — срез справочных данных для офлайн-проверки:
// клиенты, каталог и уже занятые номера заказов.
type Snapshot struct {
	Customers         []domain.Customer `json:"customers"`
	Products          []domain.Product  `json:"products"`
	TakenOrderNumbers []string          `json:"taken_order_numbers"`
}

// SnapshotRulesData — реализация RulesData поверх среза в памяти.
// После конструктора данные не меняются, поэтому чтение безопасно из
// нескольких горутин без блокировок.
type SnapshotRulesData struct {
	customers map[string]domain.Customer
	products  map[string]domain.Product
	taken     map[string]struct{}
}

// NewSnapshotRulesData — индексирует срез для O(1)-доступа.
func NewSnapshotRulesData(s Snapshot) *SnapshotRulesData {
	d := &SnapshotRulesData{
		customers: make(map[string]domain.Customer, len(s.Customers)),
		products:  make(map[string]domain.Product, len(s.Products)),
		taken:     make(map[string]struct{}, len(s.TakenOrderNumbers)),
	}
	for _, c := range s.Customers {
		d.customers[c.ID] = c
	}
	for _, p := range s.Products {
		d.products[p.SKU] = p
	}
	for _, n := range s.TakenOrderNumbers {
		d.taken[n] = struct{}{}
	}
	return d
}

// LoadSnapshot — строгое чтение среза из JSON-файла
// (неизвестные поля — ошибка, чтобы опечатки в снапшоте не терялись молча).
func LoadSnapshot(path string) (Snapshot, error) {
	var s Snapshot

	raw, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read snapshot: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return s, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return s, fmt.Errorf("decode snapshot: trailing data")
	}
	return s, nil
}

// CustomerByID — клиент из среза; (nil, nil), если не найден.
func (d *SnapshotRulesData) CustomerByID(_ context.Context, id string) (*domain.Customer, error) {
	if c, ok := d.customers[id]; ok {
		cCopy := c
		return &cCopy, nil
	}
	return nil, nil
}

// ProductBySKU — товар из среза; (nil, nil), если не найден.
func (d *SnapshotRulesData) ProductBySKU(_ context.Context, sku string) (*domain.Product, error) {
	if p, ok := d.products[sku]; ok {
		pCopy := p
		return &pCopy, nil
	}
	return nil, nil
}

// OrderNumberTaken — занят ли номер в срезе.
func (d *SnapshotRulesData) OrderNumberTaken(_ context.Context, number string) (bool, error) {
	_, ok := d.taken[number]
	return ok, nil
}
