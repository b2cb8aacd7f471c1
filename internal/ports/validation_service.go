package ports

import (
	"context"

	"github.com/example/order-rules/internal/domain"
)

// ValidationService — прикладной фасад для транспортов (HTTP, Kafka).
type ValidationService interface {
	// ValidateRaw — строгий разбор JSON-команды, прогон правил и сохранение отчёта.
	// Для синтаксически битого JSON возвращает ошибку с validate.ErrMalformedCommand.
	ValidateRaw(ctx context.Context, raw []byte) (*domain.ValidationReport, error)

	// Report — последний отчёт по номеру заказа; (nil, nil), если его нет.
	Report(ctx context.Context, orderNumber string) (*domain.ValidationReport, error)

	// ReportsByCustomer — постраничный список отчётов клиента.
	ReportsByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.ValidationReport, error)
}
