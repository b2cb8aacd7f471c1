package ports

import (
	"context"

	"github.com/example/order-rules/internal/domain"
)

// ReportCache — кэш отчётов по номеру заказа.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий.
type ReportCache interface {
	// Get — отчёт по номеру заказа; (report, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, orderNumber string) (*domain.ValidationReport, bool)

	// Set — сохранить/обновить отчёт в кэше.
	Set(ctx context.Context, report *domain.ValidationReport) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	// Реализация должна поддерживать отмену контекста.
	WarmUp(ctx context.Context, reports []*domain.ValidationReport) error
}
