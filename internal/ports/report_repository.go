package ports

import (
	"context"

	"github.com/example/order-rules/internal/domain"
)

// ReportRepository — хранилище отчётов о проверках.
type ReportRepository interface {
	Save(ctx context.Context, report *domain.ValidationReport) error
	GetByOrderNumber(ctx context.Context, number string) (*domain.ValidationReport, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.ValidationReport, error)
	LastN(ctx context.Context, n int) ([]*domain.ValidationReport, error)
}
