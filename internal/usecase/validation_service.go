package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/example/order-rules/internal/domain"
	"github.com/example/order-rules/internal/ports"
	"github.com/example/order-rules/pkg/metrics"
	"github.com/example/order-rules/pkg/validate"
)

// Проверка, что ValidationService удовлетворяет интерфейсу ports.ValidationService.
var _ ports.ValidationService = (*ValidationService)(nil)

// ValidationService — прикладная логика проверки заказов (без знаний о транспорте).
type ValidationService struct {
	validator ports.OrderValidator   // прямой доступ к набору правил
	repo      ports.ReportRepository // прямой доступ к хранилищу отчётов
	cache     ports.ReportCache      // прямой доступ к кэшу
	log       ports.Logger           // прямой доступ к логгеру
}

// NewValidationService — DI-конструктор.
func NewValidationService(
	validator ports.OrderValidator,
	repo ports.ReportRepository,
	cache ports.ReportCache,
	log ports.Logger,
) *ValidationService {
	return &ValidationService{
		validator: validator,
		repo:      repo,
		cache:     cache,
		log:       log,
	}
}

// ValidateRaw — проверить команду создания заказа, пришедшую как raw JSON.
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> validate.ErrMalformedCommand при битом сообщении;
//  2. прогон правил —> бизнес-нарушения попадают в отчёт, а не в ошибку;
//  3. транзакционное сохранение отчёта в БД (идемпотентный upsert по номеру заказа);
//  4. положить отчёт в кэш.
func (s *ValidationService) ValidateRaw(ctx context.Context, raw []byte) (*domain.ValidationReport, error) {
	cmd, err := validate.CommandFromJSON(raw)
	if err != nil {
		s.log.Warnf(ctx, "malformed command err=%v", err)
		metrics.ValidationRuns.WithLabelValues("malformed").Inc()
		return nil, err
	}

	res, err := s.validator.ValidateCreate(ctx, cmd)
	if err != nil {
		s.log.Errorf(ctx, "validator.ValidateCreate failed order_number=%s err=%v", cmd.OrderNumber, err)
		metrics.ValidationRuns.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("validate order %s: %w", cmd.OrderNumber, err)
	}

	report := domain.NewReport(cmd, res, time.Now().UTC())
	s.observeOutcome(report)

	if err := s.repo.Save(ctx, report); err != nil {
		s.log.Errorf(ctx, "repo.Save failed order_number=%s err=%v", report.OrderNumber, err)
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	if setErr := s.cache.Set(ctx, report); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed order_number=%s err=%v", report.OrderNumber, setErr)
	}

	s.log.Infof(ctx, "validation done order_number=%s valid=%t violations=%d",
		report.OrderNumber, report.Valid, len(report.Errors))
	return report, nil
}

// Report — получить отчёт по номеру заказа: сначала из кэша, при промахе — из БД с записью в кэш.
// Возвращает (*ValidationReport, nil) или (nil, nil), если записи нет.
func (s *ValidationService) Report(ctx context.Context, orderNumber string) (*domain.ValidationReport, error) {
	if report, found := s.cache.Get(ctx, orderNumber); found {
		s.log.Infof(ctx, "cache hit for order_number=%s", orderNumber)
		return report, nil
	}
	s.log.Infof(ctx, "cache miss for order_number=%s", orderNumber)

	start := time.Now()
	report, err := s.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByOrderNumber failed order_number=%s err=%v", orderNumber, err)
		return nil, err
	}

	if report != nil {
		// Кэшируем результат
		if setErr := s.cache.Set(ctx, report); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed order_number=%s err=%v", orderNumber, setErr)
		}
	}

	s.log.Infof(ctx, "db fetch order_number=%s took=%s", orderNumber, time.Since(start))
	return report, nil
}

// ReportsByCustomer — проксирование в репозиторий (пагинация уже валидирована на верхнем уровне).
func (s *ValidationService) ReportsByCustomer(
	ctx context.Context,
	customerID string,
	limit, offset int,
) ([]*domain.ValidationReport, error) {
	return s.repo.ListByCustomer(ctx, customerID, limit, offset)
}

// WarmUpCache — прогрев кэша последними N отчётами из БД.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *ValidationService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastN failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d reports in %s", len(list), time.Since(start))
	return nil
}

// observeOutcome — счётчики по итогу проверки и по кодам нарушений.
func (s *ValidationService) observeOutcome(report *domain.ValidationReport) {
	if report.Valid {
		metrics.ValidationRuns.WithLabelValues("valid").Inc()
		return
	}
	metrics.ValidationRuns.WithLabelValues("invalid").Inc()
	for _, e := range report.Errors {
		metrics.RuleFailures.WithLabelValues(string(e.Code)).Inc()
	}
}
