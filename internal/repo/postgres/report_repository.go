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

// Проверка, что ReportRepository удовлетворяет интерфейсу ReportRepository.
var _ ports.ReportRepository = (*ReportRepository)(nil)

// ReportRepository — хранилище отчётов о проверках на Postgres (pgxpool).
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository — конструктор ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// Save — транзакционно сохраняет отчёт (идемпотентный upsert;
// список нарушений заменяется целиком).
func (r *ReportRepository) Save(ctx context.Context, report *domain.ValidationReport) error {
	if report == nil || report.OrderNumber == "" {
		return errors.New("report is empty or order_number is required")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	// 1) validation_reports — upsert по order_number.
	if _, err = tx.Exec(ctx, `
		INSERT INTO validation_reports (order_number, customer_id, valid, validated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (order_number) DO UPDATE SET
			customer_id = EXCLUDED.customer_id,
			valid = EXCLUDED.valid,
			validated_at = EXCLUDED.validated_at
	`, report.OrderNumber, report.CustomerID, report.Valid, report.ValidatedAt); err != nil {
		return fmt.Errorf("upsert report: %w", err)
	}

	// 2) validation_errors — replace: удаляем и вставляем список заново.
	if _, err = tx.Exec(ctx, `DELETE FROM validation_errors WHERE order_number = $1`, report.OrderNumber); err != nil {
		return fmt.Errorf("delete errors: %w", err)
	}
	if len(report.Errors) > 0 {
		if err = copyErrors(ctx, tx, report.OrderNumber, report.Errors); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByOrderNumber — отчёт по номеру заказа. Если не нашли, возвращает (nil, nil).
func (r *ReportRepository) GetByOrderNumber(ctx context.Context, number string) (*domain.ValidationReport, error) {
	var report domain.ValidationReport

	err := r.pool.QueryRow(ctx, `
		SELECT order_number, customer_id, valid, validated_at
		FROM validation_reports WHERE order_number = $1
	`, number).Scan(&report.OrderNumber, &report.CustomerID, &report.Valid, &report.ValidatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select report: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT code, field, message
		FROM validation_errors WHERE order_number = $1
		ORDER BY pos
	`, number)
	if err != nil {
		return nil, fmt.Errorf("select errors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.RuleError
		if err := rows.Scan(&e.Code, &e.Field, &e.Message); err != nil {
			return nil, fmt.Errorf("scan error row: %w", err)
		}
		report.Errors = append(report.Errors, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("errors rows: %w", err)
	}

	return &report, nil
}

// ListByCustomer — постраничный список отчётов клиента.
// Два запроса на страницу: базовые отчёты + нарушения одним ANY-запросом,
// склейка в памяти с сохранением порядка.
func (r *ReportRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.ValidationReport, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT order_number, customer_id, valid, validated_at
		FROM validation_reports
		WHERE customer_id = $1
		ORDER BY validated_at DESC, order_number DESC
		LIMIT $2 OFFSET $3
	`, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select customer reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.ValidationReport, 0, limit)
	byNumber := make(map[string]*domain.ValidationReport, limit)
	numbers := make([]string, 0, limit)

	for rows.Next() {
		report := &domain.ValidationReport{}
		if err := rows.Scan(&report.OrderNumber, &report.CustomerID, &report.Valid, &report.ValidatedAt); err != nil {
			return nil, fmt.Errorf("scan report base: %w", err)
		}
		reports = append(reports, report)
		byNumber[report.OrderNumber] = report
		numbers = append(numbers, report.OrderNumber)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reports rows: %w", err)
	}
	if len(reports) == 0 {
		return reports, nil // пустая страница
	}

	eRows, err := r.pool.Query(ctx, `
		SELECT order_number, code, field, message
		FROM validation_errors
		WHERE order_number = ANY($1::text[])
		ORDER BY order_number, pos
	`, numbers)
	if err != nil {
		return nil, fmt.Errorf("select errors: %w", err)
	}
	defer eRows.Close()

	for eRows.Next() {
		var number string
		var e domain.RuleError
		if err := eRows.Scan(&number, &e.Code, &e.Field, &e.Message); err != nil {
			return nil, fmt.Errorf("scan error row: %w", err)
		}
		if report := byNumber[number]; report != nil {
			report.Errors = append(report.Errors, e)
		}
	}
	if err := eRows.Err(); err != nil {
		return nil, fmt.Errorf("errors rows: %w", err)
	}

	return reports, nil
}

// LastN — последние N отчётов (для прогрева кэша).
// Подход N+1: берём только номера, затем дочитываем полные отчёты.
func (r *ReportRepository) LastN(ctx context.Context, n int) ([]*domain.ValidationReport, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT order_number
		FROM validation_reports
		ORDER BY validated_at DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last numbers: %w", err)
	}
	defer rows.Close()

	var result []*domain.ValidationReport
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("scan number: %w", err)
		}
		report, err := r.GetByOrderNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		if report != nil {
			result = append(result, report)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("last rows: %w", err)
	}

	return result, nil
}

// copyErrors — вставка нарушений через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
func copyErrors(ctx context.Context, tx pgx.Tx, orderNumber string, errs []domain.RuleError) error {
	rows := make([][]any, 0, len(errs))
	for i, e := range errs {
		rows = append(rows, []any{orderNumber, i, string(e.Code), e.Field, e.Message})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"validation_errors"},
		[]string{"order_number", "pos", "code", "field", "message"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy errors: %w", err)
	}
	return nil
}
