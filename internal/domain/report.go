package domain

import "time"

// ValidationReport — сохранённый итог одной проверки команды.
// Повторная проверка того же order_number перезаписывает отчёт.
type ValidationReport struct {
	OrderNumber string      `json:"order_number"`
	CustomerID  string      `json:"customer_id"`
	Valid       bool        `json:"valid"`
	Errors      []RuleError `json:"errors,omitempty"`
	ValidatedAt time.Time   `json:"validated_at"`
}

// NewReport — собирает отчёт из команды и результата проверки.
func NewReport(cmd *CreateOrderCommand, res Result, at time.Time) *ValidationReport {
	return &ValidationReport{
		OrderNumber: cmd.OrderNumber,
		CustomerID:  cmd.CustomerID,
		Valid:       res.OK(),
		Errors:      res.Errors,
		ValidatedAt: at.UTC(),
	}
}
