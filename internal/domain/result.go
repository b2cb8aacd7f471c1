package domain

// RuleCode — типизированный код нарушенного бизнес-правила.
type RuleCode string

const (
	CodeOrderNumberRequired RuleCode = "order_number_required"
	CodeOrderNumberFormat   RuleCode = "order_number_format"
	CodeOrderNumberTaken    RuleCode = "order_number_taken"

	CodeCustomerRequired RuleCode = "customer_required"
	CodeCustomerNotFound RuleCode = "customer_not_found"
	CodeCustomerInactive RuleCode = "customer_inactive"

	CodeCurrencyRequired    RuleCode = "currency_required"
	CodeCurrencyUnsupported RuleCode = "currency_unsupported"

	CodeOrderDateRequired RuleCode = "order_date_required"
	CodeOrderDateTooOld   RuleCode = "order_date_too_old"
	CodeOrderDateInFuture RuleCode = "order_date_in_future"

	CodeTotalNegative RuleCode = "total_negative"
	CodeTotalMismatch RuleCode = "total_mismatch"

	CodeLinesEmpty    RuleCode = "lines_empty"
	CodeLinesTooMany  RuleCode = "lines_too_many"
	CodeLineSKU       RuleCode = "line_sku_required"
	CodeLineSKUDup    RuleCode = "line_sku_duplicate"
	CodeLineQty       RuleCode = "line_qty_invalid"
	CodeLineQtyTooBig RuleCode = "line_qty_too_big"
	CodeLinePrice     RuleCode = "line_price_negative"
	CodeLineTotal     RuleCode = "line_total_mismatch"

	CodeProductNotFound     RuleCode = "product_not_found"
	CodeProductDiscontinued RuleCode = "product_discontinued"
	CodePriceOutOfTolerance RuleCode = "price_out_of_tolerance"
	CodeInsufficientStock   RuleCode = "insufficient_stock"
)

// RuleError — одно нарушение: код правила, поле команды и сообщение для человека.
type RuleError struct {
	Code    RuleCode `json:"code"`
	Field   string   `json:"field"`
	Message string   `json:"message"`
}

// Result — исход проверки команды: пустой список ошибок означает успех.
// Бизнес-нарушения не являются Go-ошибками — они накапливаются здесь.
type Result struct {
	Errors []RuleError `json:"errors,omitempty"`
}

// OK — true, если ни одно правило не нарушено.
func (r Result) OK() bool { return len(r.Errors) == 0 }

// Add — добавляет нарушение в результат.
func (r *Result) Add(code RuleCode, field, message string) {
	r.Errors = append(r.Errors, RuleError{Code: code, Field: field, Message: message})
}

// Merge — присоединяет нарушения другого результата.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
}

// Has — есть ли в результате нарушение с данным кодом.
func (r Result) Has(code RuleCode) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}
