package validate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/example/order-rules/internal/domain"
	"github.com/example/order-rules/internal/ports"
)

// defaultRules — полный набор правил: сперва проверки полей (без обращений
// к справочникам), затем правила с lookup'ами.
func defaultRules(cfg Config) []Rule {
	return []Rule{
		{Name: "order_number", Check: checkOrderNumber},
		{Name: "customer_id", Check: checkCustomerID},
		{Name: "currency", Check: checkCurrency(cfg)},
		{Name: "order_date", Check: checkOrderDate(cfg)},
		{Name: "lines", Check: checkLines(cfg)},
		{Name: "totals", Check: checkTotals},
		{Name: "customer_lookup", Check: checkCustomerExists},
		{Name: "order_number_unique", Check: checkOrderNumberUnique},
		{Name: "catalog_lookup", Check: checkCatalog(cfg)},
	}
}

const maxOrderNumberLen = 32

// checkOrderNumber — номер обязателен; формат: A-Z, 0-9 и дефис, не длиннее 32.
func checkOrderNumber(_ context.Context, cmd *domain.CreateOrderCommand, _ ports.RulesData) (domain.Result, error) {
	var res domain.Result
	if cmd.OrderNumber == "" {
		res.Add(domain.CodeOrderNumberRequired, "order_number", "order_number is required")
		return res, nil
	}
	if len(cmd.OrderNumber) > maxOrderNumberLen || !orderNumberWellFormed(cmd.OrderNumber) {
		res.Add(domain.CodeOrderNumberFormat, "order_number",
			fmt.Sprintf("order_number %q must be A-Z/0-9/'-' and at most %d chars", cmd.OrderNumber, maxOrderNumberLen))
	}
	return res, nil
}

func orderNumberWellFormed(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// checkCustomerID — идентификатор клиента обязателен.
func checkCustomerID(_ context.Context, cmd *domain.CreateOrderCommand, _ ports.RulesData) (domain.Result, error) {
	var res domain.Result
	if cmd.CustomerID == "" {
		res.Add(domain.CodeCustomerRequired, "customer_id", "customer_id is required")
	}
	return res, nil
}

// checkCurrency — валюта обязательна и должна входить в поддерживаемый набор.
func checkCurrency(cfg Config) CheckFunc {
	return func(_ context.Context, cmd *domain.CreateOrderCommand, _ ports.RulesData) (domain.Result, error) {
		var res domain.Result
		if cmd.Currency == "" {
			res.Add(domain.CodeCurrencyRequired, "currency", "currency is required")
			return res, nil
		}
		if !cfg.currencySupported(cmd.Currency) {
			res.Add(domain.CodeCurrencyUnsupported, "currency",
				fmt.Sprintf("currency %q is not supported", cmd.Currency))
		}
		return res, nil
	}
}

// checkOrderDate — дата заказа в границах [MinOrderDate; now+MaxFuture].
func checkOrderDate(cfg Config) CheckFunc {
	return func(_ context.Context, cmd *domain.CreateOrderCommand, _ ports.RulesData) (domain.Result, error) {
		var res domain.Result
		switch {
		case cmd.OrderDate.IsZero():
			res.Add(domain.CodeOrderDateRequired, "order_date", "order_date is required")
		case cmd.OrderDate.Before(cfg.MinOrderDate):
			res.Add(domain.CodeOrderDateTooOld, "order_date",
				fmt.Sprintf("order_date is before %s", cfg.MinOrderDate.Format("2006-01-02")))
		case cmd.OrderDate.After(time.Now().Add(cfg.MaxFuture)):
			res.Add(domain.CodeOrderDateInFuture, "order_date",
				fmt.Sprintf("order_date is more than %s in the future", cfg.MaxFuture))
		}
		return res, nil
	}
}

// checkLines — позиции: непустой список, лимит количества, поля каждой позиции,
// дубликаты артикулов и согласованность line_total = qty * unit_price.
func checkLines(cfg Config) CheckFunc {
	return func(_ context.Context, cmd *domain.CreateOrderCommand, _ ports.RulesData) (domain.Result, error) {
		var res domain.Result
		if len(cmd.Lines) == 0 {
			res.Add(domain.CodeLinesEmpty, "lines", "lines must not be empty")
			return res, nil
		}
		if len(cmd.Lines) > cfg.MaxLines {
			res.Add(domain.CodeLinesTooMany, "lines",
				fmt.Sprintf("lines count %d exceeds limit %d", len(cmd.Lines), cfg.MaxLines))
		}

		seen := make(map[string]int, len(cmd.Lines))
		for i := range cmd.Lines {
			line := &cmd.Lines[i]
			field := "lines[" + strconv.Itoa(i) + "]"

			if line.SKU == "" {
				res.Add(domain.CodeLineSKU, field+".sku", "sku is required")
			} else if first, dup := seen[line.SKU]; dup {
				res.Add(domain.CodeLineSKUDup, field+".sku",
					fmt.Sprintf("sku %q duplicates lines[%d]", line.SKU, first))
			} else {
				seen[line.SKU] = i
			}

			if line.Qty <= 0 {
				res.Add(domain.CodeLineQty, field+".qty", "qty must be positive")
			} else if line.Qty > cfg.MaxQtyPerLine {
				res.Add(domain.CodeLineQtyTooBig, field+".qty",
					fmt.Sprintf("qty %d exceeds limit %d", line.Qty, cfg.MaxQtyPerLine))
			}

			if line.UnitPriceMinor < 0 {
				res.Add(domain.CodeLinePrice, field+".unit_price", "unit_price must be non-negative")
			}

			// Сверяем сумму позиции только когда qty и цена сами по себе корректны.
			if line.Qty > 0 && line.UnitPriceMinor >= 0 &&
				line.LineTotalMinor != int64(line.Qty)*line.UnitPriceMinor {
				res.Add(domain.CodeLineTotal, field+".line_total",
					fmt.Sprintf("line_total %d != qty %d * unit_price %d", line.LineTotalMinor, line.Qty, line.UnitPriceMinor))
			}
		}
		return res, nil
	}
}

// checkTotals — заявленный итог неотрицателен и равен сумме позиций.
func checkTotals(_ context.Context, cmd *domain.CreateOrderCommand, _ ports.RulesData) (domain.Result, error) {
	var res domain.Result
	if cmd.TotalMinor < 0 {
		res.Add(domain.CodeTotalNegative, "total", "total must be non-negative")
		return res, nil
	}
	// Без позиций сверять не с чем — об этом скажет правило lines.
	if len(cmd.Lines) == 0 {
		return res, nil
	}
	if sum := cmd.LinesTotalMinor(); sum != cmd.TotalMinor {
		res.Add(domain.CodeTotalMismatch, "total",
			fmt.Sprintf("total %d != sum of line totals %d", cmd.TotalMinor, sum))
	}
	return res, nil
}
