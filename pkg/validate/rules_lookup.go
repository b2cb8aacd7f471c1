package validate

import (
	"context"
	"fmt"

	"github.com/example/order-rules/internal/domain"
	"github.com/example/order-rules/internal/ports"
)

// Правила со справочными данными. Каждое молча пропускает команду,
// если его полевую предпосылку уже забраковало полевое правило
// (пустой id/sku) — иначе в отчёте будет дублирующий шум.

// checkCustomerExists — клиент существует и не заблокирован/архивирован.
func checkCustomerExists(ctx context.Context, cmd *domain.CreateOrderCommand, data ports.RulesData) (domain.Result, error) {
	var res domain.Result
	if cmd.CustomerID == "" {
		return res, nil
	}

	customer, err := data.CustomerByID(ctx, cmd.CustomerID)
	if err != nil {
		return res, fmt.Errorf("customer %q: %w", cmd.CustomerID, err)
	}
	switch {
	case customer == nil:
		res.Add(domain.CodeCustomerNotFound, "customer_id",
			fmt.Sprintf("customer %q does not exist", cmd.CustomerID))
	case !customer.Active():
		res.Add(domain.CodeCustomerInactive, "customer_id",
			fmt.Sprintf("customer %q is %s", cmd.CustomerID, customer.Status))
	}
	return res, nil
}

// checkOrderNumberUnique — номер заказа ещё не использовался.
func checkOrderNumberUnique(ctx context.Context, cmd *domain.CreateOrderCommand, data ports.RulesData) (domain.Result, error) {
	var res domain.Result
	if cmd.OrderNumber == "" {
		return res, nil
	}

	taken, err := data.OrderNumberTaken(ctx, cmd.OrderNumber)
	if err != nil {
		return res, fmt.Errorf("order number %q: %w", cmd.OrderNumber, err)
	}
	if taken {
		res.Add(domain.CodeOrderNumberTaken, "order_number",
			fmt.Sprintf("order_number %q is already taken", cmd.OrderNumber))
	}
	return res, nil
}

// checkCatalog — каждая позиция против каталога: товар существует,
// не снят с продажи, цена в допуске от каталожной, остатка хватает.
// Один lookup на артикул; дубликаты артикулов уже пойманы полевым правилом.
func checkCatalog(cfg Config) CheckFunc {
	return func(ctx context.Context, cmd *domain.CreateOrderCommand, data ports.RulesData) (domain.Result, error) {
		var res domain.Result

		looked := make(map[string]*domain.Product, len(cmd.Lines))
		for i := range cmd.Lines {
			line := &cmd.Lines[i]
			if line.SKU == "" {
				continue
			}
			field := fmt.Sprintf("lines[%d]", i)

			product, ok := looked[line.SKU]
			if !ok {
				var err error
				product, err = data.ProductBySKU(ctx, line.SKU)
				if err != nil {
					return domain.Result{}, fmt.Errorf("product %q: %w", line.SKU, err)
				}
				looked[line.SKU] = product
			}

			if product == nil {
				res.Add(domain.CodeProductNotFound, field+".sku",
					fmt.Sprintf("product %q does not exist", line.SKU))
				continue
			}
			if product.Status == domain.ProductStatusDiscontinued {
				res.Add(domain.CodeProductDiscontinued, field+".sku",
					fmt.Sprintf("product %q is discontinued", line.SKU))
			}
			if line.UnitPriceMinor >= 0 && !withinTolerance(line.UnitPriceMinor, product.PriceMinor, cfg.PriceToleranceBP) {
				res.Add(domain.CodePriceOutOfTolerance, field+".unit_price",
					fmt.Sprintf("unit_price %d deviates from catalog price %d beyond %d bp",
						line.UnitPriceMinor, product.PriceMinor, cfg.PriceToleranceBP))
			}
			if line.Qty > 0 && line.Qty > product.Stock {
				res.Add(domain.CodeInsufficientStock, field+".qty",
					fmt.Sprintf("qty %d exceeds stock %d for %q", line.Qty, product.Stock, line.SKU))
			}
		}
		return res, nil
	}
}

// withinTolerance — |price - catalog| не больше catalog * bp / 10000.
func withinTolerance(price, catalog, bp int64) bool {
	diff := price - catalog
	if diff < 0 {
		diff = -diff
	}
	return diff*10000 <= catalog*bp
}
