package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/order-rules/internal/domain"
	"github.com/example/order-rules/internal/ports"
)

// Проверка, что CreateOrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*CreateOrderValidator)(nil)

// ErrMalformedCommand — базовая (sentinel error) ошибка разбора команды:
// битый JSON, неизвестные поля, мусор после объекта.
var ErrMalformedCommand = errors.New("malformed order command")

// ErrLookupFailed — сбой источника справочных данных во время проверки.
// Отличается от бизнес-нарушений: команда не признана ни валидной, ни невалидной.
var ErrLookupFailed = errors.New("rules data lookup failed")

// ErrNilCommand — команда не передана; ошибка вызывающего кода, а не данных.
var ErrNilCommand = errors.New("order command is nil")

// CheckFunc — одна проверка команды: возвращает найденные нарушения
// и ошибку только при сбое справочных данных.
type CheckFunc func(ctx context.Context, cmd *domain.CreateOrderCommand, data ports.RulesData) (domain.Result, error)

// Rule — именованное правило. Правила независимы: порядок выполнения
// не влияет на итоговый результат.
type Rule struct {
	Name  string
	Check CheckFunc
}

// CreateOrderValidator — декларативный набор правил для команды «создать заказ».
// Все обращения к справочникам идут через внедрённый ports.RulesData,
// так что хосты подставляют каждый свою реализацию.
type CreateOrderValidator struct {
	data  ports.RulesData
	rules []Rule
}

// NewCreateOrderValidator — конструктор с границами из cfg (нулевые поля — дефолты).
func NewCreateOrderValidator(data ports.RulesData, cfg Config) *CreateOrderValidator {
	cfg = cfg.withDefaults()
	return &CreateOrderValidator{data: data, rules: defaultRules(cfg)}
}

// Rules — имена подключённых правил (для логов и диагностики).
func (v *CreateOrderValidator) Rules() []string {
	names := make([]string, 0, len(v.rules))
	for _, r := range v.rules {
		names = append(names, r.Name)
	}
	return names
}

// ValidateCreate — прогоняет команду через все правила и сливает нарушения.
// Ошибка возвращается только при сбое справочных данных (ErrLookupFailed)
// или при nil-команде; бизнес-нарушения живут в Result.
func (v *CreateOrderValidator) ValidateCreate(ctx context.Context, cmd *domain.CreateOrderCommand) (domain.Result, error) {
	var res domain.Result
	if cmd == nil {
		return res, ErrNilCommand
	}

	for _, rule := range v.rules {
		ruleRes, err := rule.Check(ctx, cmd, v.data)
		if err != nil {
			return domain.Result{}, fmt.Errorf("%w: rule %s: %v", ErrLookupFailed, rule.Name, err)
		}
		res.Merge(ruleRes)
	}
	return res, nil
}
