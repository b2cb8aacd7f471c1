package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/example/order-rules/internal/domain"
	"github.com/example/order-rules/internal/ports"
)

// CommandFromJSON — строгий разбор команды из JSON:
// запрещаем неизвестные поля и мусор после объекта.
func CommandFromJSON(raw []byte) (*domain.CreateOrderCommand, error) {
	var cmd domain.CreateOrderCommand
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCommand, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformedCommand)
	}
	return &cmd, nil
}

// ValidateCommandFromJSON — разбор + прогон правил.
// Ошибка: ErrMalformedCommand при битом JSON, ErrLookupFailed при сбое справочников.
func ValidateCommandFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.CreateOrderCommand, domain.Result, error) {
	cmd, err := CommandFromJSON(raw)
	if err != nil {
		return nil, domain.Result{}, err
	}
	res, err := validator.ValidateCreate(ctx, cmd)
	if err != nil {
		return nil, domain.Result{}, err
	}
	return cmd, res, nil
}
