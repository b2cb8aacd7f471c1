package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/example/order-rules/internal/domain"
	"github.com/example/order-rules/internal/ports"
)

// JSONLResult — статистика проверки потока JSONL.
type JSONLResult struct {
	ValidLinesCount     int // команды, прошедшие все правила
	InvalidLinesCount   int // команды с нарушениями правил
	MalformedLinesCount int // строки, которые не удалось разобрать
}

// ValidateJSONLStream — читает JSONL из reader'а, проверяет каждую строку
// и пишет в writer канонический JSON-отчёт одной строкой на команду.
// Битые строки пропускаются (считаются в MalformedLinesCount);
// сбой справочных данных прерывает поток с ошибкой.
func ValidateJSONLStream(ctx context.Context, validator ports.OrderValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		cmd, cmdRes, err := ValidateCommandFromJSON(ctx, validator, lineBytes)
		if errors.Is(err, ErrMalformedCommand) {
			res.MalformedLinesCount++
			continue
		}
		if err != nil {
			return res, err
		}

		report := domain.NewReport(cmd, cmdRes, time.Now())
		if cmdRes.OK() {
			res.ValidLinesCount++
		} else {
			res.InvalidLinesCount++
		}

		marshal, _ := json.Marshal(report) // компактный JSON, одна строка на отчёт
		if _, err := ow.Write(marshal); err != nil {
			return res, fmt.Errorf("write report line: %w", err)
		}
		if _, err := ow.Write([]byte("\n")); err != nil {
			return res, fmt.Errorf("write newline: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
