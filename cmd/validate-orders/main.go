package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	refmem "github.com/example/order-rules/internal/refdata/memory"
	"github.com/example/order-rules/pkg/validate"
)

// CLI-приложение для офлайн-валидации команд заказов по снимку справочников.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	refdataPath := flag.String("refdata", "", "path to reference data snapshot (.json)")
	flag.Parse()

	if *refdataPath == "" {
		fmt.Fprintln(os.Stderr, "missing required -refdata flag")
		os.Exit(2)
	}

	snapshot, err := refmem.LoadSnapshot(*refdataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load refdata snapshot: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	orderValidator := validate.NewCreateOrderValidator(refmem.NewSnapshotRulesData(snapshot), validate.DefaultConfig())

	format := validate.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	if *inputPath == "" {
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
		summary, err := validate.ValidateFile(ctx, orderValidator, "/dev/stdin", format, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
		return
	}

	summary, err := validate.ValidateFile(ctx, orderValidator, *inputPath, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
