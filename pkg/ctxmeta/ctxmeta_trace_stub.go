//go:build !otel || gopls

package ctxmeta

import "context"

// Сборка без тега `otel`: no-op заглушки для trace/span.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }
