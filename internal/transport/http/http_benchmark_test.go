//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/order-rules/internal/domain"
)

// --- Бенчмарки ---

func benchReport(number string) *domain.ValidationReport {
	return &domain.ValidationReport{
		OrderNumber: number,
		CustomerID:  "bench-cust",
		Valid:       false,
		Errors: []domain.RuleError{
			{Code: domain.CodeLineQty, Field: "lines[0].qty", Message: "qty must be positive"},
		},
		ValidatedAt: time.Now().UTC(),
	}
}

// Базовый бенч: GetReport — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_GetReport(b *testing.B) {
	log := nopLogger{}
	rep := benchReport("ORD-BENCH")
	h := NewHandler(svcOne{r: rep}, log, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/report/"+rep.OrderNumber)
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/report/"+rep.OrderNumber)
	})
}

// Потолок без маршалинга: тот же отчёт, но заранее закодированный JSON
// Показывает, сколько «ест» encoding/json в вашем хендлере.
func BenchmarkHTTP_GetReport_PreMarshaledBytes(b *testing.B) {
	rep := benchReport("ORD-RAW")
	raw, _ := json.Marshal(rep)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// отдельный эндпоинт, который просто отдаёт готовый []byte
	r.GET("/report/:number", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/report/"+rep.OrderNumber)
}

// Пагинация: 10/50/100 — измеряем рост аллокаций и времени
func BenchmarkHTTP_ListByCustomer(b *testing.B) {
	log := nopLogger{}

	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			// готовим список из n отчётов
			list := make([]*domain.ValidationReport, 0, n)
			for i := 0; i < n; i++ {
				list = append(list, benchReport("ORD-"+strconv.Itoa(i)))
			}
			h := NewHandler(svcList{list: list}, log, 2*time.Second)

			lean := makeLeanRouter(h)
			benchServeGET(b, lean, "/customer/bench-cust/reports?limit="+strconv.Itoa(n))
		})
	}
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	log := nopLogger{}
	h := NewHandler(svcOne{r: benchReport("ORD-404")}, log, 2*time.Second)
	r := makeLeanRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

type svcOne struct{ r *domain.ValidationReport }

func (s svcOne) ValidateRaw(context.Context, []byte) (*domain.ValidationReport, error) {
	return s.r, nil
}
func (s svcOne) Report(context.Context, string) (*domain.ValidationReport, error) { return s.r, nil }
func (s svcOne) ReportsByCustomer(context.Context, string, int, int) ([]*domain.ValidationReport, error) {
	return []*domain.ValidationReport{s.r}, nil
}

// для списка: заранее подготовленная выборка N элементов (без аллокаций на каждом вызове)
type svcList struct{ list []*domain.ValidationReport }

func (s svcList) ValidateRaw(context.Context, []byte) (*domain.ValidationReport, error) {
	return s.list[0], nil
}
func (s svcList) Report(context.Context, string) (*domain.ValidationReport, error) {
	return s.list[0], nil
}
func (s svcList) ReportsByCustomer(context.Context, string, int, int) ([]*domain.ValidationReport, error) {
	return s.list, nil
}

// --- функции-помощники ---

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.GET("/report/:number", h.getReportByNumber)
	r.GET("/customer/:id/reports", h.listReportsByCustomer)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "", "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			// вычитываем тело
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
