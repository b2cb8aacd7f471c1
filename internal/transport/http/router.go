package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/example/order-rules/internal/ports"
	"github.com/example/order-rules/pkg/httpx"
	"github.com/example/order-rules/pkg/validate"
)

// maxCommandBody — верхняя граница тела POST /orders/validate.
const maxCommandBody = 1 << 20

type Handler struct {
	service    ports.ValidationService
	log        ports.Logger
	reqTimeout time.Duration // 0 — без таймаута на хендлер
}

func NewHandler(service ports.ValidationService, log ports.Logger, reqTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, reqTimeout: reqTimeout}
}

// NewRouter — собирает gin-движок: recovery, request-id, логирование,
// опциональный otel-трейсинг (otelServiceName != "") и маршруты API.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/orders/validate", h.validateOrder)
	r.GET("/report/:number", h.getReportByNumber)
	r.GET("/customer/:id/reports", h.listReportsByCustomer)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// reqCtx — контекст запроса с таймаутом хендлера (если задан).
func (h *Handler) reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request.Context()
	if h.reqTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.reqTimeout)
}

// validateOrder — POST /orders/validate: прогоняет команду по правилам.
// 200 — команда валидна; 422 — есть бизнес-нарушения (в теле отчёт);
// 400 — битый JSON; 500 — сбой справочников/БД.
func (h *Handler) validateOrder(c *gin.Context) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxCommandBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	report, err := h.service.ValidateRaw(ctx, raw)
	switch {
	case err == nil:
		if report.Valid {
			c.JSON(http.StatusOK, report)
			return
		}
		c.JSON(http.StatusUnprocessableEntity, report)
	case errors.Is(err, validate.ErrMalformedCommand):
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed order command"})
	default:
		h.log.Errorf(ctx, "ValidateRaw failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) getReportByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty order number"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	report, err := h.service.Report(ctx, number)
	if err != nil {
		h.log.Errorf(ctx, "Report failed number=%s err=%v", number, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) listReportsByCustomer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty customer id"})
		return
	}

	// limit/offset с безопасными дефолтами и границами
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	reports, err := h.service.ReportsByCustomer(ctx, id, limit, offset)
	if err != nil {
		h.log.Errorf(ctx, "ReportsByCustomer failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, reports)
}
