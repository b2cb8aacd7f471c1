package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/example/order-rules/internal/domain"
	"github.com/example/order-rules/internal/ports"
	"github.com/example/order-rules/pkg/metrics"
)

// Проверка, что LRUReportCache удовлетворяет интерфейсу ReportCache.
var _ ports.ReportCache = (*LRUReportCache)(nil)

type entry struct {
	number    string
	report    *domain.ValidationReport
	expiresAt time.Time
}

// LRUReportCache — кэш отчётов с вытеснением по LRU и TTL.
// Ключ — номер заказа; наружу всегда отдаются копии.
type LRUReportCache struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewLRUReportCache — конструктор; ttl <= 0 отключает истечение.
func NewLRUReportCache(capacity int, ttl time.Duration) *LRUReportCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUReportCache{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — отчёт по номеру заказа; продлевает TTL при попадании.
func (c *LRUReportCache) Get(_ context.Context, number string) (*domain.ValidationReport, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[number]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneReport(ent.report), true
}

// Set — сохранить/обновить отчёт; при переполнении вытесняется LRU-хвост.
func (c *LRUReportCache) Set(_ context.Context, report *domain.ValidationReport) error {
	if report == nil || report.OrderNumber == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[report.OrderNumber]; ok {
		ent := elem.Value.(*entry)
		ent.report = cloneReport(report)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		number:    report.OrderNumber,
		report:    cloneReport(report),
		expiresAt: c.expiryFrom(now),
	})
	c.index[report.OrderNumber] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// WarmUp — массовая загрузка с поддержкой отмены контекста.
func (c *LRUReportCache) WarmUp(ctx context.Context, reports []*domain.ValidationReport) error {
	for _, report := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Set(ctx, report); err != nil {
			return err
		}
	}
	return nil
}

// ------вспомогательные функции------

// evictLRU — удаляет наименее используемый элемент.
func (c *LRUReportCache) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *LRUReportCache) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.index, ent.number)
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *LRUReportCache) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — момент истечения для текущего времени.
func (c *LRUReportCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет элементы с истёкшим TTL из хвоста до первого актуального.
func (c *LRUReportCache) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*entry)
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
			metrics.CacheSize.Set(float64(len(c.index)))
			continue
		}
		return
	}
}

// cloneReport — копия отчёта, чтобы внешние изменения не отражались на данных внутри кэша.
func cloneReport(report *domain.ValidationReport) *domain.ValidationReport {
	if report == nil {
		return nil
	}
	cloned := *report
	if report.Errors != nil {
		cloned.Errors = append([]domain.RuleError(nil), report.Errors...)
	}
	return &cloned
}
