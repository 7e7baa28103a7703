package cache

import (
	"context"
	"sync"
	"time"

	"github.com/coocood/freecache"
	"github.com/goccy/go-json"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	evport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/event"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
)

// ListenerName identifies the cache invalidator on the event bus
const ListenerName = "report-cache"

// Minimum freecache size is 512KB
const minCacheBytes = 512 * 1024

var reportKey = []byte("employee_time_logs_report")

// ReportCache keeps the encoded admin report in freecache for a short TTL.
// Every Invalidate starts a new generation, and a report built before it is
// never stored.
type ReportCache struct {
	cache  *freecache.Cache
	ttl    int
	logger coreport.Logger

	mu         sync.Mutex
	generation uint64
}

var _ persistence.ReportCache = (*ReportCache)(nil)

// NewReportCache creates a cache of sizeMB megabytes. It returns nil when
// caching is disabled, which callers treat as "always rebuild".
func NewReportCache(sizeMB int, ttl time.Duration, logger coreport.Logger) persistence.ReportCache {
	if sizeMB <= 0 || ttl <= 0 {
		logger.Info("Report cache disabled", nil)
		return nil
	}

	sizeBytes := max(sizeMB*1024*1024, minCacheBytes)
	ttlSeconds := max(int(ttl.Seconds()), 1)

	logger.Info("Report cache initialized", map[string]any{
		"size_mb":     sizeMB,
		"ttl_seconds": ttlSeconds,
	})

	return &ReportCache{
		cache:  freecache.NewCache(sizeBytes),
		ttl:    ttlSeconds,
		logger: logger,
	}
}

// Get returns the cached report
func (c *ReportCache) Get() ([]entity.EmployeeTimeLog, bool) {
	data, err := c.cache.Get(reportKey)
	if err != nil {
		return nil, false
	}

	var report []entity.EmployeeTimeLog
	if err := json.Unmarshal(data, &report); err != nil {
		c.logger.Warn("Dropping undecodable cached report", map[string]any{
			"error": err.Error(),
		})
		c.Invalidate()
		return nil, false
	}
	return report, true
}

// Generation returns the current invalidation generation
func (c *ReportCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Set stores report if no invalidation happened since generation was read.
// An oversized report is simply not cached.
func (c *ReportCache) Set(report []entity.EmployeeTimeLog, generation uint64) bool {
	data, err := json.Marshal(report)
	if err != nil {
		c.logger.Warn("Failed to encode report for caching", map[string]any{
			"error": err.Error(),
		})
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		c.logger.Debug("Report outdated by a newer write, not cached", map[string]any{
			"generation": generation,
			"current":    c.generation,
		})
		return false
	}
	if err := c.cache.Set(reportKey, data, c.ttl); err != nil {
		c.logger.Debug("Report not cached", map[string]any{
			"bytes": len(data),
			"error": err.Error(),
		})
		return false
	}
	return true
}

// Invalidate drops the cached report and starts a new generation
func (c *ReportCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.cache.Del(reportKey)
}

// InvalidateOnEvents drops the cached report on every ledger event.
// This covers writes made by other service instances that share a backend
// and relay their events here.
func InvalidateOnEvents(cache persistence.ReportCache, subscriber evport.Subscriber) evport.Subscription {
	return subscriber.Subscribe(ListenerName, func(_ context.Context, _ entity.LedgerEvent) error {
		cache.Invalidate()
		return nil
	})
}
