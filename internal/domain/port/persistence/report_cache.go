package persistence

import (
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
)

// ReportCache keeps the latest admin report for a short time
type ReportCache interface {
	// Get returns the cached report and true on a hit
	Get() ([]entity.EmployeeTimeLog, bool)
	// Generation returns the current invalidation generation; read it before
	// building a report and pass it to Set
	Generation() uint64
	// Set stores the report unless the cache was invalidated after generation
	// was read. It reports whether the report was stored.
	Set(report []entity.EmployeeTimeLog, generation uint64) bool
	// Invalidate drops the cached report and starts a new generation
	Invalidate()
}
