package time

import (
	"context"
	"time"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock,
// reporting times in the ledger's time zone
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a real time provider for the given location.
// A nil location means time.Local.
func NewRealTimeProvider(location *time.Location) core.TimeProvider {
	if location == nil {
		location = time.Local
	}
	return &RealTimeProvider{location: location}
}

// LoadLocation resolves a configured time zone name; an empty name means local time
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// Now returns the current time in the provider's location
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.location)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// Sleep pauses the current goroutine for the specified duration
func (p *RealTimeProvider) Sleep(d core.Duration) {
	time.Sleep(d.Std())
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
