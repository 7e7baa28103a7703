package presence

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	evport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/event"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/usecase"
)

// ListenerName identifies the tracker on the event bus
const ListenerName = "presence-tracker"

// DefaultPollInterval is how often the tracker re-reads every ledger
const DefaultPollInterval = 3 * time.Second

// Tracker keeps a view of who is checked in today.
// It is updated by ledger events and by a periodic full re-read for
// changes made where no event was published.
type Tracker struct {
	ledgerRepo   persistence.LedgerRepository
	subscriber   evport.Subscriber
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	pollInterval time.Duration

	mu        sync.RWMutex
	entries   map[string]usecase.PresenceEntry
	date      string
	updatedAt time.Time

	subscription evport.Subscription
	stopChan     chan struct{}
	doneChan     chan struct{}
}

var _ usecase.PresenceUseCase = (*Tracker)(nil)

// NewTracker creates a tracker; call Start to begin tracking
func NewTracker(
	ledgerRepo persistence.LedgerRepository,
	subscriber evport.Subscriber,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	pollInterval time.Duration,
) *Tracker {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &Tracker{
		ledgerRepo:   ledgerRepo,
		subscriber:   subscriber,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		pollInterval: pollInterval,
		entries:      map[string]usecase.PresenceEntry{},
	}
}

// Start loads the initial view, subscribes to ledger events and starts polling
func (t *Tracker) Start(ctx context.Context) error {
	if err := t.Refresh(ctx); err != nil {
		return err
	}

	t.subscription = t.subscriber.Subscribe(ListenerName, t.handleEvent)
	t.stopChan = make(chan struct{})
	t.doneChan = make(chan struct{})
	go t.poll()

	t.logger.Info("Presence tracker started", map[string]any{
		"poll_interval": t.pollInterval.String(),
	})
	return nil
}

// Stop unsubscribes and stops polling
func (t *Tracker) Stop() {
	if t.subscription != nil {
		t.subscription.Unsubscribe()
	}
	if t.stopChan != nil {
		close(t.stopChan)
		<-t.doneChan
		t.stopChan = nil
	}
	t.logger.Info("Presence tracker stopped", nil)
}

// poll re-reads every ledger on each tick until Stop
func (t *Tracker) poll() {
	defer close(t.doneChan)

	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-ticker.C:
			if err := t.Refresh(context.Background()); err != nil {
				t.logger.Warn("Presence refresh failed", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}
}

// Refresh rebuilds the whole view from the repository
func (t *Tracker) Refresh(ctx context.Context) error {
	ledgers, err := t.ledgerRepo.List(ctx)
	if err != nil {
		return err
	}

	now := t.timeProvider.Now()
	today := entity.CalendarDate(now)
	entries := make(map[string]usecase.PresenceEntry, len(ledgers))
	for _, ledger := range ledgers {
		if open := ledger.OpenEntryOn(today); open != nil {
			entries[ledger.UserID] = toPresenceEntry(open)
		}
	}

	t.mu.Lock()
	t.entries = entries
	t.date = today
	t.updatedAt = now
	count := len(entries)
	t.mu.Unlock()

	t.metrics.SetOpenCheckIns(count)
	return nil
}

// handleEvent re-reads the ledger named by the event and updates one entry
func (t *Tracker) handleEvent(ctx context.Context, evt entity.LedgerEvent) error {
	ledger, err := t.ledgerRepo.Get(ctx, evt.UserID)
	if err != nil && !errors.Is(err, errs.ErrLedgerNotFound) {
		return err
	}

	now := t.timeProvider.Now()
	today := entity.CalendarDate(now)

	t.mu.Lock()
	if t.date != today {
		t.dropStaleLocked(today)
	}
	var open *entity.TimeEntry
	if ledger != nil {
		open = ledger.OpenEntryOn(today)
	}
	if open != nil {
		t.entries[evt.UserID] = toPresenceEntry(open)
	} else {
		delete(t.entries, evt.UserID)
	}
	t.updatedAt = now
	count := len(t.entries)
	t.mu.Unlock()

	t.metrics.SetOpenCheckIns(count)
	return nil
}

// dropStaleLocked removes entries not dated today. Callers must hold t.mu.
func (t *Tracker) dropStaleLocked(today string) {
	for userID, entry := range t.entries {
		if entry.Date != today {
			delete(t.entries, userID)
		}
	}
	t.date = today
}

// Snapshot returns the current view ordered by user ID.
// Entries from an earlier day are hidden even before the next refresh.
func (t *Tracker) Snapshot() usecase.PresenceSnapshot {
	today := entity.CalendarDate(t.timeProvider.Now())

	t.mu.RLock()
	defer t.mu.RUnlock()

	entries := make([]usecase.PresenceEntry, 0, len(t.entries))
	for _, entry := range t.entries {
		if entry.Date == today {
			entries = append(entries, entry)
		}
	}
	slices.SortFunc(entries, func(a, b usecase.PresenceEntry) int {
		return strings.Compare(a.UserID, b.UserID)
	})

	return usecase.PresenceSnapshot{
		Date:      today,
		Entries:   entries,
		UpdatedAt: t.updatedAt,
	}
}

func toPresenceEntry(open *entity.TimeEntry) usecase.PresenceEntry {
	return usecase.PresenceEntry{
		UserID:      open.UserID,
		UserName:    open.UserName,
		Date:        open.Date,
		CheckInTime: open.CheckInTime,
	}
}
