package timetracking

import (
	"context"
	"sync"
	"time"

	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
)

// defaultQueueSize bounds the pending mutations per user
const defaultQueueSize = 100

// defaultIdleTimeout is how long a user's worker waits for work before exiting
const defaultIdleTimeout = time.Minute

// LedgerJob is one mutation run by a user's queue worker
type LedgerJob func(ctx context.Context) error

// LedgerManager runs ledger mutations sequentially per user.
// Each user gets one queue and one worker goroutine, created on first use
// and removed again after idleTimeout without work.
type LedgerManager struct {
	logger      coreport.Logger
	queueSize   int
	idleTimeout time.Duration

	// User-based queues for strict ordering
	userQueues     sync.Map // map[string]chan *ledgerRequest
	queueWaitGroup sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// ledgerRequest represents a queued mutation
type ledgerRequest struct {
	ctx        context.Context
	userID     string
	job        LedgerJob
	resultChan chan error
}

// NewLedgerManager creates a new ledger manager
func NewLedgerManager(logger coreport.Logger, queueSize int, idleTimeout time.Duration) *LedgerManager {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if idleTimeout <= 0 {
		idleTimeout = defaultIdleTimeout
	}

	return &LedgerManager{
		logger:      logger,
		queueSize:   queueSize,
		idleTimeout: idleTimeout,
	}
}

// Submit queues job behind every earlier job of the same user and waits for its result.
// Once queued, the job's own result is returned even if ctx ends meanwhile; a job
// whose ctx ended before it started is skipped with ctx.Err().
func (m *LedgerManager) Submit(ctx context.Context, userID string, job LedgerJob) error {
	if job == nil {
		panic("ledger job cannot be nil")
	}

	// Hold the read lock while sending so Shutdown cannot close the queue under us
	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return errs.NewLedgerError(userID, "submit", "ledger manager is shut down", errs.ErrInternalServer)
	}

	queue := m.queueFor(userID)
	resultChan := make(chan error, 1)
	req := &ledgerRequest{
		ctx:        ctx,
		userID:     userID,
		job:        job,
		resultChan: resultChan,
	}

	select {
	case queue <- req:
		m.mu.RUnlock()
	case <-ctx.Done():
		m.mu.RUnlock()
		m.logger.Warn("Context canceled while enqueueing ledger job", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}

	return <-resultChan
}

// queueFor returns the user's queue, starting its worker on first use.
// Callers must hold m.mu for reading.
func (m *LedgerManager) queueFor(userID string) chan *ledgerRequest {
	if queue, ok := m.userQueues.Load(userID); ok {
		return queue.(chan *ledgerRequest)
	}

	queueIface, loaded := m.userQueues.LoadOrStore(userID, make(chan *ledgerRequest, m.queueSize))
	queue := queueIface.(chan *ledgerRequest)
	if !loaded {
		m.logger.Debug("Starting ledger queue worker", map[string]any{
			"user_id": userID,
		})
		m.queueWaitGroup.Add(1)
		go m.processUserJobs(userID, queue)
	}
	return queue
}

// processUserJobs is the worker goroutine of one user's queue
func (m *LedgerManager) processUserJobs(userID string, queue chan *ledgerRequest) {
	defer m.queueWaitGroup.Done()

	idle := time.NewTimer(m.idleTimeout)
	defer idle.Stop()

	for {
		select {
		case req, ok := <-queue:
			if !ok {
				m.logger.Debug("Ledger queue worker stopped", map[string]any{
					"user_id": userID,
				})
				return
			}
			if err := req.ctx.Err(); err != nil {
				req.resultChan <- err
			} else {
				req.resultChan <- m.run(req)
			}
			idle.Reset(m.idleTimeout)

		case <-idle.C:
			if m.retire(userID, queue) {
				m.logger.Debug("Ledger queue worker retired after idle timeout", map[string]any{
					"user_id": userID,
				})
				return
			}
			idle.Reset(m.idleTimeout)
		}
	}
}

// retire removes an empty queue from the map. It gives up when a submitter or
// Shutdown holds m.mu, since a submitter may be about to send on queue.
func (m *LedgerManager) retire(userID string, queue chan *ledgerRequest) bool {
	if !m.mu.TryLock() {
		return false
	}
	defer m.mu.Unlock()

	if m.closed || len(queue) > 0 {
		return false
	}
	m.userQueues.Delete(userID)
	return true
}

// ActiveWorkers returns the number of user queues with a running worker
func (m *LedgerManager) ActiveWorkers() int {
	count := 0
	m.userQueues.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// run executes one job, turning a panic into an error so the worker survives
func (m *LedgerManager) run(req *ledgerRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Ledger job panicked", map[string]any{
				"user_id": req.userID,
				"panic":   r,
			})
			err = errs.NewLedgerError(req.userID, "job", "panic in ledger job", errs.ErrInternalServer)
		}
	}()
	return req.job(req.ctx)
}

// Shutdown stops accepting jobs, drains every queue and waits for the workers
func (m *LedgerManager) Shutdown() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.userQueues.Range(func(_, queueIface any) bool {
		close(queueIface.(chan *ledgerRequest))
		return true
	})
	m.mu.Unlock()

	m.queueWaitGroup.Wait()
	m.logger.Info("Ledger manager shut down", nil)
}
