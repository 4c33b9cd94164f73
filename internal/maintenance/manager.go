// ABOUTME: Scheduled store maintenance driven by robfig/cron.
// ABOUTME: Refreshes SQLite planner stats and reclaims KV value-log space.
package maintenance

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Optimizer is satisfied by *storage.DB.
type Optimizer interface {
	Optimize(ctx context.Context) error
}

// Collector is satisfied by *kv.Store.
type Collector interface {
	RunGC() error
}

// Status reports the scheduler state.
type Status struct {
	Running  bool       `json:"running"`
	Schedule string     `json:"schedule,omitempty"`
	LastRun  *time.Time `json:"last_run,omitempty"`
	LastErr  string     `json:"last_error,omitempty"`
	NextRun  *time.Time `json:"next_run,omitempty"`
}

// Manager runs maintenance on a cron schedule.
type Manager struct {
	store       Optimizer
	kv          Collector
	cron        *cron.Cron
	cronEntryID cron.EntryID
	schedule    string
	mu          sync.RWMutex
	running     bool
	lastRun     time.Time
	lastErr     error
	runMu       sync.Mutex
}

// New creates a Manager. Either dependency may be nil.
func New(store Optimizer, kv Collector) *Manager {
	return &Manager{
		store: store,
		kv:    kv,
		cron:  cron.New(),
	}
}

// Start registers the maintenance job on schedule and starts the scheduler.
func (m *Manager) Start(schedule string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return nil
	}

	id, err := m.cron.AddFunc(schedule, m.scheduledRun)
	if err != nil {
		return err
	}
	m.cronEntryID = id
	m.schedule = schedule
	m.cron.Start()
	m.running = true

	log.Info().Str("schedule", schedule).Msg("Maintenance scheduler started")
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.cron.Remove(m.cronEntryID)
	m.cronEntryID = 0
	m.running = false
	m.mu.Unlock()

	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("Maintenance scheduler stopped")
}

// Status returns the scheduler state.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Status{Running: m.running, Schedule: m.schedule}
	if !m.lastRun.IsZero() {
		last := m.lastRun
		s.LastRun = &last
	}
	if m.lastErr != nil {
		s.LastErr = m.lastErr.Error()
	}
	if m.cronEntryID != 0 {
		if next := m.cron.Entry(m.cronEntryID).Next; !next.IsZero() {
			s.NextRun = &next
		}
	}
	return s
}

// RunOnce runs every maintenance task now. Both tasks run even if the
// first fails; the errors are joined.
func (m *Manager) RunOnce(ctx context.Context) error {
	m.runMu.Lock()
	defer m.runMu.Unlock()

	start := time.Now()
	var errs []error
	if m.store != nil {
		if err := m.store.Optimize(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if m.kv != nil {
		if err := m.kv.RunGC(); err != nil {
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)

	m.mu.Lock()
	m.lastRun = start
	m.lastErr = err
	m.mu.Unlock()

	log.Debug().Dur("took", time.Since(start)).Err(err).Msg("Maintenance run finished")
	return err
}

func (m *Manager) scheduledRun() {
	if err := m.RunOnce(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Scheduled maintenance failed")
	}
}
