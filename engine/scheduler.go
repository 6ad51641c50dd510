package engine

import (
	"context"
	"reflect"
	"time"
)

// System is one step of a frame: input, simulation or drawing.
type System interface {
	Execute(frame *Frame)
}

// Frame is passed to every system during one scheduler tick.
type Frame struct {
	DeltaTime float64
	Session   *Session

	defers []func()
}

// Defer queues fn to run after every system of the frame has executed.
func (f *Frame) Defer(fn func()) {
	f.defers = append(f.defers, fn)
}

func (f *Frame) flush() {
	for _, fn := range f.defers {
		fn()
	}
	f.defers = f.defers[:0]
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStats struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs registered systems in order against a session.
type Scheduler struct {
	session *Session
	systems []System
	stats   []*systemStats
}

// NewScheduler creates a scheduler for the given session.
func NewScheduler(session *Session) *Scheduler {
	return &Scheduler{session: session}
}

// Register appends a system. Systems run in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	s.stats = append(s.stats, &systemStats{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time.
func (s *Scheduler) Once(dt float64) {
	frame := &Frame{DeltaTime: dt, Session: s.session}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.stats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration
		stats.minDuration = min(stats.minDuration, duration)
		stats.maxDuration = max(stats.maxDuration, duration)
	}

	frame.flush()
}

// Run executes all systems at the given interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	out := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.stats)),
	}

	for i, st := range s.stats {
		avg := time.Duration(0)
		if st.executionCount > 0 {
			avg = st.totalDuration / time.Duration(st.executionCount)
		}
		out.Systems[i] = SystemStats{
			Name:           st.name,
			ExecutionCount: st.executionCount,
			MinDuration:    st.minDuration,
			MaxDuration:    st.maxDuration,
			AvgDuration:    avg,
			LastDuration:   st.lastDuration,
			TotalDuration:  st.totalDuration,
		}
		out.TotalExecutions += st.executionCount
	}
	return out
}
