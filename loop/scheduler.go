package loop

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          uint64
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

// registration is a system plus its running timings.
type registration struct {
	name   string
	system System

	runs  int64
	min   time.Duration
	max   time.Duration
	last  time.Duration
	total time.Duration
}

func (r *registration) observe(d time.Duration) {
	if r.runs == 0 || d < r.min {
		r.min = d
	}
	r.max = max(r.max, d)
	r.last = d
	r.total += d
	r.runs++
}

func (r *registration) stats() SystemStats {
	st := SystemStats{
		Name:           r.name,
		ExecutionCount: r.runs,
		MinDuration:    r.min,
		MaxDuration:    r.max,
		LastDuration:   r.last,
		TotalDuration:  r.total,
	}
	if r.runs > 0 {
		st.AvgDuration = r.total / time.Duration(r.runs)
	}
	return st
}

// binder is implemented by *Singleton[T].
type binder interface {
	Init(resources *Resources)
}

// Scheduler runs registered systems in order, one frame at a time.
type Scheduler struct {
	resources *Resources
	systems   []*registration
	commands  *Commands

	frames     uint64
	stopped    bool
	stopReason string
}

// NewScheduler creates a scheduler over the given resources.
func NewScheduler(resources *Resources) *Scheduler {
	return &Scheduler{
		resources: resources,
		commands:  newCommands(),
	}
}

// Resources returns the store shared by all systems.
func (s *Scheduler) Resources() *Resources {
	return s.resources
}

// Register adds a system, named after its type, and binds its Singleton fields.
func (s *Scheduler) Register(system System) {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	s.RegisterNamed(t.Name(), system)
}

// RegisterNamed adds a system under an explicit name, used for stats.
func (s *Scheduler) RegisterNamed(name string, system System) {
	s.bindSingletons(system)
	s.systems = append(s.systems, &registration{name: name, system: system})
}

// bindSingletons calls Init on every exported Singleton field of a struct
// system. Other systems are left alone.
func (s *Scheduler) bindSingletons(system System) {
	v := reflect.ValueOf(system)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()

	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() || !strings.HasPrefix(field.Type().Name(), "Singleton[") {
			continue
		}
		b, ok := field.Addr().Interface().(binder)
		if !ok {
			panic("loop: singleton field " + v.Type().Field(i).Name + " has no Init method")
		}
		b.Init(s.resources)
	}
}

// Once executes all registered systems once with the given delta time, then
// flushes the frame's commands. It reports whether a system asked to stop.
// Once does nothing after a stop.
func (s *Scheduler) Once(dt float64) bool {
	if s.stopped {
		return true
	}

	s.frames++
	frame := newUpdateFrame(dt, s.frames, s.resources, s.commands)

	for _, reg := range s.systems {
		start := time.Now()
		reg.system.Execute(frame)
		reg.observe(time.Since(start))
	}

	if stop, reason := s.commands.Flush(); stop {
		s.stopped = true
		s.stopReason = reason
	}
	return s.stopped
}

// Run executes all systems at the given interval until a system requests a
// stop, which returns nil, or the context is cancelled, which returns the
// context's error.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if s.Once(dt) {
				return nil
			}
		}
	}
}

// Stopped reports whether a system requested a stop, and the reason it gave.
func (s *Scheduler) Stopped() (bool, string) {
	return s.stopped, s.stopReason
}

// GetStats returns statistics about system execution. Min and average
// durations are zero for a system that has not run yet.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, 0, len(s.systems)),
	}
	for _, reg := range s.systems {
		stats.Systems = append(stats.Systems, reg.stats())
		stats.TotalExecutions += reg.runs
	}
	return stats
}
