// Package scheduler runs cancellable delayed callbacks.
package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Task is a scheduled callback.
type Task interface {
	// Cancel prevents the callback from running. It reports false when the
	// callback already ran, is running, or was cancelled before.
	Cancel() bool
}

// Scheduler schedules callbacks and tells the time they are measured against.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Task
	Now() time.Time
}

// Real schedules on the wall clock.
type Real struct{}

// NewReal returns a wall-clock scheduler.
func NewReal() *Real {
	return &Real{}
}

// Schedule runs fn on its own goroutine after delay.
func (Real) Schedule(delay time.Duration, fn func()) Task {
	return realTask{timer: time.AfterFunc(delay, fn)}
}

// Now returns the current UTC time.
func (Real) Now() time.Time {
	return time.Now().UTC()
}

type realTask struct {
	timer *time.Timer
}

func (t realTask) Cancel() bool {
	return t.timer.Stop()
}

// Manual is a deterministic clock for tests. Callbacks run synchronously
// inside Advance, ordered by deadline and then by scheduling order.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

// NewManual returns a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

type manualTask struct {
	m        *Manual
	deadline time.Time
	seq      uint64
	fn       func()
}

// Schedule queues fn to run once the clock reaches now+delay.
func (m *Manual) Schedule(delay time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTask{m: m, deadline: m.now.Add(delay), seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Now returns the manual clock time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of queued callbacks.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance moves the clock forward by d and runs every callback that became
// due, including ones scheduled by callbacks during the advance.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()

	for {
		t := m.popDue()
		if t == nil {
			return
		}
		t.fn()
	}
}

func (m *Manual) popDue() *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	sort.SliceStable(m.tasks, func(i, j int) bool {
		if !m.tasks[i].deadline.Equal(m.tasks[j].deadline) {
			return m.tasks[i].deadline.Before(m.tasks[j].deadline)
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
	if len(m.tasks) == 0 || m.tasks[0].deadline.After(m.now) {
		return nil
	}
	t := m.tasks[0]
	m.tasks = m.tasks[1:]
	return t
}

func (t *manualTask) Cancel() bool {
	m := t.m
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, queued := range m.tasks {
		if queued == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true
		}
	}
	return false
}
