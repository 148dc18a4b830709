package service

import (
	"sync"

	"github.com/QuantumCastro/L-Artisan/internal/scheduler"
)

// sessionLocks hands out one mutex per session id and forgets it once no
// caller holds or waits for it.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*refMutex)}
}

func (l *sessionLocks) lock(id string) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &refMutex{}
		l.locks[id] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		l.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func (l *sessionLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

// taskRegistry tracks the scheduled tasks of every session by key.
type taskRegistry struct {
	mu    sync.Mutex
	tasks map[string]map[string]scheduler.Task
}

func newTaskRegistry() *taskRegistry {
	return &taskRegistry{tasks: make(map[string]map[string]scheduler.Task)}
}

func (r *taskRegistry) add(sessionID, key string, t scheduler.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byKey, ok := r.tasks[sessionID]
	if !ok {
		byKey = make(map[string]scheduler.Task)
		r.tasks[sessionID] = byKey
	}
	byKey[key] = t
	scheduledTasks.Inc()
}

// done forgets a task that ran. It reports false when the task had already
// been removed.
func (r *taskRegistry) done(sessionID, key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(sessionID, key) != nil
}

// cancel stops and forgets one task.
func (r *taskRegistry) cancel(sessionID, key string) bool {
	r.mu.Lock()
	t := r.removeLocked(sessionID, key)
	r.mu.Unlock()

	return t != nil && t.Cancel()
}

// cancelAll stops and forgets every task of a session and returns how many
// were prevented from running.
func (r *taskRegistry) cancelAll(sessionID string) int {
	r.mu.Lock()
	byKey := r.tasks[sessionID]
	delete(r.tasks, sessionID)
	scheduledTasks.Sub(float64(len(byKey)))
	r.mu.Unlock()

	n := 0
	for _, t := range byKey {
		if t.Cancel() {
			n++
		}
	}
	return n
}

// has reports whether a task is registered under key.
func (r *taskRegistry) has(sessionID, key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tasks[sessionID][key]
	return ok
}

func (r *taskRegistry) pending(sessionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks[sessionID])
}

func (r *taskRegistry) removeLocked(sessionID, key string) scheduler.Task {
	byKey, ok := r.tasks[sessionID]
	if !ok {
		return nil
	}
	t, ok := byKey[key]
	if !ok {
		return nil
	}
	delete(byKey, key)
	if len(byKey) == 0 {
		delete(r.tasks, sessionID)
	}
	scheduledTasks.Dec()
	return t
}
