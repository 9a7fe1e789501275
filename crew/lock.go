package crew

import "time"

// Infinite makes a timed acquire block until the resource is available.
const Infinite time.Duration = -1

// Mutex is a lock with a timed acquire. The zero value is invalid; use
// NewMutex. Unlocking an unlocked mutex and using a destroyed mutex are
// undefined.
type Mutex struct {
	ch chan struct{}
}

func NewMutex() Mutex { return Mutex{ch: make(chan struct{}, 1)} }

func (m *Mutex) Valid() bool { return m.ch != nil }

func (m *Mutex) Lock() { m.ch <- struct{}{} }

// LockFor tries to acquire m within d. Infinite blocks indefinitely.
// It returns false on timeout, which is indistinguishable from any other
// failure to acquire.
func (m *Mutex) LockFor(d time.Duration) bool {
	if d < 0 {
		m.Lock()
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case m.ch <- struct{}{}:
		return true
	case <-t.C:
		return false
	}
}

func (m *Mutex) Unlock() { <-m.ch }

func (m *Mutex) Destroy() { m.ch = nil }

// Semaphore counts up to the max given at creation. Signal beyond the max
// is dropped.
type Semaphore struct {
	ch chan struct{}
}

func NewSemaphore(initial, max int) Semaphore {
	if max < 1 {
		max = 1
	}
	if initial > max {
		initial = max
	}
	s := Semaphore{ch: make(chan struct{}, max)}
	for i := 0; i < initial; i++ {
		s.ch <- struct{}{}
	}
	return s
}

func (s *Semaphore) Valid() bool { return s.ch != nil }

// Wait acquires one count, blocking until Signal provides it.
func (s *Semaphore) Wait() { <-s.ch }

// WaitFor acquires one count within d; false on timeout.
func (s *Semaphore) WaitFor(d time.Duration) bool {
	if d < 0 {
		s.Wait()
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-s.ch:
		return true
	case <-t.C:
		return false
	}
}

// TryWait acquires one count without blocking; false when none is
// available.
func (s *Semaphore) TryWait() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// Signal releases one count.
func (s *Semaphore) Signal() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

func (s *Semaphore) Destroy() { s.ch = nil }
