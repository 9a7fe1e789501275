package crew

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestMutex_timed(t *testing.T) {
	m := NewMutex()
	if !m.Valid() {
		t.Fatal("fresh mutex invalid")
	}
	if !m.LockFor(10 * time.Millisecond) {
		t.Fatal("uncontended timed lock fails")
	}
	if m.LockFor(10 * time.Millisecond) {
		t.Fatal("locked mutex acquired again")
	}
	m.Unlock()
	if !m.LockFor(Infinite) {
		t.Fatal("infinite lock fails")
	}
	m.Unlock()
	m.Destroy()
	if m.Valid() {
		t.Error("destroyed mutex still valid")
	}
}

func TestSemaphore(t *testing.T) {
	s := NewSemaphore(1, 2)
	s.Wait() // takes the initial count
	if s.WaitFor(5 * time.Millisecond) {
		t.Fatal("empty semaphore acquired")
	}
	s.Signal()
	s.Signal()
	s.Signal() // beyond max, dropped
	s.Wait()
	s.Wait()
	if s.WaitFor(5 * time.Millisecond) {
		t.Fatal("signal beyond max was kept")
	}
}

func TestSemaphore_tryWait(t *testing.T) {
	s := NewSemaphore(0, 4)
	if s.TryWait() {
		t.Fatal("empty semaphore acquired")
	}
	s.Signal()
	if !s.TryWait() {
		t.Fatal("present count not acquired")
	}
	if s.TryWait() {
		t.Fatal("count acquired twice")
	}
}

func TestCrew_identities(t *testing.T) {
	resetIDs()
	var c Crew
	seen := make(chan uint32, 3)
	for i := 0; i < 3; i++ {
		id, err := c.Go(func(w uint32, _ any) { seen <- w }, nil)
		if err != nil {
			t.Fatal(err)
		}
		if id == 0 || id == AnyWorker {
			t.Fatalf("bad identity %d", id)
		}
	}
	c.Join()
	close(seen)
	got := map[uint32]bool{}
	for w := range seen {
		got[w] = true
	}
	for id := uint32(1); id <= 3; id++ {
		if !got[id] {
			t.Errorf("identity %d never ran", id)
		}
	}
	if c.Active() != 0 {
		t.Errorf("%d workers active after join", c.Active())
	}
}

func TestCrew_bounded(t *testing.T) {
	resetIDs()
	var c Crew
	var ran atomic.Int32
	for i := 0; i < MaxWorkers; i++ {
		if _, err := c.Go(func(uint32, any) { ran.Add(1) }, nil); err != nil {
			t.Fatalf("worker %d refused: %s", i, err)
		}
	}
	if _, err := c.Go(func(uint32, any) {}, nil); err == nil {
		t.Error("identity space not bounded")
	}
	c.Join()
	if n := ran.Load(); int(n) != MaxWorkers {
		t.Errorf("%d jobs ran", n)
	}
}

func TestCrew_params(t *testing.T) {
	resetIDs()
	var c Crew
	res := make(chan int, 1)
	if _, err := c.Go(func(_ uint32, p any) { res <- p.(int) * 2 }, 21); err != nil {
		t.Fatal(err)
	}
	c.Join()
	if v := <-res; v != 42 {
		t.Errorf("job got params %d", v)
	}
}
