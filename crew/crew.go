// Package crew runs the bounded worker pool of mkbase and the locking
// primitives the substrate shares with build programs. Workers are plain
// goroutines with a stable small identity, 0 being the main "worker".
// There is no work queue; orchestration is left to clients.
package crew

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"

	"github.com/mkforge/mkbase/mem"
)

// AnyWorker names no worker in particular. The logger prints it as "??"
// and the scratch pool maps it to the main worker's buffers.
const AnyWorker = ^uint32(0)

// MaxWorkers bounds how many worker identities can ever be handed out.
// Clamped to 1..16 on first use; change it before spawning workers.
var MaxWorkers = 8

func clampWorkers() {
	if MaxWorkers < 1 {
		MaxWorkers = 1
	} else if MaxWorkers > 16 {
		MaxWorkers = 16
	}
}

var multiThreaded atomic.Bool

// SetMultiThreaded tells the substrate whether more than one thread is
// live. Build programs set it before spawning workers and clear it after
// joining; the logger takes its mutex only while it is set.
func SetMultiThreaded(on bool) { multiThreaded.Store(on) }

func MultiThreaded() bool { return multiThreaded.Load() }

// identity 0 is the main thread
var idSeq atomic.Uint32

// A Job receives the identity of the worker running it plus the params
// given to Go. Jobs run to completion; there is no cancellation token.
type Job func(worker uint32, params any)

// Crew tracks the workers spawned through it. The zero value is ready to
// use.
type Crew struct {
	wg     sync.WaitGroup
	mu     sync.Mutex
	active *bitset.BitSet
}

// Go reserves the next worker identity and runs job under it. Identities
// are handed out monotonically and never reused; once MaxWorkers of them
// are taken Go fails.
func (c *Crew) Go(job Job, params any) (uint32, error) {
	clampWorkers()
	id := idSeq.Add(1)
	if int(id) > MaxWorkers {
		return AnyWorker, fmt.Errorf("crew: all %d worker identities taken", MaxWorkers)
	}
	c.mu.Lock()
	if c.active == nil {
		c.active = bitset.New(uint(MaxWorkers + 1))
	}
	c.active.Set(uint(id))
	c.mu.Unlock()
	c.wg.Add(1)
	mem.Fence() // publish the identity before the job can observe it
	go func() {
		defer func() {
			c.mu.Lock()
			c.active.Clear(uint(id))
			c.mu.Unlock()
			mem.Fence()
			c.wg.Done()
		}()
		job(id, params)
	}()
	return id, nil
}

// Join blocks until all workers spawned through c are done.
func (c *Crew) Join() { c.wg.Wait() }

// Active returns how many workers of c are currently running.
func (c *Crew) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return 0
	}
	return int(c.active.Count())
}

// Running reports whether worker id of c is currently live.
func (c *Crew) Running(id uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active != nil && c.active.Test(uint(id))
}
