// Package mem is the accounted heap of mkbase. Every block the substrate
// hands out is booked against two process-wide counters: the bytes that
// are currently live and the bytes ever allocated. Build programs can read
// both to watch their own memory behaviour without attaching a profiler.
package mem

import (
	"fmt"
	"os"
	"sync/atomic"
)

var (
	live       atomic.Uint64
	cumulative atomic.Uint64
)

// Assertions enables runtime checks for contract violations like a
// shrinking Realloc. With assertions off the violating operation is
// refused and reported through OnWarn.
var Assertions = false

// OnWarn reports recoverable misuse. The default writes to stderr; package
// mklog replaces it with the leveled logger as soon as it is linked in.
var OnWarn = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Alloc returns a zeroed block of n bytes, booked on both counters.
// n <= 0 yields nil.
func Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}
	live.Add(uint64(n))
	cumulative.Add(uint64(n))
	return make([]byte, n)
}

// Realloc grows b to n bytes, keeping its contents and zeroing the tail.
// The returned block may be a different one. Shrinking is a contract
// violation: it panics with Assertions set and is refused otherwise.
func Realloc(b []byte, n int) []byte {
	switch {
	case n < len(b):
		if Assertions {
			panic(fmt.Sprintf("mem: realloc %d -> %d bytes shrinks the block", len(b), n))
		}
		OnWarn("mem: realloc %d -> %d bytes shrinks the block, refused", len(b), n)
		return b
	case n == len(b):
		return b
	}
	nb := make([]byte, n)
	copy(nb, b)
	delta := uint64(n - len(b))
	live.Add(delta)
	cumulative.Add(delta)
	return nb
}

// Free gives the block's bytes back to the live counter. Freeing nil is
// reported as a warning and ignored.
func Free(b []byte) {
	if b == nil {
		OnWarn("mem: free of nil block")
		return
	}
	live.Add(^uint64(len(b) - 1))
}

// AccountAlloc books n bytes of typed storage that cannot go through
// Alloc, e.g. the element backing of a vec.Array.
func AccountAlloc(n int) {
	if n <= 0 {
		return
	}
	live.Add(uint64(n))
	cumulative.Add(uint64(n))
}

// AccountFree is the counterpart of AccountAlloc.
func AccountFree(n int) {
	if n <= 0 {
		return
	}
	live.Add(^uint64(n - 1))
}

// Live returns the bytes currently booked as allocated.
func Live() uint64 { return live.Load() }

// Cumulative returns the bytes ever booked, never decreasing.
func Cumulative() uint64 { return cumulative.Load() }
