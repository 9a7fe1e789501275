// Package scratch hands out transient, zeroed character buffers for
// formatting work. The pool is a process-wide grid with one row per
// worker identity and Slots buffers per row; a rotating counter picks the
// next slot. A handed-out buffer stays valid until the counter has
// advanced Slots more times, so callers must keep fewer than Slots
// buffers in flight at once.
package scratch

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/mkforge/mkbase/crew"
	"github.com/mkforge/mkbase/mem"
)

// Slots is the number of scratch buffers per worker, floored at 2.
// BufCap is each buffer's capacity; one byte is reserved for a trailing
// NUL. Both only matter before the first Get.
var (
	Slots  = 4
	BufCap = defaultBufCap
)

var (
	once sync.Once
	grid [][]byte
	rows int
	ctr  atomic.Uint32
)

func initGrid() {
	if Slots < 2 {
		Slots = 2
	}
	if BufCap < 16 {
		BufCap = 16
	}
	rows = crew.MaxWorkers + 1
	block := mem.Alloc(rows * Slots * BufCap)
	grid = make([][]byte, rows*Slots)
	for i := range grid {
		lo := i * BufCap
		grid[i] = block[lo : lo+BufCap : lo+BufCap]
	}
}

// Get returns the worker's next scratch buffer, zeroed, with BufCap-1
// writable bytes. crew.AnyWorker and out-of-range identities map to the
// main worker's row. Get never blocks.
func Get(worker uint32) []byte {
	once.Do(initGrid)
	row := int(worker)
	if worker == crew.AnyWorker || row >= rows {
		row = 0
	}
	slot := int(ctr.Add(1)-1) % Slots
	b := grid[row*Slots+slot]
	clear(b)
	return b[:BufCap-1 : BufCap]
}

// Fmt formats into the worker's next scratch buffer, truncating to
// BufCap-1 bytes. The result aliases the buffer and carries a trailing
// NUL right after its last byte.
func Fmt(worker uint32, format string, args ...any) []byte {
	buf := Get(worker)
	out := fmt.Appendf(buf[:0], format, args...)
	n := len(out)
	if n > len(buf) {
		n = len(buf)
	}
	if n > 0 && &out[0] != &buf[0] {
		copy(buf, out[:n])
	}
	buf[:BufCap][n] = 0
	return buf[:n]
}
