// Package vec holds the growable typed vector of mkbase. An Array keeps
// its length apart from the backing storage and books the storage bytes
// with the accounted allocator, so the process-wide memory counters cover
// typed data as well as raw blocks.
package vec

import (
	"unsafe"

	"github.com/mkforge/mkbase/crew"
	"github.com/mkforge/mkbase/mem"
	"github.com/mkforge/mkbase/mklog"
)

// Extra elements beyond the needed ones whenever an Array has to grow.
const slack = 5

// Array is a growable vector of T. len <= cap is invariant; every slot
// released by a shrinking operation is zeroed. The zero Array is an empty
// non-static array.
type Array[T any] struct {
	elems  []T // full capacity
	n      int
	static bool
}

// New returns an empty Array with the given capacity.
func New[T any](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	a := &Array[T]{elems: make([]T, capacity)}
	mem.AccountAlloc(capacity * a.Stride())
	return a
}

// Of copies vals into a fresh Array with capacity len(vals).
func Of[T any](vals ...T) *Array[T] {
	a := New[T](len(vals))
	copy(a.elems, vals)
	a.n = len(vals)
	return a
}

// Static wraps caller-owned storage. A static Array never grows and is
// not booked with the allocator; operations needing more room than
// len(buf) are refused.
func Static[T any](buf []T) *Array[T] {
	return &Array[T]{elems: buf, static: true}
}

func (a *Array[T]) Len() int { return a.n }

func (a *Array[T]) Cap() int { return len(a.elems) }

// Stride is the byte size of one element.
func (a *Array[T]) Stride() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// Elems views the live elements. The view is invalidated by any growing
// operation.
func (a *Array[T]) Elems() []T { return a.elems[:a.n] }

func (a *Array[T]) grow(needed int) bool {
	if a.static {
		mklog.Warnf(crew.AnyWorker, "array grow on static storage refused")
		return false
	}
	nc := len(a.elems) + needed + slack
	ne := make([]T, nc)
	copy(ne, a.elems)
	mem.AccountAlloc((nc - len(a.elems)) * a.Stride())
	a.elems = ne
	return true
}

// Append adds v at the end, growing as needed.
func (a *Array[T]) Append(v T) bool {
	if a.n == len(a.elems) && !a.grow(1) {
		return false
	}
	a.elems[a.n] = v
	a.n++
	return true
}

// TryAppend adds v only if capacity is already there.
func (a *Array[T]) TryAppend(v T) bool {
	if a.n == len(a.elems) {
		return false
	}
	a.elems[a.n] = v
	a.n++
	return true
}

// Emplace puts v before index at, which must address a live element;
// appending goes through Append.
func (a *Array[T]) Emplace(v T, at int) bool {
	if at < 0 || at >= a.n {
		mklog.Warnf(crew.AnyWorker,
			"array emplace at %d outside %d elements", at, a.n)
		return false
	}
	if a.n == len(a.elems) && !a.grow(1) {
		return false
	}
	copy(a.elems[at+1:a.n+1], a.elems[at:a.n])
	a.elems[at] = v
	a.n++
	return true
}

// TryEmplace is Emplace without growing.
func (a *Array[T]) TryEmplace(v T, at int) bool {
	if at < 0 || at >= a.n {
		mklog.Warnf(crew.AnyWorker,
			"array emplace at %d outside %d elements", at, a.n)
		return false
	}
	if a.n == len(a.elems) {
		return false
	}
	copy(a.elems[at+1:a.n+1], a.elems[at:a.n])
	a.elems[at] = v
	a.n++
	return true
}

// Insert puts vals before index at under the same bounds rule as Emplace.
func (a *Array[T]) Insert(vals []T, at int) bool {
	if at < 0 || at >= a.n {
		mklog.Warnf(crew.AnyWorker,
			"array insert at %d outside %d elements", at, a.n)
		return false
	}
	if a.n+len(vals) > len(a.elems) && !a.grow(a.n+len(vals)-len(a.elems)) {
		return false
	}
	copy(a.elems[at+len(vals):a.n+len(vals)], a.elems[at:a.n])
	copy(a.elems[at:], vals)
	a.n += len(vals)
	return true
}

// TryInsert is Insert without growing.
func (a *Array[T]) TryInsert(vals []T, at int) bool {
	if at < 0 || at >= a.n {
		mklog.Warnf(crew.AnyWorker,
			"array insert at %d outside %d elements", at, a.n)
		return false
	}
	if a.n+len(vals) > len(a.elems) {
		return false
	}
	copy(a.elems[at+len(vals):a.n+len(vals)], a.elems[at:a.n])
	copy(a.elems[at:], vals)
	a.n += len(vals)
	return true
}

// Pop removes the last element into out (may be nil) and zeroes its slot.
func (a *Array[T]) Pop(out *T) bool {
	if a.n == 0 {
		return false
	}
	a.n--
	if out != nil {
		*out = a.elems[a.n]
	}
	var zero T
	a.elems[a.n] = zero
	return true
}

// Remove deletes the element at the given index, shifting the tail left.
func (a *Array[T]) Remove(at int) bool {
	if at < 0 || at >= a.n {
		mklog.Warnf(crew.AnyWorker,
			"array remove at %d outside %d elements", at, a.n)
		return false
	}
	copy(a.elems[at:a.n-1], a.elems[at+1:a.n])
	a.n--
	var zero T
	a.elems[a.n] = zero
	return true
}

// RemoveRange deletes the elements in [from, to).
func (a *Array[T]) RemoveRange(from, to int) bool {
	if from >= to {
		if mem.Assertions {
			panic("vec: remove range with from >= to")
		}
		mklog.Warnf(crew.AnyWorker, "array remove range [%d,%d) is empty", from, to)
		return false
	}
	if from < 0 || to > a.n {
		mklog.Warnf(crew.AnyWorker,
			"array remove range [%d,%d) outside %d elements", from, to, a.n)
		return false
	}
	d := to - from
	copy(a.elems[from:a.n-d], a.elems[to:a.n])
	clear(a.elems[a.n-d : a.n])
	a.n -= d
	return true
}

// SetLen forces the length to n, growing as needed. Newly exposed
// elements are zero; a shrinking SetLen zeroes the freed suffix.
func (a *Array[T]) SetLen(n int) bool {
	if n < 0 {
		mklog.Warnf(crew.AnyWorker, "array length %d refused", n)
		return false
	}
	if n > len(a.elems) && !a.grow(n-len(a.elems)) {
		return false
	}
	if n < a.n {
		clear(a.elems[n:a.n])
	} else {
		clear(a.elems[a.n:n])
	}
	a.n = n
	return true
}

// Truncate bounds the length at max, zeroing the freed suffix.
func (a *Array[T]) Truncate(max int) {
	if max < 0 {
		max = 0
	}
	if a.n > max {
		clear(a.elems[max:a.n])
		a.n = max
	}
}

// Trim drops the last amount elements, saturating at zero length.
func (a *Array[T]) Trim(amount int) {
	if amount <= 0 {
		return
	}
	a.Truncate(a.n - amount)
}

// Clear zeroes all live elements and resets the length.
func (a *Array[T]) Clear() {
	clear(a.elems[:a.n])
	a.n = 0
}

// Clone returns an independent copy with capacity len.
func (a *Array[T]) Clone() *Array[T] {
	c := New[T](a.n)
	copy(c.elems, a.elems[:a.n])
	c.n = a.n
	return c
}

// Free gives the storage back to the accounting. Freeing a static Array
// only detaches the caller's buffer.
func (a *Array[T]) Free() {
	if !a.static {
		mem.AccountFree(len(a.elems) * a.Stride())
	}
	a.elems = nil
	a.n = 0
}
