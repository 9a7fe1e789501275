package bstr

import (
	"github.com/mkforge/mkbase/crew"
	"github.com/mkforge/mkbase/mem"
	"github.com/mkforge/mkbase/mklog"
)

// Growth beyond the needed bytes whenever a Str has to reallocate.
const slack = 8

// Str is a growable byte string over an accounted buffer. Between any two
// operations cap >= len+1 holds and the byte right after the payload is
// NUL, so Bytes() can be handed to NUL-expecting consumers via NulAfter.
// A Str owns its buffer; call Free exactly once when done.
type Str struct {
	buf []byte // accounted block; len(buf) is the capacity
	n   int
}

// New returns an empty Str with at least the given capacity (floored at
// one byte for the sentinel).
func New(capacity int) *Str {
	if capacity < 1 {
		capacity = 1
	}
	return &Str{buf: mem.Alloc(capacity)}
}

// From copies b into a fresh Str with capacity len(b)+1.
func From(b []byte) *Str {
	s := &Str{buf: mem.Alloc(len(b) + 1), n: len(b)}
	copy(s.buf, b)
	return s
}

func FromString(t string) *Str {
	s := &Str{buf: mem.Alloc(len(t) + 1), n: len(t)}
	copy(s.buf, t)
	return s
}

func (s *Str) Len() int { return s.n }

func (s *Str) Cap() int { return len(s.buf) }

// Bytes views the payload. The window keeps the sentinel in its spare
// capacity, so Bytes().NulAfter() is always true.
func (s *Str) Bytes() View { return View(s.buf[:s.n:len(s.buf)]) }

func (s *Str) String() string { return string(s.buf[:s.n]) }

// Grow adds amount bytes of capacity. The payload is unchanged.
func (s *Str) Grow(amount int) {
	if amount <= 0 {
		return
	}
	s.buf = mem.Realloc(s.buf, len(s.buf)+amount)
}

func (s *Str) Append(b []byte) {
	if s.n+len(b)+1 > len(s.buf) {
		s.Grow(len(b) + slack)
	}
	copy(s.buf[s.n:], b)
	s.n += len(b)
	s.buf[s.n] = 0
}

func (s *Str) AppendString(t string) {
	if s.n+len(t)+1 > len(s.buf) {
		s.Grow(len(t) + slack)
	}
	copy(s.buf[s.n:], t)
	s.n += len(t)
	s.buf[s.n] = 0
}

func (s *Str) Prepend(b []byte) {
	if s.n+len(b)+1 > len(s.buf) {
		s.Grow(len(b) + slack)
	}
	mem.Move(s.buf[len(b):s.n+len(b)], s.buf[:s.n])
	copy(s.buf, b)
	s.n += len(b)
	s.buf[s.n] = 0
}

// Insert puts b before index at. at 0 prepends, at len-1 appends, other
// indices must address payload; out of range is logged and refused.
func (s *Str) Insert(b []byte, at int) bool {
	switch {
	case at == 0:
		s.Prepend(b)
		return true
	case at < 0 || at >= s.n:
		mklog.Warnf(crew.AnyWorker,
			"string insert at %d outside payload of %d bytes", at, s.n)
		return false
	case at == s.n-1:
		s.Append(b)
		return true
	}
	if s.n+len(b)+1 > len(s.buf) {
		s.Grow(len(b) + slack)
	}
	mem.Move(s.buf[at+len(b):s.n+len(b)], s.buf[at:s.n])
	copy(s.buf[at:], b)
	s.n += len(b)
	s.buf[s.n] = 0
	return true
}

func (s *Str) Push(c byte) {
	if s.n+2 > len(s.buf) {
		s.Grow(1 + slack)
	}
	s.buf[s.n] = c
	s.n++
	s.buf[s.n] = 0
}

// Pop removes and returns the last byte; false on an empty Str.
func (s *Str) Pop() (byte, bool) {
	if s.n == 0 {
		return 0, false
	}
	s.n--
	c := s.buf[s.n]
	s.buf[s.n] = 0
	return c, true
}

// Emplace is a single-byte Insert.
func (s *Str) Emplace(c byte, at int) bool { return s.Insert([]byte{c}, at) }

// Remove deletes the byte at the given index.
func (s *Str) Remove(at int) bool {
	if at < 0 || at >= s.n {
		mklog.Warnf(crew.AnyWorker,
			"string remove at %d outside payload of %d bytes", at, s.n)
		return false
	}
	mem.Move(s.buf[at:s.n-1], s.buf[at+1:s.n])
	s.n--
	s.buf[s.n] = 0
	return true
}

// RemoveRange deletes the bytes in [from, to). An empty range is a
// contract violation; out-of-range indices are logged and refused.
func (s *Str) RemoveRange(from, to int) bool {
	if from >= to {
		if mem.Assertions {
			panic("bstr: remove range with from >= to")
		}
		mklog.Warnf(crew.AnyWorker, "string remove range [%d,%d) is empty", from, to)
		return false
	}
	if from < 0 || to > s.n {
		mklog.Warnf(crew.AnyWorker,
			"string remove range [%d,%d) outside payload of %d bytes", from, to, s.n)
		return false
	}
	d := to - from
	mem.Move(s.buf[from:s.n-d], s.buf[to:s.n])
	mem.Zero(s.buf[s.n-d : s.n])
	s.n -= d
	return true
}

// Clear zeroes the payload and resets the length.
func (s *Str) Clear() {
	mem.Zero(s.buf[:s.n])
	s.n = 0
}

// Clone returns an independent copy with capacity len+1.
func (s *Str) Clone() *Str { return From(s.buf[:s.n]) }

// Concat builds a fresh Str holding l then r.
func Concat(l, r *Str) *Str {
	c := &Str{buf: mem.Alloc(l.n + r.n + slack), n: l.n + r.n}
	copy(c.buf, l.buf[:l.n])
	copy(c.buf[l.n:], r.buf[:r.n])
	return c
}

// Free releases the buffer. Using s afterwards is undefined.
func (s *Str) Free() {
	mem.Free(s.buf)
	s.buf = nil
	s.n = 0
}
