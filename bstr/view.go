// Package bstr holds the byte-string kit of mkbase: the non-owning View,
// helpers over NUL-terminated buffers, and the owning dynamic string Str.
package bstr

import "bytes"

// View is a non-owning window over bytes. View operations never mutate
// the underlying bytes; slicing operations return new windows.
type View []byte

// V views the bytes of s.
func V(s string) View { return View(s) }

func (v View) Empty() bool { return len(v) == 0 }

// NulAfter reports whether a NUL sentinel sits right after the window.
// It needs spare capacity to look at; without any it reports false.
func (v View) NulAfter() bool {
	return cap(v) > len(v) && v[:len(v)+1][len(v)] == 0
}

// NulAt reports whether the window's last byte is a NUL sentinel.
func (v View) NulAt() bool { return len(v) > 0 && v[len(v)-1] == 0 }

func (v View) IndexByte(c byte) int { return bytes.IndexByte(v, c) }

func (v View) LastIndexByte(c byte) int {
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] == c {
			return i
		}
	}
	return -1
}

// IndexAny returns the first index of any byte from set.
func (v View) IndexAny(set View) int {
	for i, c := range v {
		if bytes.IndexByte(set, c) >= 0 {
			return i
		}
	}
	return -1
}

// LastIndexAny returns the last index of any byte from set.
func (v View) LastIndexAny(set View) int {
	for i := len(v) - 1; i >= 0; i-- {
		if bytes.IndexByte(set, v[i]) >= 0 {
			return i
		}
	}
	return -1
}

// Index returns the first start of sub in v, -1 if there is none. Every
// candidate found by its first byte is verified with a full compare.
func (v View) Index(sub View) int {
	if len(sub) == 0 {
		return 0
	}
	off := 0
	for len(v)-off >= len(sub) {
		i := bytes.IndexByte(v[off:len(v)-len(sub)+1], sub[0])
		if i < 0 {
			return -1
		}
		off += i
		if bytes.Equal(v[off:off+len(sub)], sub) {
			return off
		}
		off++
	}
	return -1
}

// LastIndex returns the last start of sub in v, -1 if there is none.
func (v View) LastIndex(sub View) int {
	if len(sub) == 0 {
		return len(v)
	}
	for s := len(v) - len(sub); s >= 0; s-- {
		if v[s] == sub[0] && bytes.Equal(v[s:s+len(sub)], sub) {
			return s
		}
	}
	return -1
}

func (v View) Equal(o View) bool { return bytes.Equal(v, o) }

// EqualClamp compares v and o only up to the shorter one's length.
func (v View) EqualClamp(o View) bool {
	if len(o) < len(v) {
		v = v[:len(o)]
	} else {
		o = o[:len(v)]
	}
	return bytes.Equal(v, o)
}

// Advance drops the first n bytes, saturating at the window's end.
func (v View) Advance(n int) View {
	if n < 0 {
		n = 0
	} else if n > len(v) {
		n = len(v)
	}
	return v[n:]
}

// Next drops the first byte.
func (v View) Next() View { return v.Advance(1) }

// Clip bounds the window at max bytes.
func (v View) Clip(max int) View {
	if max < 0 {
		max = 0
	}
	if len(v) > max {
		return v[:max]
	}
	return v
}

// Chop drops the last n bytes, saturating at the window's start.
func (v View) Chop(n int) View {
	if n >= len(v) {
		return v[:0]
	}
	return v[:len(v)-n]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (v View) TrimLeftSpace() View {
	for len(v) > 0 && isSpace(v[0]) {
		v = v[1:]
	}
	return v
}

func (v View) TrimRightSpace() View {
	for len(v) > 0 && isSpace(v[len(v)-1]) {
		v = v[:len(v)-1]
	}
	return v
}

// TrimSpace strips surrounding whitespace. It is a fixed point after one
// application.
func (v View) TrimSpace() View { return v.TrimLeftSpace().TrimRightSpace() }

// RuneCount counts UTF-8 code points by skipping continuation bytes.
// It never exceeds len(v) and equals it exactly for pure ASCII.
func (v View) RuneCount() int {
	n := 0
	for _, c := range v {
		if c&0xC0 != 0x80 {
			n++
		}
	}
	return n
}
