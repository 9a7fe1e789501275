package bstr

import "testing"

func TestView_indexByte(t *testing.T) {
	v := V("abcabc")
	if i := v.IndexByte('b'); i != 1 {
		t.Errorf("first b at %d", i)
	}
	if i := v.LastIndexByte('b'); i != 4 {
		t.Errorf("last b at %d", i)
	}
	if i := v.IndexByte('z'); i != -1 {
		t.Errorf("missing byte found at %d", i)
	}
}

func TestView_indexAny(t *testing.T) {
	v := V("make all")
	if i := v.IndexAny(V(" \t")); i != 4 {
		t.Errorf("first space at %d", i)
	}
	if i := v.LastIndexAny(V("al")); i != 7 {
		t.Errorf("last of set at %d", i)
	}
	if i := v.IndexAny(V("xyz")); i != -1 {
		t.Errorf("missing set found at %d", i)
	}
}

func TestView_index(t *testing.T) {
	v := V("abcabc")
	if i := v.Index(V("bc")); i != 1 {
		t.Errorf("bc at %d", i)
	}
	if i := v.LastIndex(V("bc")); i != 4 {
		t.Errorf("last bc at %d", i)
	}
	if i := v.Index(V("cab")); i != 2 {
		t.Errorf("cab at %d", i)
	}
	if i := v.Index(V("abd")); i != -1 {
		t.Errorf("missing sub at %d", i)
	}
	if i := v.Index(nil); i != 0 {
		t.Errorf("empty sub at %d", i)
	}
	if i := v.Index(V("abcabcx")); i != -1 {
		t.Errorf("oversized sub at %d", i)
	}
}

func TestView_equalClamp(t *testing.T) {
	if !V("hello").EqualClamp(V("hell")) {
		t.Error("clamp compare misses prefix")
	}
	if !V("hell").EqualClamp(V("hello")) {
		t.Error("clamp compare is not symmetric")
	}
	if V("help").EqualClamp(V("hello")) {
		t.Error("clamp compare false positive")
	}
	if !V("same").EqualClamp(V("same")) {
		t.Error("clamp compare on equal input")
	}
}

func TestView_slicing(t *testing.T) {
	v := V("abcdef")
	if s := v.Advance(2); string(s) != "cdef" {
		t.Errorf("advance: %q", s)
	}
	if s := v.Advance(10); len(s) != 0 {
		t.Errorf("saturating advance: %q", s)
	}
	if s := v.Next(); string(s) != "bcdef" {
		t.Errorf("next: %q", s)
	}
	if s := v.Clip(3); string(s) != "abc" {
		t.Errorf("clip: %q", s)
	}
	if s := v.Clip(10); string(s) != "abcdef" {
		t.Errorf("wide clip: %q", s)
	}
	if s := v.Chop(2); string(s) != "abcd" {
		t.Errorf("chop: %q", s)
	}
	if s := v.Chop(9); len(s) != 0 {
		t.Errorf("saturating chop: %q", s)
	}
}

func TestView_trim(t *testing.T) {
	v := V(" \t make \n")
	if s := v.TrimLeftSpace(); string(s) != "make \n" {
		t.Errorf("left: %q", s)
	}
	if s := v.TrimRightSpace(); string(s) != " \t make" {
		t.Errorf("right: %q", s)
	}
	s := v.TrimSpace()
	if string(s) != "make" {
		t.Errorf("surround: %q", s)
	}
	if s2 := s.TrimSpace(); string(s2) != string(s) {
		t.Error("trim is not a fixed point")
	}
}

func TestView_runeCount(t *testing.T) {
	v := View{'h', 0xC3, 0xA9, 'l', 'l', 'o'} // "héllo"
	if n := v.RuneCount(); n != 5 {
		t.Errorf("%d runes", n)
	}
	if len(v) != 6 {
		t.Errorf("%d bytes", len(v))
	}
	if n := V("ascii").RuneCount(); n != 5 {
		t.Errorf("ascii runes: %d", n)
	}
}

func TestView_nulForms(t *testing.T) {
	b := []byte{'a', 'b', 0}
	if !(View(b[:2:3])).NulAfter() {
		t.Error("sentinel after window not seen")
	}
	if (View(b[:2:2])).NulAfter() {
		t.Error("NulAfter without spare capacity")
	}
	if !(View(b)).NulAt() {
		t.Error("sentinel at end not seen")
	}
	if (View(b[:2])).NulAt() {
		t.Error("NulAt false positive")
	}
}
