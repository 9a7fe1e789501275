package bstr

import "bytes"

// The C-string helpers treat p as terminated by its first NUL byte, or by
// its end when there is none. They mirror the View operations over that
// prefix.

// CLen returns the length of p's NUL-bounded prefix.
func CLen(p []byte) int {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		return i
	}
	return len(p)
}

// OfCStr views p's NUL-bounded prefix.
func OfCStr(p []byte) View { return View(p[:CLen(p)]) }

func CEqual(a, b []byte) bool { return OfCStr(a).Equal(OfCStr(b)) }

func CIndexByte(p []byte, c byte) int { return OfCStr(p).IndexByte(c) }

func CLastIndexByte(p []byte, c byte) int { return OfCStr(p).LastIndexByte(c) }

func CIndexAny(p, set []byte) int { return OfCStr(p).IndexAny(OfCStr(set)) }

func CLastIndexAny(p, set []byte) int { return OfCStr(p).LastIndexAny(OfCStr(set)) }

func CIndex(p, sub []byte) int { return OfCStr(p).Index(OfCStr(sub)) }

func CLastIndex(p, sub []byte) int { return OfCStr(p).LastIndex(OfCStr(sub)) }
