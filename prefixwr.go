package mkbase

import (
	"bytes"
	"io"
)

// prefixWriter puts a prefix in front of every line it forwards to w.
// A line split over several Write calls gets its prefix only once.
type prefixWriter struct {
	w      io.Writer
	prefix []byte
	midLin bool
}

func newPrefixWriterString(w io.Writer, prefix string) *prefixWriter {
	return &prefixWriter{w: w, prefix: []byte(prefix)}
}

func (pw *prefixWriter) Reset() { pw.midLin = false }

func (pw *prefixWriter) Write(p []byte) (n int, err error) {
	for len(p) > 0 {
		if !pw.midLin {
			if _, err = pw.w.Write(pw.prefix); err != nil {
				return n, err
			}
			pw.midLin = true
		}
		nl := bytes.IndexByte(p, '\n')
		if nl < 0 {
			m, err := pw.w.Write(p)
			return n + m, err
		}
		m, err := pw.w.Write(p[:nl+1])
		n += m
		if err != nil {
			return n, err
		}
		pw.midLin = false
		p = p[nl+1:]
	}
	return n, nil
}
