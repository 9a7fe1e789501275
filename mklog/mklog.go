// Package mklog is the leveled logger of mkbase. Lines look like
//
//	[I:00] INFO: starting build
//	[E:03] ERROR: cc exited with 1
//
// with the level word colored (INFO plain, WARNING yellow, ERROR red,
// FATAL magenta) and a reset suffix; ANSI sequences are emitted
// unconditionally. Info and Warning go to Out, Error and Fatal to ErrOut.
// While the process is multi-threaded every line is emitted under a mutex
// so that no two lines interleave.
package mklog

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/mkforge/mkbase/crew"
	"github.com/mkforge/mkbase/mem"
	"github.com/mkforge/mkbase/scratch"
)

type Level int32

const (
	Info Level = iota
	Warning
	Error
	Fatal
)

func (l Level) letter() byte {
	switch l {
	case Info:
		return 'I'
	case Warning:
		return 'W'
	case Error:
		return 'E'
	}
	return 'F'
}

func (l Level) name() string {
	switch l {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	}
	return "FATAL"
}

func (l Level) color() string {
	switch l {
	case Warning:
		return "\x1b[33m"
	case Error:
		return "\x1b[31m"
	case Fatal:
		return "\x1b[35m"
	}
	return ""
}

// ParseLevel maps a config string onto a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "", "info", "i":
		return Info, nil
	case "warning", "warn", "w":
		return Warning, nil
	case "error", "e":
		return Error, nil
	case "fatal", "f":
		return Fatal, nil
	}
	return Info, fmt.Errorf("mklog: illegal level '%s'", s)
}

// Out and ErrOut receive the log lines. Tests may swap them; they are not
// synchronized with concurrent logging, so swap before going
// multi-threaded.
var (
	Out    io.Writer = os.Stdout
	ErrOut io.Writer = os.Stderr
)

var (
	threshold atomic.Int32
	mu        = crew.NewMutex()
)

// SetLevel drops all messages strictly below l.
func SetLevel(l Level) { threshold.Store(int32(l)) }

func Threshold() Level { return Level(threshold.Load()) }

// Logf emits one line under worker's identity. crew.AnyWorker prints as
// "??". The message is formatted into one of the worker's scratch
// buffers; holding a single buffer per call keeps concurrent log calls
// clear of the pool's rotation window.
func Logf(l Level, worker uint32, format string, args ...any) {
	if l < Threshold() {
		return
	}
	msg := scratch.Fmt(worker, format, args...)
	w := Out
	if l >= Error {
		w = ErrOut
	}
	if crew.MultiThreaded() {
		mu.Lock()
		defer mu.Unlock()
	}
	if worker == crew.AnyWorker {
		fmt.Fprintf(w, "[%c:??] %s%s: ", l.letter(), l.color(), l.name())
	} else {
		fmt.Fprintf(w, "[%c:%02d] %s%s: ", l.letter(), worker, l.color(), l.name())
	}
	w.Write(msg)
	io.WriteString(w, "\x1b[0m\n")
}

func Infof(worker uint32, format string, args ...any) {
	Logf(Info, worker, format, args...)
}

func Warnf(worker uint32, format string, args ...any) {
	Logf(Warning, worker, format, args...)
}

func Errorf(worker uint32, format string, args ...any) {
	Logf(Error, worker, format, args...)
}

// Fatalf logs at Fatal and terminates the process.
func Fatalf(worker uint32, format string, args ...any) {
	Logf(Fatal, worker, format, args...)
	osExit(1)
}

// swappable for tests
var osExit = os.Exit

func init() {
	mem.OnWarn = func(format string, args ...any) {
		Logf(Warning, crew.AnyWorker, format, args...)
	}
}
