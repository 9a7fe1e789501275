package mkbase

import (
	"fmt"
	"io"
	"os"
	"time"

	"git.fractalqb.de/fractalqb/sllm/v3"
)

// A Tracer reports what the command layer does. Messages use sllm
// templates: `name` in msg is replaced by the argument with that key from
// args, given as key/value pairs.
type Tracer interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)

	StartCmd(c *Cmd)
	DoneCmd(c *Cmd, dt time.Duration, err error)
}

// DefaultTracer receives the traces of Cmd and Pipe runs.
var DefaultTracer Tracer = &WriteTracer{W: os.Stderr, Log: TraceWarn}

type TraceLog int

const (
	TraceWarn TraceLog = 1 << iota
	TraceInfo
	TraceDebug
)

// WriteTracer renders traces as lines on W.
type WriteTracer struct {
	W   io.Writer
	Log TraceLog
}

// ParseLogFlag maps a command line flag onto the trace level.
func (tr *WriteTracer) ParseLogFlag(f string) error {
	switch f {
	case "":
		return nil
	case "off":
		tr.Log = 0
	case "warn", "w":
		tr.Log = TraceWarn
	case "info", "i":
		tr.Log = TraceWarn | TraceInfo
	case "debug", "d":
		tr.Log = TraceWarn | TraceInfo | TraceDebug
	default:
		return fmt.Errorf("write tracer: illegal log flag '%s'", f)
	}
	return nil
}

func (tr *WriteTracer) Debug(msg string, args ...any) {
	if tr.Log&TraceDebug == 0 {
		return
	}
	fmt.Fprint(tr.W, "  DEBUG ")
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr *WriteTracer) Info(msg string, args ...any) {
	if tr.Log&(TraceInfo|TraceDebug) == 0 {
		return
	}
	fmt.Fprint(tr.W, "  INFO  ")
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr *WriteTracer) Warn(msg string, args ...any) {
	if tr.Log&(TraceWarn|TraceInfo|TraceDebug) == 0 {
		return
	}
	fmt.Fprint(tr.W, "  WARN  ")
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr *WriteTracer) StartCmd(c *Cmd) {
	if tr.Log&(TraceInfo|TraceDebug) == 0 {
		return
	}
	if c.Dir == "" {
		fmt.Fprintf(tr.W, "{ run '%s'\n", c)
	} else {
		fmt.Fprintf(tr.W, "{ run '%s' in %s\n", c, c.Dir)
	}
}

func (tr *WriteTracer) DoneCmd(c *Cmd, dt time.Duration, err error) {
	if err != nil {
		if tr.Log != 0 {
			fmt.Fprintf(tr.W, "} '%s' failed after %s: %s\n", c, dt, err)
		}
		return
	}
	if tr.Log&(TraceInfo|TraceDebug) != 0 {
		fmt.Fprintf(tr.W, "} '%s' took %s\n", c, dt)
	}
}

type sllmArgs []any

func (as sllmArgs) append(buf []byte, _ int, n string) ([]byte, error) {
	for len(as) > 1 {
		if k, ok := as[0].(string); ok && k == n {
			return sllm.AppendArg(buf, as[1]), nil
		}
		as = as[2:]
	}
	return buf, fmt.Errorf("no value for key '%s'", n)
}
