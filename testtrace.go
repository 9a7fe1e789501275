package mkbase

import (
	"testing"
	"time"
)

// TestTracer routes traces into a test's log.
type TestTracer struct{ T *testing.T }

var _ Tracer = TestTracer{}

func (tr TestTracer) Debug(msg string, args ...any) {
	tr.T.Logf("mkbase-DEBUG: %s %v", msg, args)
}

func (tr TestTracer) Info(msg string, args ...any) {
	tr.T.Logf("mkbase-INFO: %s %v", msg, args)
}

func (tr TestTracer) Warn(msg string, args ...any) {
	tr.T.Logf("mkbase-WARN: %s %v", msg, args)
}

func (tr TestTracer) StartCmd(c *Cmd) {
	tr.T.Logf("mkbase-StartCmd: %s", c)
}

func (tr TestTracer) DoneCmd(c *Cmd, dt time.Duration, err error) {
	tr.T.Logf("mkbase-DoneCmd: %s %s %v", c, dt, err)
}
