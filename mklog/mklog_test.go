package mklog

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/mkforge/mkbase/crew"
)

func capture(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = new(bytes.Buffer), new(bytes.Buffer)
	oo, oe := Out, ErrOut
	Out, ErrOut = out, errOut
	t.Cleanup(func() { Out, ErrOut = oo, oe })
	return out, errOut
}

func TestLogf_format(t *testing.T) {
	out, _ := capture(t)
	SetLevel(Info)
	Infof(3, "hello %s", "build")
	if got := out.String(); got != "[I:03] INFO: hello build\x1b[0m\n" {
		t.Errorf("logged %q", got)
	}
}

func TestLogf_anyWorker(t *testing.T) {
	out, _ := capture(t)
	SetLevel(Info)
	Warnf(crew.AnyWorker, "careful")
	if got := out.String(); got != "[W:??] \x1b[33mWARNING: careful\x1b[0m\n" {
		t.Errorf("logged %q", got)
	}
}

func TestLogf_streams(t *testing.T) {
	out, errOut := capture(t)
	SetLevel(Info)
	Infof(0, "to stdout")
	Errorf(0, "to stderr")
	if !strings.Contains(out.String(), "to stdout") || strings.Contains(out.String(), "to stderr") {
		t.Errorf("stdout got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "to stderr") {
		t.Errorf("stderr got %q", errOut.String())
	}
}

func TestLogf_threshold(t *testing.T) {
	out, errOut := capture(t)
	SetLevel(Error)
	defer SetLevel(Info)
	Infof(0, "dropped")
	Warnf(0, "dropped")
	Errorf(0, "kept")
	if out.Len() != 0 {
		t.Errorf("below-threshold output %q", out.String())
	}
	if !strings.Contains(errOut.String(), "kept") {
		t.Error("error line dropped")
	}
}

func TestFatalf_exits(t *testing.T) {
	_, errOut := capture(t)
	SetLevel(Info)
	code := -1
	defer func(f func(int)) { osExit = f }(osExit)
	osExit = func(c int) { code = c }
	Fatalf(0, "boom")
	if code != 1 {
		t.Errorf("exit code %d", code)
	}
	if !strings.Contains(errOut.String(), "\x1b[35mFATAL: boom") {
		t.Errorf("fatal line %q", errOut.String())
	}
}

func TestLogf_serialized(t *testing.T) {
	const workers = 4
	out, _ := capture(t)
	SetLevel(Info)
	crew.SetMultiThreaded(true)
	defer crew.SetMultiThreaded(false)

	var c crew.Crew
	for i := 0; i < workers; i++ {
		if _, err := c.Go(func(w uint32, _ any) {
			Infof(w, "line of worker %d", w)
		}, nil); err != nil {
			t.Fatal(err)
		}
	}
	c.Join()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != workers {
		t.Fatalf("%d lines, want %d", len(lines), workers)
	}
	seen := map[string]bool{}
	for _, ln := range lines {
		seen[ln] = true
	}
	for w := 1; w <= workers; w++ {
		want := fmt.Sprintf("[I:%02d] INFO: line of worker %d\x1b[0m", w, w)
		if !seen[want] {
			t.Errorf("missing or mangled line %q in %q", want, out.String())
		}
	}
}
