package mkbase

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mkforge/mkbase/crew"
	"github.com/mkforge/mkbase/mklog"
)

// Env carries the streams and the environment tags of spawned commands.
// Envs chain: a Sub env sees its parent's tags until it sets or deletes
// them itself.
type Env struct {
	In       io.Reader
	Out, Err io.Writer

	tags   map[string]string
	dels   map[string]bool
	parent *Env

	xenv    []string
	xenvErr error
}

// DefaultEnv captures the process environment and the standard streams.
func DefaultEnv() *Env {
	env := &Env{
		In:   os.Stdin,
		Out:  os.Stdout,
		Err:  os.Stderr,
		tags: make(map[string]string),
	}
	for _, evar := range os.Environ() {
		k, v, _ := strings.Cut(evar, "=")
		if k == "" {
			mklog.Warnf(crew.AnyWorker, "ignoring environment entry '%s'", evar)
			continue
		}
		env.tags[k] = v
	}
	return env
}

// Sub returns an env chained below e with the same streams.
func (e *Env) Sub() *Env {
	return &Env{In: e.In, Out: e.Out, Err: e.Err, parent: e}
}

// Clone returns an unchained env with a flattened copy of e's tags.
func (e *Env) Clone() *Env {
	return &Env{In: e.In, Out: e.Out, Err: e.Err, tags: e.mergedTags()}
}

// Tag looks key up along the env chain.
func (e *Env) Tag(key string) (string, bool) {
	for e != nil {
		if v, ok := e.tags[key]; ok {
			return v, true
		}
		if e.dels[key] {
			break
		}
		e = e.parent
	}
	return "", false
}

func (e *Env) SetTag(key, val string) {
	if e.tags == nil {
		e.tags = make(map[string]string)
	}
	e.tags[key] = val
	delete(e.dels, key)
	e.xenv, e.xenvErr = nil, nil
}

// SetTags sets tags from KEY=VALUE strings; a string without '=' sets an
// empty value.
func (e *Env) SetTags(tags ...string) {
	for _, tag := range tags {
		k, v, _ := strings.Cut(tag, "=")
		e.SetTag(k, v)
	}
}

// DelTag hides key, also from the parent chain.
func (e *Env) DelTag(key string) {
	delete(e.tags, key)
	if e.parent != nil {
		if e.dels == nil {
			e.dels = make(map[string]bool)
		}
		e.dels[key] = true
	}
	e.xenv, e.xenvErr = nil, nil
}

// BadEnvKeys names tags that cannot be passed to a child process.
type BadEnvKeys []string

func (e BadEnvKeys) Error() string {
	return fmt.Sprintf("illegal exec env keys: %s", strings.Join(e, ", "))
}

func (BadEnvKeys) Is(target error) bool {
	_, ok := target.(BadEnvKeys)
	return ok
}

// ExecEnv renders the merged tags as KEY=VALUE pairs for os/exec. Keys
// that are empty or contain '=' make it fail with BadEnvKeys; the legal
// pairs are still returned. The result is cached until a tag changes.
func (e *Env) ExecEnv() ([]string, error) {
	if e.xenv == nil && e.xenvErr == nil {
		var bad []string
		for k, v := range e.mergedTags() {
			switch {
			case k == "":
				bad = append(bad, `""`)
			case strings.ContainsRune(k, '='):
				bad = append(bad, k)
			default:
				e.xenv = append(e.xenv, k+"="+v)
			}
		}
		if len(bad) > 0 {
			e.xenvErr = BadEnvKeys(bad)
		}
	}
	return e.xenv, e.xenvErr
}

func (e *Env) mergedTags() map[string]string {
	if e.parent == nil {
		mts := make(map[string]string, len(e.tags))
		for k, v := range e.tags {
			mts[k] = v
		}
		return mts
	}
	mts := e.parent.mergedTags()
	for k := range e.dels {
		delete(mts, k)
	}
	for k, v := range e.tags {
		mts[k] = v
	}
	return mts
}

func (e *Env) stdin() io.Reader {
	if e == nil || e.In == nil {
		return os.Stdin
	}
	return e.In
}

func (e *Env) stdout() io.Writer {
	if e == nil || e.Out == nil {
		return os.Stdout
	}
	return e.Out
}

func (e *Env) stderr() io.Writer {
	if e == nil || e.Err == nil {
		return os.Stderr
	}
	return e.Err
}
