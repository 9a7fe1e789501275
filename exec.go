package mkbase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/frioux/shellquote"
	"github.com/google/shlex"

	"github.com/mkforge/mkbase/vec"
)

// Cmd describes one child process for a build program. The argument
// vector is a dynamic array; element 0 is the executable.
type Cmd struct {
	// Working directory of the child; empty runs it where the build
	// program runs.
	Dir string
	// Tag prefixes every output line of the child when set.
	Tag string
	// InFile and OutFile redirect the child's stdin/stdout to files,
	// overriding the Env streams.
	InFile, OutFile string

	argv *vec.Array[string]
	desc string
}

// NewCmd builds a command from an executable and its arguments.
func NewCmd(exe string, args ...string) *Cmd {
	c := &Cmd{argv: vec.New[string](1 + len(args))}
	c.argv.Append(exe)
	for _, a := range args {
		c.argv.Append(a)
	}
	return c
}

// Command splits a shell-like line into a command, honoring quotes and
// backslashes but not expanding anything.
func Command(line string) (*Cmd, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.New("empty command line")
	}
	return NewCmd(words[0], words[1:]...), nil
}

// Append adds arguments.
func (c *Cmd) Append(args ...string) *Cmd {
	for _, a := range args {
		c.argv.Append(a)
	}
	c.desc = ""
	return c
}

// AppendLine splits a shell-like line and appends the words.
func (c *Cmd) AppendLine(line string) error {
	words, err := shlex.Split(line)
	if err != nil {
		return err
	}
	c.Append(words...)
	return nil
}

// Args views the argument vector, executable first.
func (c *Cmd) Args() []string { return c.argv.Elems() }

// String renders the command the way a shell would accept it.
func (c *Cmd) String() string {
	if c.desc == "" {
		q, err := shellquote.Quote(c.Args())
		if err != nil {
			q = strings.Join(c.Args(), " ")
		}
		c.desc = q
	}
	return c.desc
}

func (c *Cmd) build(ctx context.Context, env *Env) (*exec.Cmd, func(), error) {
	args := c.Args()
	if len(args) == 0 {
		return nil, nil, errors.New("command without executable")
	}
	x := exec.CommandContext(ctx, args[0], args[1:]...)
	x.Dir = c.Dir
	var done func()
	if env != nil {
		xenv, err := env.ExecEnv()
		if err != nil {
			DefaultTracer.Warn("dropping `keys` from exec env", `keys`, err)
		}
		x.Env = xenv
	}
	if c.InFile != "" {
		r, err := os.Open(c.InFile)
		if err != nil {
			return nil, nil, err
		}
		x.Stdin = r
		done = func() { r.Close() }
	} else {
		x.Stdin = env.stdin()
	}
	if c.OutFile != "" {
		w, err := os.Create(c.OutFile)
		if err != nil {
			if done != nil {
				done()
			}
			return nil, nil, err
		}
		x.Stdout = w
		prev := done
		done = func() {
			w.Close()
			if prev != nil {
				prev()
			}
		}
	} else {
		x.Stdout = env.stdout()
	}
	x.Stderr = env.stderr()
	if c.Tag != "" {
		x.Stdout = newPrefixWriterString(x.Stdout, c.Tag+": ")
		x.Stderr = newPrefixWriterString(x.Stderr, c.Tag+": ")
	}
	return x, done, nil
}

// Run executes c and waits for it. The child gets env's streams and
// tags; a nil env uses the process defaults.
func (c *Cmd) Run(ctx context.Context, env *Env) error {
	x, done, err := c.build(ctx, env)
	if err != nil {
		return err
	}
	if done != nil {
		defer done()
	}
	DefaultTracer.StartCmd(c)
	start := time.Now()
	err = x.Run()
	DefaultTracer.DoneCmd(c, time.Since(start), err)
	return err
}

// Start executes c without waiting. The returned Proc must be waited on.
func (c *Cmd) Start(ctx context.Context, env *Env) (*Proc, error) {
	x, done, err := c.build(ctx, env)
	if err != nil {
		return nil, err
	}
	DefaultTracer.StartCmd(c)
	if err = x.Start(); err != nil {
		if done != nil {
			done()
		}
		return nil, err
	}
	return &Proc{cmd: c, x: x, done: done, start: time.Now()}, nil
}

// Proc is a started child process.
type Proc struct {
	cmd   *Cmd
	x     *exec.Cmd
	done  func()
	start time.Time
}

// Wait blocks until the child exits and returns its result.
func (p *Proc) Wait() error {
	err := p.x.Wait()
	if p.done != nil {
		p.done()
	}
	DefaultTracer.DoneCmd(p.cmd, time.Since(p.start), err)
	return err
}

// Pid returns the child's process id.
func (p *Proc) Pid() int { return p.x.Process.Pid }

// Pipe chains commands stdout-to-stdin. The first command reads env's
// In, the last writes env's Out; stderr of every stage goes to env's Err.
// The pipe wiring owns the stdout of every stage but the last, so an
// OutFile there is refused and a Tag prefixes only stderr; the last
// stage keeps its full Cmd stdout decoration.
type Pipe []*Cmd

func (po Pipe) String() string {
	if len(po) == 0 {
		return "empty pipe"
	}
	var sb strings.Builder
	sb.WriteString(po[0].String())
	for _, c := range po[1:] {
		sb.WriteByte('|')
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Run starts all stages, connects them and waits front to back. When a
// stage fails, everything behind it is killed.
func (po Pipe) Run(ctx context.Context, env *Env) error {
	if len(po) == 0 {
		return nil
	}
	cmds := make([]*exec.Cmd, len(po))
	closers := make([]func(), 0, len(po))
	defer func() {
		for _, cl := range closers {
			cl()
		}
	}()
	var pipeWr []*io.PipeWriter
	for i, c := range po {
		if c.OutFile != "" && i < len(po)-1 {
			return fmt.Errorf("pipe stage %d: OutFile on a non-last stage", i)
		}
		x, done, err := c.build(ctx, env)
		if err != nil {
			return err
		}
		if done != nil {
			closers = append(closers, done)
		}
		if i > 0 {
			r, w := io.Pipe()
			cmds[i-1].Stdout = w
			x.Stdin = r
			pipeWr = append(pipeWr, w)
		}
		cmds[i] = x
	}
	DefaultTracer.Debug("run `pipe`", `pipe`, po.String())
	for i, x := range cmds {
		if err := x.Start(); err != nil {
			for k := 0; k < i; k++ {
				cmds[k].Process.Kill()
			}
			return fmt.Errorf("pipe stage %d: %w", i, err)
		}
	}
	for i, x := range cmds {
		err := x.Wait()
		if i < len(pipeWr) {
			pipeWr[i].Close()
		}
		if err != nil {
			for k := i + 1; k < len(cmds); k++ {
				cmds[k].Process.Kill()
			}
			return fmt.Errorf("pipe stage %d: %w", i, err)
		}
	}
	return nil
}
