// This is an example mkbase build program with a practical shape: a few
// C sources compiled in parallel by a worker crew, then linked.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/mkforge/mkbase"
	"github.com/mkforge/mkbase/crew"
	"github.com/mkforge/mkbase/mklog"
	"github.com/mkforge/mkbase/mkpath"
)

var (
	cc      = "cc"
	srcs    = []string{"foo.c", "bar.c", "baz.c"}
	exe     = "dist/hello"
	tracer  = &mkbase.WriteTracer{W: os.Stderr, Log: mkbase.TraceWarn}
	dryrun  bool
	verbose bool
)

func flags() {
	flag.BoolVar(&dryrun, "n", dryrun, "Dryrun")
	flag.BoolVar(&verbose, "v", verbose, "Trace every command")
	fTrace := flag.String("trace", "", "Set trace level (off|warn|info|debug)")
	flag.Parse()
	if err := tracer.ParseLogFlag(*fTrace); err != nil {
		mklog.Errorf(mkbase.AnyWorker, "%s", err)
		os.Exit(mkbase.ExitUsage)
	}
	if verbose {
		tracer.Log = mkbase.TraceWarn | mkbase.TraceInfo
	}
}

func compile(worker uint32, params any) {
	src := params.(string)
	obj := src[:len(src)-1] + "o"
	cmd := mkbase.NewCmd(cc, "-c", "-o", obj, src)
	cmd.Tag = src
	if dryrun {
		mklog.Infof(worker, "would run '%s'", cmd)
		return
	}
	if err := cmd.Run(context.Background(), env); err != nil {
		mklog.Errorf(worker, "compile %s: %s", src, err)
		failed.Signal()
	}
}

var (
	env    *mkbase.Env
	failed = crew.NewSemaphore(0, len(srcs))
)

func main() {
	flags()
	mkbase.Init(mkbase.Info)
	mkbase.DefaultTracer = tracer
	env = mkbase.DefaultEnv()

	if cfg, err := mkbase.LoadConfig("mk.yaml"); err == nil {
		if err = cfg.Apply(env); err != nil {
			mklog.Errorf(mkbase.AnyWorker, "mk.yaml: %s", err)
			os.Exit(mkbase.ExitConfig)
		}
	}

	mklog.Infof(mkbase.AnyWorker, "building %s in %s", exe, mkpath.Cwd())

	crew.SetMultiThreaded(true)
	var workers crew.Crew
	for _, src := range srcs {
		if _, err := workers.Go(compile, src); err != nil {
			mklog.Fatalf(mkbase.AnyWorker, "spawn compile of %s: %s", src, err)
		}
	}
	workers.Join()
	crew.SetMultiThreaded(false)

	if failed.TryWait() {
		os.Exit(mkbase.ExitBuild)
	}
	if dryrun {
		return
	}

	link := mkbase.NewCmd(cc, "-o", exe)
	for _, src := range srcs {
		link.Append(src[:len(src)-1] + "o")
	}
	if err := link.Run(context.Background(), env); err != nil {
		mklog.Errorf(mkbase.AnyWorker, "link: %s", err)
		os.Exit(mkbase.ExitBuild)
	}
	mklog.Infof(mkbase.AnyWorker, "built %s", exe)
}
