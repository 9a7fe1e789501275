package mkbase

import (
	"github.com/mkforge/mkbase/bstr"
	"github.com/mkforge/mkbase/crew"
	"github.com/mkforge/mkbase/mklog"
	"github.com/mkforge/mkbase/mkpath"
	"github.com/mkforge/mkbase/scratch"
)

type (
	View  = bstr.View
	Str   = bstr.Str
	Level = mklog.Level

	Crew      = crew.Crew
	Mutex     = crew.Mutex
	Semaphore = crew.Semaphore
)

const (
	Info    = mklog.Info
	Warning = mklog.Warning
	Error   = mklog.Error
	Fatal   = mklog.Fatal

	AnyWorker = crew.AnyWorker
	Infinite  = crew.Infinite
)

// Exit reasons for build programs.
const (
	ExitOK = iota
	ExitUsage
	ExitConfig
	ExitBuild
)

// Init sets the log threshold, clamps the substrate knobs onto their
// documented ranges and captures the working and home directories. Call
// it once, before spawning workers.
func Init(level Level) {
	mklog.SetLevel(level)
	if crew.MaxWorkers < 1 {
		crew.MaxWorkers = 1
	} else if crew.MaxWorkers > 16 {
		crew.MaxWorkers = 16
	}
	if scratch.Slots < 2 {
		scratch.Slots = 2
	}
	// scratch buffers must hold a formatted path
	if scratch.BufCap < mkpath.Capacity {
		scratch.BufCap = mkpath.Capacity
	}
	mkpath.Cwd()
	mkpath.Home()
}
