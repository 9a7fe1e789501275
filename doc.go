// Package mkbase helps to write build programs in Go for projects where
// just running 'go build' is not enough. Instead of a declarative build
// file the user writes a small Go program against mkbase's primitives
// (accounted memory, byte strings, growable arrays, scratch buffers,
// workers, logging, paths and process spawning), compiles it and runs it.
// mkbase is a toolbox, not a scheduler: there is no dependency graph, no
// up-to-date tracking and no artifact cache.
//
//	"mk.go" is the recommended file name for a build program
//
// The build program must not collide with the rest of the code. Two
// layouts that work well:
//
// # Source in the module root
//
//	module/
//	├── bar.go
//	├── foo.go
//	├── go.mod
//	└── mk
//	    └── mk.go
//
// Build with
//
//	module$ go run mk/mk.go
//
// # No source in the module root
//
//	module/
//	├── cmd
//	│   └── foo
//	│       └── main.go
//	├── go.mod
//	└── mk.go
//
// Build with
//
//	module$ go run mk.go
//
// The substrate lives in the subpackages (mem, bstr, vec, scratch, crew,
// mklog, mkpath); this package aggregates them and adds what a build
// program needs on top: an exec environment with tags, command running
// with pipelines, tracing and a small YAML config loader.
package mkbase
