// Package mkpath is the path and environment surface of mkbase. The
// working and home directories are captured once and cached; all paths
// handed out use forward slashes regardless of platform.
package mkpath

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/mkforge/mkbase/crew"
	"github.com/mkforge/mkbase/mklog"
)

// Capacity is the maximum path length the substrate is prepared for.
var Capacity = defaultCapacity

var (
	cwdOnce  sync.Once
	cwd      string
	homeOnce sync.Once
	home     string
)

// Cwd returns the working directory captured at first use, slash
// normalized. Failure to resolve it is fatal.
func Cwd() string {
	cwdOnce.Do(func() {
		d, err := os.Getwd()
		if err != nil {
			mklog.Fatalf(crew.AnyWorker, "cannot resolve working directory: %s", err)
		}
		cwd = filepath.ToSlash(d)
	})
	return cwd
}

// Home returns the user's home directory from HOME, or HOMEDRIVE+HOMEPATH
// on Windows, captured at first use.
func Home() string {
	homeOnce.Do(func() {
		if runtime.GOOS == "windows" {
			home = filepath.ToSlash(os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH"))
		} else {
			home = os.Getenv("HOME")
		}
		if home == "" {
			mklog.Warnf(crew.AnyWorker, "no home directory in environment")
		}
	})
	return home
}

// IsAbs reports whether p is absolute: a drive letter plus colon on
// Windows, a leading slash elsewhere.
func IsAbs(p string) bool {
	if runtime.GOOS == "windows" {
		return len(p) >= 2 && p[1] == ':' &&
			('a' <= p[0] && p[0] <= 'z' || 'A' <= p[0] && p[0] <= 'Z')
	}
	return len(p) > 0 && p[0] == '/'
}

// Chunks counts the slash-separated segments of p. A trailing separator
// contributes an empty segment; the empty path has none.
func Chunks(p string) int {
	if p == "" {
		return 0
	}
	return strings.Count(p, "/") + 1
}

// Canon resolves p to an absolute, cleaned, slash-normalized path.
func Canon(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(abs), nil
}

// Glob expands pattern the way the platform's build tools do, returning
// slash-normalized matches.
func Glob(pattern string) ([]string, error) {
	ms, err := filepath.Glob(filepath.FromSlash(pattern))
	if err != nil {
		return nil, err
	}
	for i, m := range ms {
		ms[i] = filepath.ToSlash(m)
	}
	return ms, nil
}
