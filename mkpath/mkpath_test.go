package mkpath

import (
	"runtime"
	"strings"
	"testing"
)

func TestIsAbs(t *testing.T) {
	if runtime.GOOS == "windows" {
		for _, p := range []string{`C:\x`, `d:/y`, "Z:"} {
			if !IsAbs(p) {
				t.Errorf("'%s' not absolute", p)
			}
		}
		for _, p := range []string{"", "x", `\x`, "1:x"} {
			if IsAbs(p) {
				t.Errorf("'%s' absolute", p)
			}
		}
		return
	}
	if !IsAbs("/usr/bin") {
		t.Error("'/usr/bin' not absolute")
	}
	for _, p := range []string{"", "usr/bin", "./x", "C:/x"} {
		if IsAbs(p) {
			t.Errorf("'%s' absolute", p)
		}
	}
}

func TestChunks(t *testing.T) {
	for _, c := range []struct {
		path string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"a/b", 2},
		{"a/b/", 3}, // trailing separator counts an empty segment
		{"/a/b", 3},
		{"/", 2},
	} {
		if n := Chunks(c.path); n != c.want {
			t.Errorf("'%s' has %d chunks, want %d", c.path, n, c.want)
		}
	}
}

func TestCwd(t *testing.T) {
	d := Cwd()
	if d == "" {
		t.Fatal("no working directory")
	}
	if strings.ContainsRune(d, '\\') {
		t.Errorf("backslash in '%s'", d)
	}
	if d2 := Cwd(); d2 != d {
		t.Errorf("not cached: '%s' then '%s'", d, d2)
	}
}

func TestHome(t *testing.T) {
	h := Home()
	if runtime.GOOS != "windows" && h == "" {
		t.Skip("no HOME in test environment")
	}
	if strings.ContainsRune(h, '\\') {
		t.Errorf("backslash in '%s'", h)
	}
}

func TestCanon(t *testing.T) {
	p, err := Canon("a/../b")
	if err != nil {
		t.Fatal(err)
	}
	if !IsAbs(p) {
		t.Errorf("canon '%s' not absolute", p)
	}
	if strings.Contains(p, "..") || strings.ContainsRune(p, '\\') {
		t.Errorf("canon '%s' not clean", p)
	}
	if !strings.HasSuffix(p, "/b") {
		t.Errorf("canon '%s' resolved wrong", p)
	}
}
