//go:build !windows

package mkpath

const defaultCapacity = 4096
