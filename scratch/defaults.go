//go:build !windows

package scratch

const defaultBufCap = 4096
