//go:build windows

package scratch

const defaultBufCap = 8192
