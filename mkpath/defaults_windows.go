//go:build windows

package mkpath

const defaultCapacity = 8192
