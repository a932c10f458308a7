//go:build !linux

package stationstats

// advise is a no-op where madvise is unavailable or spelled differently.
func advise(data []byte) {}
