//go:build unix

package main

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// maxRSS reports the peak resident set size of this process in bytes.
func maxRSS() (uint64, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, false
	}
	// Darwin reports bytes; everyone else reports kilobytes.
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return uint64(ru.Maxrss), true
	}
	return uint64(ru.Maxrss) * 1024, true
}
