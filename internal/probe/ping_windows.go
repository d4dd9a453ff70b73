//go:build windows

package probe

import (
	"strconv"
	"time"
)

func pingArgs(host string, timeout time.Duration) []string {
	ms := int(timeout / time.Millisecond)
	if ms < 1 {
		ms = 1000
	}
	return []string{"-n", "1", "-w", strconv.Itoa(ms), host}
}
