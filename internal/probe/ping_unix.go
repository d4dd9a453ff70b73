//go:build !windows

package probe

import (
	"strconv"
	"time"
)

func pingArgs(host string, timeout time.Duration) []string {
	secs := int(timeout / time.Second)
	if secs < 1 {
		secs = 1
	}
	return []string{"-c", "1", "-W", strconv.Itoa(secs), host}
}
