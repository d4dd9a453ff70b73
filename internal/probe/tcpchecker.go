package probe

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
)

// TCPChecker completes a transport handshake to host:port without
// sending application data. This is the most reliable liveness signal:
// it needs no cooperation from the app layer and no ICMP allowance.
type TCPChecker struct {
	Timeout time.Duration
	Dialer  *net.Dialer
}

func NewTCPChecker(timeout time.Duration) *TCPChecker {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &TCPChecker{Timeout: timeout, Dialer: &net.Dialer{Timeout: timeout}}
}

func (t *TCPChecker) Check(ctx context.Context, dev camera.Device) camera.ProbeResult {
	addr := dev.Addr()
	start := time.Now()

	cctx, cancel := context.WithTimeout(ctx, t.Timeout)
	defer cancel()

	conn, err := t.Dialer.DialContext(cctx, "tcp", addr)
	lat := time.Since(start).Seconds() * 1000
	if err != nil {
		return camera.ProbeResult{
			Stage:     camera.StageTCP,
			Detail:    fmt.Sprintf("connect %s: %v", addr, shortNetErr(err)),
			LatencyMS: lat,
		}
	}
	_ = conn.Close()
	return camera.ProbeResult{
		Stage:     camera.StageTCP,
		Succeeded: true,
		Detail:    fmt.Sprintf("port %d open on %s", dev.Port, dev.Host),
		LatencyMS: lat,
	}
}

// shortNetErr strips the "dial tcp addr:" prefix the net package
// repeats; the result line already names the address.
func shortNetErr(err error) error {
	if oe, ok := err.(*net.OpError); ok && oe.Err != nil {
		return oe.Err
	}
	return err
}
