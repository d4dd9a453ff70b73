package probe

import (
	"context"
	"errors"
	"net"
	"os/exec"
	"strings"
	"time"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
)

// PingChecker sends one ICMP echo via the system ping binary. Raw ICMP
// sockets need elevated privileges, and every OS ships a ping that
// already has them; shelling out keeps the probe unprivileged.
//
// The outcome is advisory: many camera apps sit behind phones that drop
// ICMP while happily serving video.
type PingChecker struct {
	Timeout time.Duration
}

func NewPingChecker(timeout time.Duration) *PingChecker {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &PingChecker{Timeout: timeout}
}

func (p *PingChecker) Check(ctx context.Context, dev camera.Device) camera.ProbeResult {
	host := strings.TrimSpace(dev.Host)
	if host == "" {
		return camera.ProbeResult{Stage: camera.StagePing, Detail: "empty host"}
	}

	// Surface resolver failures as the ping detail rather than a raw
	// exec error; ping's own message for NXDOMAIN varies per OS.
	if net.ParseIP(host) == nil {
		rctx, cancel := context.WithTimeout(ctx, p.Timeout)
		_, err := (&net.Resolver{}).LookupHost(rctx, host)
		cancel()
		if err != nil {
			return camera.ProbeResult{Stage: camera.StagePing, Detail: "dns: " + err.Error()}
		}
	}

	start := time.Now()
	// Small grace over the ping deadline for process startup.
	cctx, cancel := context.WithTimeout(ctx, p.Timeout+500*time.Millisecond)
	defer cancel()

	cmd := exec.CommandContext(cctx, "ping", pingArgs(host, p.Timeout)...)
	err := cmd.Run()
	lat := time.Since(start).Seconds() * 1000

	if err == nil {
		return camera.ProbeResult{
			Stage:     camera.StagePing,
			Succeeded: true,
			Detail:    "echo reply from " + host,
			LatencyMS: lat,
		}
	}

	detail := "no echo reply"
	var ee *exec.Error
	if errors.As(err, &ee) {
		detail = "ping unavailable: " + ee.Error()
	} else if cctx.Err() != nil {
		detail = "timed out"
	}
	return camera.ProbeResult{Stage: camera.StagePing, Detail: detail, LatencyMS: lat}
}
