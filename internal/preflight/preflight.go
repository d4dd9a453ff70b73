// Package preflight verifies a camera is reachable before the scanner
// is launched against it. Three layered checks — ICMP, TCP connect,
// HTTP against the stream endpoint — each run regardless of the ones
// before, so the operator gets the full diagnostic picture from one
// pass.
package preflight

import (
	"context"
	"fmt"
	"time"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/probe"
)

// Timeouts bounds each stage. Worst case wall clock for a dead host is
// the sum of the four values.
type Timeouts struct {
	Ping time.Duration
	TCP  time.Duration
	Head time.Duration
	Get  time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Ping: time.Second,
		TCP:  time.Second,
		Head: 4 * time.Second,
		Get:  5 * time.Second,
	}
}

// Probe is the assembled three-stage reachability check. Construct it
// with an explicit Timeouts value; it reads nothing from the
// environment.
type Probe struct {
	seq *probe.Sequence
}

// New wires the standard PING→TCP→HTTP sequence. sink may be nil when
// nobody is watching interactively.
func New(t Timeouts, sink probe.Sink) *Probe {
	return &Probe{
		seq: probe.NewSequence(sink,
			probe.NewPingChecker(t.Ping),
			probe.NewTCPChecker(t.TCP),
			probe.NewHTTPChecker(t.Head, t.Get),
		),
	}
}

// NewWithCheckers exists for callers that substitute stages in tests.
func NewWithCheckers(sink probe.Sink, checkers ...probe.Checker) *Probe {
	return &Probe{seq: probe.NewSequence(sink, checkers...)}
}

// Run executes every stage and returns one result per stage, in order.
// It never returns an error: an unreachable device produces three
// failed results, not a panic or an abort.
func (p *Probe) Run(ctx context.Context, dev camera.Device) []camera.ProbeResult {
	return p.seq.Run(ctx, dev)
}

// Summary is the final operator-facing line for a completed run.
func Summary(dev camera.Device, results []camera.ProbeResult) (string, camera.Severity) {
	if camera.Healthy(results) {
		return fmt.Sprintf("camera at %s looks reachable", dev.Addr()), camera.SeverityOK
	}
	for _, r := range results {
		if r.Succeeded {
			// Only ping answered; the app itself is not serving.
			return fmt.Sprintf(
				"host %s answers ping but nothing is serving on port %d — is the camera app open?",
				dev.Host, dev.Port), camera.SeverityWarn
		}
	}
	return fmt.Sprintf(
		"camera at %s unreachable — verify the IP and port shown in the app, make sure the phone is on the same network, and check firewall rules for %s",
		dev.Addr(), dev.StreamURL()), camera.SeverityFail
}
