package probe

import (
	"context"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
)

// Checker performs a single reachability stage against a device.
//
// Implementations must never return an error or panic: transport
// failures are folded into a failed ProbeResult so one dead stage
// can't stop the ones after it.
type Checker interface {
	Check(ctx context.Context, dev camera.Device) camera.ProbeResult
}

// Sink receives each stage result as soon as it is known, before the
// next stage starts. An operator watching interactively sees ping and
// TCP verdicts while the HTTP round trip is still in flight.
type Sink interface {
	Emit(camera.ProbeResult)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(camera.ProbeResult)

func (f SinkFunc) Emit(r camera.ProbeResult) { f(r) }

// Sequence runs checkers in fixed order, streaming each result to the
// sink and collecting them all. Stages are independent; a failure never
// short-circuits the rest.
type Sequence struct {
	Checkers []Checker
	Sink     Sink
}

func NewSequence(sink Sink, checkers ...Checker) *Sequence {
	return &Sequence{Checkers: checkers, Sink: sink}
}

func (s *Sequence) Run(ctx context.Context, dev camera.Device) []camera.ProbeResult {
	results := make([]camera.ProbeResult, 0, len(s.Checkers))
	for _, c := range s.Checkers {
		r := c.Check(ctx, dev)
		if s.Sink != nil {
			s.Sink.Emit(r)
		}
		results = append(results, r)
	}
	return results
}
