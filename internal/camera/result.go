package camera

import "time"

// Stage names one layer of the reachability probe.
type Stage string

const (
	StagePing Stage = "PING"
	StageTCP  Stage = "TCP"
	StageHTTP Stage = "HTTP"
)

// Stages is the fixed probe order: cheap and unreliable first,
// expensive and specific last.
var Stages = []Stage{StagePing, StageTCP, StageHTTP}

// Severity classifies a result for display purposes only.
type Severity string

const (
	SeverityOK   Severity = "ok"
	SeverityWarn Severity = "warn"
	SeverityFail Severity = "fail"
)

// ProbeResult is the outcome of a single probe stage.
//
// Detail carries whatever is most useful to an operator: an HTTP status,
// the port tested, or the transport error string.
type ProbeResult struct {
	Stage     Stage   `json:"stage"`
	Succeeded bool    `json:"succeeded"`
	Detail    string  `json:"detail"`
	LatencyMS float64 `json:"latency_ms,omitempty"`
}

// Severity maps an outcome to its display class. A ping miss is only a
// warning: plenty of devices drop ICMP while serving video fine.
func (r ProbeResult) Severity() Severity {
	if r.Succeeded {
		return SeverityOK
	}
	if r.Stage == StagePing {
		return SeverityWarn
	}
	return SeverityFail
}

type RunID string

// ProbeRun is one full probe invocation against a device.
type ProbeRun struct {
	ID        RunID         `json:"id"`
	Host      string        `json:"host"`
	Port      int           `json:"port"`
	Results   []ProbeResult `json:"results"`
	Healthy   bool          `json:"healthy"`
	StartedAt time.Time     `json:"started_at"`
}

// Healthy reports whether the results prove the device is serving.
// TCP or HTTP success is enough; ping alone proves only that the host
// answers ICMP.
func Healthy(results []ProbeResult) bool {
	for _, r := range results {
		if r.Succeeded && r.Stage != StagePing {
			return true
		}
	}
	return false
}
