package camera

import "testing"

func TestDevice_StreamURL(t *testing.T) {
	d := Device{Host: "10.0.0.187", Port: 4747}
	if got := d.StreamURL(); got != "http://10.0.0.187:4747/video" {
		t.Fatalf("StreamURL = %q", got)
	}

	d.StreamPath = "/mjpegfeed"
	if got := d.StreamURL(); got != "http://10.0.0.187:4747/mjpegfeed" {
		t.Fatalf("StreamURL with path = %q", got)
	}
}

func TestProbeResult_Severity(t *testing.T) {
	cases := []struct {
		r    ProbeResult
		want Severity
	}{
		{ProbeResult{Stage: StagePing, Succeeded: true}, SeverityOK},
		{ProbeResult{Stage: StagePing, Succeeded: false}, SeverityWarn},
		{ProbeResult{Stage: StageTCP, Succeeded: false}, SeverityFail},
		{ProbeResult{Stage: StageHTTP, Succeeded: false}, SeverityFail},
		{ProbeResult{Stage: StageHTTP, Succeeded: true}, SeverityOK},
	}
	for _, c := range cases {
		if got := c.r.Severity(); got != c.want {
			t.Fatalf("Severity(%s succeeded=%v) = %s, want %s", c.r.Stage, c.r.Succeeded, got, c.want)
		}
	}
}

func TestHealthy_PingAloneIsNotEnough(t *testing.T) {
	results := []ProbeResult{
		{Stage: StagePing, Succeeded: true},
		{Stage: StageTCP, Succeeded: false},
		{Stage: StageHTTP, Succeeded: false},
	}
	if Healthy(results) {
		t.Fatal("ping-only success should not be healthy")
	}

	results[1].Succeeded = true
	if !Healthy(results) {
		t.Fatal("TCP success should be healthy")
	}
}
