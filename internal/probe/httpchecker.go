package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmlacourciere-ops/InstantPriceMatch/internal/camera"
)

// HTTPChecker probes the camera's stream endpoint. It tries a HEAD
// first; the camera's embedded server is known to reject HEAD (405, or
// a straight connection reset), so any HEAD failure falls back to a GET
// with a slightly longer timeout before the stage is declared dead.
//
// Any response at all counts as success. The device answers 404 on
// unknown paths while still serving /video, so a reply proves the
// server is up; the status code lands in Detail for the operator.
type HTTPChecker struct {
	HeadClient *http.Client
	GetClient  *http.Client
}

func NewHTTPChecker(headTimeout, getTimeout time.Duration) *HTTPChecker {
	if headTimeout <= 0 {
		headTimeout = 4 * time.Second
	}
	if getTimeout <= 0 {
		getTimeout = 5 * time.Second
	}
	return &HTTPChecker{
		HeadClient: &http.Client{Timeout: headTimeout},
		GetClient:  &http.Client{Timeout: getTimeout},
	}
}

func (h *HTTPChecker) Check(ctx context.Context, dev camera.Device) camera.ProbeResult {
	url := dev.StreamURL()
	start := time.Now()

	if res, ok := h.attempt(ctx, h.HeadClient, http.MethodHead, url, start); ok {
		return res
	}

	res, ok := h.attempt(ctx, h.GetClient, http.MethodGet, url, start)
	if ok {
		return res
	}
	res.Detail = fmt.Sprintf("%s unreachable: %s", url, res.Detail)
	return res
}

// attempt issues one request. ok means a response came back, whatever
// its status; the bool drives the HEAD→GET fallback.
func (h *HTTPChecker) attempt(ctx context.Context, client *http.Client, method, url string, start time.Time) (camera.ProbeResult, bool) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return camera.ProbeResult{Stage: camera.StageHTTP, Detail: err.Error()}, false
	}

	resp, err := client.Do(req)
	lat := time.Since(start).Seconds() * 1000
	if err != nil {
		return camera.ProbeResult{Stage: camera.StageHTTP, Detail: err.Error(), LatencyMS: lat}, false
	}
	// The stream never ends; close without draining the body.
	_ = resp.Body.Close()

	// A 405 on HEAD proves the server lives but says nothing about the
	// stream path; let the GET fallback record the real verdict.
	if method == http.MethodHead && resp.StatusCode == http.StatusMethodNotAllowed {
		return camera.ProbeResult{Stage: camera.StageHTTP, Detail: resp.Status, LatencyMS: lat}, false
	}

	return camera.ProbeResult{
		Stage:     camera.StageHTTP,
		Succeeded: true,
		Detail:    fmt.Sprintf("%s %s -> %s", method, url, resp.Status),
		LatencyMS: lat,
	}, true
}
