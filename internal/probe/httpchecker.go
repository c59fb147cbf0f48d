package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hamed0406/healthpoint/internal/domain"
)

const (
	DefaultTimeout          = 5 * time.Second
	DefaultLatencyThreshold = 500 * time.Millisecond
)

type HTTPChecker struct {
	Client           *http.Client
	LatencyThreshold time.Duration
}

func NewHTTPChecker(timeout, latencyThreshold time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if latencyThreshold <= 0 {
		latencyThreshold = DefaultLatencyThreshold
	}
	return &HTTPChecker{
		Client:           &http.Client{Timeout: timeout},
		LatencyThreshold: latencyThreshold,
	}
}

// Classify reports whether a received response counts as healthy: a 2xx
// status and a latency strictly below threshold.
func Classify(statusCode int, latency, threshold time.Duration) bool {
	return statusCode >= 200 && statusCode < 300 && latency < threshold
}

func (h *HTTPChecker) Check(ctx context.Context, ep domain.Endpoint) Result {
	method := ep.ResolvedMethod()
	if !domain.IsSupportedMethod(method) {
		return Result{
			Failure: FailureMisconfigured,
			Err:     fmt.Errorf("%w: %q", ErrUnsupportedMethod, method),
			Detail:  fmt.Sprintf("unsupported HTTP method %q => %s", method, domain.VerdictMisconfigured),
		}
	}

	var body io.Reader
	if ep.Body != "" {
		body = strings.NewReader(ep.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, ep.URL, body)
	if err != nil {
		return Result{Failure: FailureTransport, Err: err, Detail: failureDetail(FailureTransport, err)}
	}
	for k, v := range ep.Headers {
		// net/http ignores Host in req.Header
		if strings.EqualFold(k, "Host") {
			req.Host = v
			continue
		}
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := h.Client.Do(req)
	if err != nil {
		kind := classifyError(err)
		return Result{
			Failure:   kind,
			Err:       err,
			LatencyMS: msSince(start),
			Detail:    failureDetail(kind, err),
		}
	}
	defer resp.Body.Close()

	// latency covers the full response, so drain the body before stopping the clock
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		kind := classifyError(err)
		return Result{
			StatusCode: resp.StatusCode,
			Failure:    kind,
			Err:        err,
			LatencyMS:  msSince(start),
			Detail:     failureDetail(kind, err),
		}
	}
	elapsed := time.Since(start)
	latency := float64(elapsed) / float64(time.Millisecond)

	healthy := Classify(resp.StatusCode, elapsed, h.LatencyThreshold)
	verdict := domain.VerdictDown
	if healthy {
		verdict = domain.VerdictUp
	}
	return Result{
		Healthy:    healthy,
		StatusCode: resp.StatusCode,
		LatencyMS:  latency,
		Detail: fmt.Sprintf("HTTP response code %d and response latency %s ms => %s",
			resp.StatusCode, strconv.FormatFloat(latency, 'f', -1, 64), verdict),
	}
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
