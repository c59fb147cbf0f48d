package probe

import (
	"context"

	"github.com/hamed0406/healthpoint/internal/domain"
)

// Result is the outcome of probing one endpoint once.
//
// Fields:
//   - StatusCode: HTTP status code when a response arrived; 0 otherwise.
//   - Failure: empty when a response was received and classified.
//   - Err: the underlying error for transport failures and misconfiguration.
type Result struct {
	Healthy    bool
	Detail     string
	StatusCode int
	LatencyMS  float64
	Failure    FailureKind
	Err        error
}

// Checker probes a single endpoint.
type Checker interface {
	Check(ctx context.Context, ep domain.Endpoint) Result
}
