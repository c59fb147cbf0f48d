package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyError(t *testing.T) {
	wrap := func(err error) error {
		return &url.Error{Op: "Get", URL: "http://example.com", Err: err}
	}
	cases := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"timeout", wrap(timeoutErr{}), FailureTimeout},
		{"deadline", wrap(context.DeadlineExceeded), FailureTimeout},
		{"dns", wrap(&net.OpError{Op: "dial", Err: &net.DNSError{Err: "no such host", Name: "nope.invalid", IsNotFound: true}}), FailureDNS},
		{"refused", wrap(&net.OpError{Op: "dial", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}), FailureConnectionRefused},
		{"other", wrap(errors.New("EOF")), FailureTransport},
	}
	for _, c := range cases {
		if got := classifyError(c.err); got != c.want {
			t.Fatalf("%s: classifyError(%v)=%q want %q", c.name, c.err, got, c.want)
		}
	}
}

func TestFailureDetail_IsDistinguishable(t *testing.T) {
	err := fmt.Errorf("boom")
	seen := map[string]FailureKind{}
	for _, k := range []FailureKind{FailureTimeout, FailureConnectionRefused, FailureTLS, FailureDNS, FailureTransport} {
		d := failureDetail(k, err)
		if prev, ok := seen[d]; ok {
			t.Fatalf("detail for %q collides with %q: %q", k, prev, d)
		}
		seen[d] = k
	}
}
