package probe

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// FailureKind is the closed set of reasons a probe can fail without a response.
type FailureKind string

const (
	FailureTimeout           FailureKind = "timeout"
	FailureConnectionRefused FailureKind = "connection_refused"
	FailureTLS               FailureKind = "tls"
	FailureDNS               FailureKind = "dns"
	FailureTransport         FailureKind = "transport"
	FailureMisconfigured     FailureKind = "misconfigured"
)

func (k FailureKind) description() string {
	switch k {
	case FailureTimeout:
		return "request timed out"
	case FailureConnectionRefused:
		return "connection refused"
	case FailureTLS:
		return "TLS handshake failed"
	case FailureDNS:
		return "DNS lookup failed"
	case FailureMisconfigured:
		return "endpoint misconfigured"
	default:
		return "transport error"
	}
}

// ErrUnsupportedMethod is reported for endpoints whose method is not one of
// the recognized HTTP verbs. No request is sent for them.
var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

// classifyError maps an error from http.Client.Do to a FailureKind.
// Timeouts win over everything else since a slow resolver also reports one.
func classifyError(err error) FailureKind {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return FailureTimeout
	}

	var de *net.DNSError
	if errors.As(err, &de) {
		return FailureDNS
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return FailureConnectionRefused
	}

	var (
		recErr     tls.RecordHeaderError
		alertErr   tls.AlertError
		verifyErr  *tls.CertificateVerificationError
		unknownCA  x509.UnknownAuthorityError
		hostErr    x509.HostnameError
		invalidErr x509.CertificateInvalidError
	)
	switch {
	case errors.As(err, &recErr),
		errors.As(err, &alertErr),
		errors.As(err, &verifyErr),
		errors.As(err, &unknownCA),
		errors.As(err, &hostErr),
		errors.As(err, &invalidErr):
		return FailureTLS
	}

	return FailureTransport
}

func failureDetail(kind FailureKind, err error) string {
	return fmt.Sprintf("%s (%s): %v => DOWN", kind.description(), kind, err)
}
