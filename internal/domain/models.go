package domain

import (
	"net/http"
	"time"
)

// DefaultName is shown for endpoints configured without a name.
const DefaultName = "N/A"

// Endpoint is one configured probe target.
type Endpoint struct {
	Name    string            `yaml:"name" json:"name"`
	URL     string            `yaml:"url" json:"url"`
	Method  string            `yaml:"method,omitempty" json:"method,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	Body    string            `yaml:"body,omitempty" json:"body,omitempty"`
}

// ResolvedMethod returns the configured method or GET when none is set.
func (e Endpoint) ResolvedMethod() string {
	if e.Method == "" {
		return http.MethodGet
	}
	return e.Method
}

var supportedMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodDelete:  {},
	http.MethodPatch:   {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

// IsSupportedMethod reports whether m is one of the eight recognized verbs.
// The comparison is case-sensitive.
func IsSupportedMethod(m string) bool {
	_, ok := supportedMethods[m]
	return ok
}

// Verdict is the outcome shown for an endpoint in a round.
type Verdict string

const (
	VerdictUp            Verdict = "UP"
	VerdictDown          Verdict = "DOWN"
	VerdictMisconfigured Verdict = "MISCONFIGURED"
)

// Status is one line of a round's status list.
type Status struct {
	Name    string  `json:"name"`
	URL     string  `json:"url"`
	Domain  string  `json:"domain"`
	Verdict Verdict `json:"verdict"`
	Detail  string  `json:"detail"`
}

// Round is one pass over every configured endpoint.
type Round struct {
	Number     int       `json:"number"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Statuses   []Status  `json:"statuses"`
}
