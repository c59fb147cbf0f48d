package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/hamed0406/healthpoint/internal/availability"
	"github.com/hamed0406/healthpoint/internal/domain"
)

// Printer renders the human-readable console report.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Availability(stats []availability.Stat) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.availability(stats)
}

// Round prints the availability list, CNAME notices and the round's status
// lines, separated by blank lines.
func (p *Printer) Round(stats []availability.Stat, cnames []string, statuses []domain.Status) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.availability(stats)
	if len(cnames) > 0 {
		for _, c := range cnames {
			fmt.Fprintf(p.w, "● CNAME %s is present as a separate health check\n", c)
		}
		fmt.Fprintln(p.w)
	}
	for _, s := range statuses {
		fmt.Fprintf(p.w, "● Endpoint with name %s has %s\n", s.Name, s.Detail)
	}
	fmt.Fprintln(p.w)
}

func (p *Printer) availability(stats []availability.Stat) {
	for _, s := range stats {
		fmt.Fprintf(p.w, "%s has %d%% availability percentage (%d of %d endpoints)\n",
			s.Domain, s.Percentage, s.Success, s.Total)
	}
	fmt.Fprintln(p.w)
}
