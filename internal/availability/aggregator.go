package availability

import (
	"math"
	"sync"
)

// Record is the lifetime success/total pair for one domain key.
type Record struct {
	Success uint64 `json:"success"`
	Total   uint64 `json:"total"`
}

// Percentage returns the availability percent rounded half-to-even, or 0 when
// nothing was recorded.
func (r Record) Percentage() int {
	return Percentage(r.Success, r.Total)
}

func Percentage(success, total uint64) int {
	if total == 0 {
		return 0
	}
	return int(math.RoundToEven(100 * float64(success) / float64(total)))
}

// Stat is one domain's entry in a snapshot.
type Stat struct {
	Domain string `json:"domain"`
	Record
	Percentage int `json:"percentage"`
}

// Aggregator keeps cumulative counters per domain key. Counters never reset.
type Aggregator struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string
}

func New() *Aggregator {
	return &Aggregator{records: make(map[string]*Record)}
}

// Record counts one probe for key; healthy probes also count as a success.
func (a *Aggregator) Record(key string, healthy bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	r := a.records[key]
	if r == nil {
		r = &Record{}
		a.records[key] = r
		a.order = append(a.order, key)
	}
	r.Total++
	if healthy {
		r.Success++
	}
}

func (a *Aggregator) Get(key string) (Record, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	r, ok := a.records[key]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// Snapshot returns a copy of every record in first-seen key order.
func (a *Aggregator) Snapshot() []Stat {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Stat, 0, len(a.order))
	for _, k := range a.order {
		r := *a.records[k]
		out = append(out, Stat{Domain: k, Record: r, Percentage: r.Percentage()})
	}
	return out
}

// Keys returns the tracked domain keys in first-seen order.
func (a *Aggregator) Keys() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]string(nil), a.order...)
}
