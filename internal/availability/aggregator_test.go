package availability

import (
	"math/rand"
	"reflect"
	"sync"
	"testing"
)

func TestPercentage(t *testing.T) {
	cases := []struct {
		s, n uint64
		want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 12},
		{3, 8, 38},
		{5, 5, 100},
	}
	for _, c := range cases {
		if got := Percentage(c.s, c.n); got != c.want {
			t.Fatalf("Percentage(%d,%d)=%d want %d", c.s, c.n, got, c.want)
		}
	}
}

func TestAggregator_CountsStayConsistent(t *testing.T) {
	a := New()
	rng := rand.New(rand.NewSource(1))
	calls := map[string]uint64{}
	keys := []string{"a:80", "b:443", "c:9000"}
	for i := 0; i < 500; i++ {
		k := keys[rng.Intn(len(keys))]
		a.Record(k, rng.Intn(2) == 0)
		calls[k]++
	}
	for _, k := range keys {
		r, ok := a.Get(k)
		if !ok {
			t.Fatalf("missing %s", k)
		}
		if r.Success > r.Total {
			t.Fatalf("%s: success %d > total %d", k, r.Success, r.Total)
		}
		if r.Total != calls[k] {
			t.Fatalf("%s: total %d want %d", k, r.Total, calls[k])
		}
	}
}

func TestAggregator_SnapshotOrderAndValues(t *testing.T) {
	a := New()
	a.Record("fetch.com:443", true)
	a.Record("www.fetchrewards.com:443", false)
	a.Record("fetch.com:443", false)

	got := a.Snapshot()
	want := []Stat{
		{Domain: "fetch.com:443", Record: Record{Success: 1, Total: 2}, Percentage: 50},
		{Domain: "www.fetchrewards.com:443", Record: Record{Success: 0, Total: 1}, Percentage: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("snapshot mismatch:\nwant=%+v\ngot =%+v", want, got)
	}
	if _, ok := a.Get("unknown:80"); ok {
		t.Fatalf("unexpected record for unknown key")
	}
}

func TestAggregator_ConcurrentRecord(t *testing.T) {
	a := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(up bool) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				a.Record("example.com:80", up)
			}
		}(i%2 == 0)
	}
	wg.Wait()
	r, _ := a.Get("example.com:80")
	if r.Total != 1000 || r.Success != 500 {
		t.Fatalf("lost updates: %+v", r)
	}
}

func TestRedundantCNAMEs(t *testing.T) {
	keys := []string{"example.com:80", "www.example.com:80", "www", "www.www", "other.com:443"}
	got := RedundantCNAMEs(keys)
	if !reflect.DeepEqual(got, []string{"example.com:80"}) {
		t.Fatalf("unexpected notices: %v", got)
	}
	if got := RedundantCNAMEs(nil); len(got) != 0 {
		t.Fatalf("want none, got %v", got)
	}
}
