package memory

import (
	"context"
	"testing"
	"time"

	"github.com/hamed0406/healthpoint/internal/domain"
)

func TestMemoryStore_LastRoundEmpty(t *testing.T) {
	s := New(3)
	r, err := s.LastRound(context.Background())
	if err != nil || r != nil {
		t.Fatalf("want nil,nil before first round, got %+v err=%v", r, err)
	}
}

func TestMemoryStore_SaveAndRead(t *testing.T) {
	ctx := context.Background()
	s := New(2)

	for i := 1; i <= 3; i++ {
		r := &domain.Round{
			Number:    i,
			StartedAt: time.Now().UTC(),
			Statuses:  []domain.Status{{Name: "a", Verdict: domain.VerdictUp}},
		}
		if err := s.SaveRound(ctx, r); err != nil {
			t.Fatalf("SaveRound: %v", err)
		}
	}

	last, err := s.LastRound(ctx)
	if err != nil {
		t.Fatalf("LastRound: %v", err)
	}
	if last == nil || last.Number != 3 {
		t.Fatalf("want round 3, got %+v", last)
	}

	all, err := s.Rounds(ctx, 0)
	if err != nil {
		t.Fatalf("Rounds: %v", err)
	}
	if len(all) != 2 || all[0].Number != 3 || all[1].Number != 2 {
		t.Fatalf("want rounds [3 2] after eviction, got %d rows", len(all))
	}
}

func TestMemoryStore_SaveCopiesStatuses(t *testing.T) {
	ctx := context.Background()
	s := New(1)
	r := &domain.Round{Number: 1, Statuses: []domain.Status{{Name: "a"}}}
	_ = s.SaveRound(ctx, r)
	r.Statuses[0].Name = "mutated"

	last, _ := s.LastRound(ctx)
	if last.Statuses[0].Name != "a" {
		t.Fatalf("store should not alias caller slice, got %q", last.Statuses[0].Name)
	}
}
