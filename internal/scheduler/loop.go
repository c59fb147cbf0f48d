package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/healthpoint/internal/availability"
	"github.com/hamed0406/healthpoint/internal/domain"
	"github.com/hamed0406/healthpoint/internal/probe"
	"github.com/hamed0406/healthpoint/internal/report"
	"github.com/hamed0406/healthpoint/internal/repo"
)

const DefaultInterval = 15 * time.Second

type Loop struct {
	Logger      *zap.Logger
	Endpoints   []domain.Endpoint
	Checker     probe.Checker
	Aggregator  *availability.Aggregator
	Printer     *report.Printer
	Rounds      repo.RoundStore
	Interval    time.Duration
	Concurrency int

	round int
}

func NewLoop(
	logger *zap.Logger,
	endpoints []domain.Endpoint,
	checker probe.Checker,
	agg *availability.Aggregator,
	printer *report.Printer,
	rounds repo.RoundStore,
	interval time.Duration,
	concurrency int,
) *Loop {
	if concurrency < 1 {
		concurrency = 1
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		Logger:      logger,
		Endpoints:   endpoints,
		Checker:     checker,
		Aggregator:  agg,
		Printer:     printer,
		Rounds:      rounds,
		Interval:    interval,
		Concurrency: concurrency,
	}
}

// Run does an immediate round, then one round per Interval until ctx is
// cancelled. On cancellation it prints a final availability report.
func (l *Loop) Run(ctx context.Context) {
	l.Logger.Info("loop_started",
		zap.Int("endpoints", len(l.Endpoints)),
		zap.Duration("interval", l.Interval),
		zap.Int("concurrency", l.Concurrency),
	)
	for {
		if r, complete := l.runOnce(ctx); complete {
			l.emit(ctx, r)
		} else {
			l.Logger.Info("round_abandoned",
				zap.Int("round", r.Number),
				zap.Int("probed", len(r.Statuses)),
			)
		}

		t := time.NewTimer(l.Interval)
		select {
		case <-ctx.Done():
			t.Stop()
			l.stop()
			return
		case <-t.C:
		}
	}
}

// runOnce probes every endpoint and applies results in configuration order.
// It reports false when ctx was cancelled before every endpoint was probed;
// results already received are still recorded.
func (l *Loop) runOnce(ctx context.Context) (*domain.Round, bool) {
	l.round++
	r := &domain.Round{Number: l.round, StartedAt: time.Now().UTC()}

	results := make([]probe.Result, len(l.Endpoints))
	probed := make([]bool, len(l.Endpoints))

	// in-flight probes finish on their own timeout instead of being torn down
	probeCtx := context.WithoutCancel(ctx)

	sem := make(chan struct{}, l.Concurrency)
	var wg sync.WaitGroup

launch:
	for i, ep := range l.Endpoints {
		select {
		case <-ctx.Done():
			break launch
		case sem <- struct{}{}:
		}
		if ctx.Err() != nil {
			break launch
		}
		wg.Add(1)
		go func(i int, ep domain.Endpoint) {
			defer func() { <-sem }()
			defer wg.Done()
			results[i] = l.Checker.Check(probeCtx, ep)
			probed[i] = true
		}(i, ep)
	}
	wg.Wait()

	complete := true
	for i, ep := range l.Endpoints {
		if !probed[i] {
			complete = false
			continue
		}
		r.Statuses = append(r.Statuses, l.apply(ep, results[i]))
	}
	r.FinishedAt = time.Now().UTC()
	return r, complete
}

// apply records one probe result and turns it into a status line.
func (l *Loop) apply(ep domain.Endpoint, res probe.Result) domain.Status {
	key, err := domain.ExtractDomain(ep.URL)
	if err != nil {
		l.Logger.Warn("domain_extract_error", zap.String("url", ep.URL), zap.Error(err))
		key = ep.URL
	}
	st := domain.Status{Name: ep.Name, URL: ep.URL, Domain: key, Detail: res.Detail}

	if errors.Is(res.Err, probe.ErrUnsupportedMethod) {
		st.Verdict = domain.VerdictMisconfigured
		l.Logger.Warn("probe_skipped",
			zap.String("name", ep.Name),
			zap.String("url", ep.URL),
			zap.String("method", ep.Method),
			zap.Error(res.Err),
		)
		return st
	}

	l.Aggregator.Record(key, res.Healthy)
	st.Verdict = domain.VerdictDown
	if res.Healthy {
		st.Verdict = domain.VerdictUp
	}
	l.Logger.Debug("probe_checked",
		zap.String("name", ep.Name),
		zap.String("url", ep.URL),
		zap.String("domain", key),
		zap.Int("status", res.StatusCode),
		zap.Bool("up", res.Healthy),
		zap.Float64("latency_ms", res.LatencyMS),
		zap.String("failure", string(res.Failure)),
	)
	return st
}

func (l *Loop) emit(ctx context.Context, r *domain.Round) {
	stats := l.Aggregator.Snapshot()
	keys := make([]string, len(stats))
	for i, s := range stats {
		keys[i] = s.Domain
	}
	cnames := availability.RedundantCNAMEs(keys)
	l.Printer.Round(stats, cnames, r.Statuses)

	if l.Rounds != nil {
		if err := l.Rounds.SaveRound(ctx, r); err != nil {
			l.Logger.Warn("round_save_error", zap.Int("round", r.Number), zap.Error(err))
		}
	}

	up := 0
	for _, s := range r.Statuses {
		if s.Verdict == domain.VerdictUp {
			up++
		}
	}
	l.Logger.Info("round_completed",
		zap.Int("round", r.Number),
		zap.Int("up", up),
		zap.Int("total", len(r.Statuses)),
		zap.Strings("cnames", cnames),
		zap.Duration("took", r.FinishedAt.Sub(r.StartedAt)),
	)
}

func (l *Loop) stop() {
	stats := l.Aggregator.Snapshot()
	l.Printer.Availability(stats)
	for _, s := range stats {
		l.Logger.Info("final_availability",
			zap.String("domain", s.Domain),
			zap.Int("percentage", s.Percentage),
			zap.Uint64("success", s.Success),
			zap.Uint64("total", s.Total),
		)
	}
	l.Logger.Info("loop_stopped", zap.Int("rounds", l.round))
}
