package infra

import (
	"context"
	"errors"
	"testing"

	"ticket-booking/booking/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMemoryReporter_CountsByShow(t *testing.T) {
	r := NewMemoryReporter(WithKeepResults(true))
	ctx := context.Background()

	_ = r.Report(ctx, domain.Result{Worker: 1, Show: 1, Outcome: domain.Sold, Remaining: 4})
	_ = r.Report(ctx, domain.Result{Worker: 2, Show: 1, Outcome: domain.SoldOut})
	_ = r.Report(ctx, domain.Result{Worker: 3, Show: 2, Outcome: domain.Sold, Remaining: 0})
	_ = r.Report(ctx, domain.Result{Worker: 4, Show: 2, Outcome: domain.Rejected})

	total := r.Total()
	if total.Sold != 2 || total.SoldOut != 1 || total.Rejected != 1 || total.Total() != 4 {
		t.Fatalf("unexpected totals %+v", total)
	}
	by := r.ByShow()
	if by[1].Sold != 1 || by[1].SoldOut != 1 || by[2].Sold != 1 || by[2].Rejected != 1 {
		t.Fatalf("unexpected per-show counters %+v", by)
	}
	if got := len(r.Results()); got != 4 {
		t.Fatalf("expected 4 kept results, got %d", got)
	}
}

type failingReporter struct{ err error }

func (f failingReporter) Report(context.Context, domain.Result) error { return f.err }

func TestMultiReporter_ContinuesAfterError(t *testing.T) {
	boom := errors.New("boom")
	mem := NewMemoryReporter()
	m := MultiReporter{failingReporter{err: boom}, nil, mem}

	err := m.Report(context.Background(), domain.Result{Show: 1, Outcome: domain.Sold})
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined error to contain boom, got %v", err)
	}
	if mem.Total().Sold != 1 {
		t.Fatalf("expected memory reporter to still receive the result")
	}
}

func TestRedisReporter_NilClientIsNoop(t *testing.T) {
	r := NewRedisReporter(nil, WithStatsPrefix(":x:"), WithStatsRunID(" run "))
	if err := r.Report(context.Background(), domain.Result{Show: 1, Outcome: domain.Sold}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := r.keyPrefix(); got != "x:run:run" {
		t.Fatalf("unexpected key prefix %q", got)
	}
}

type fixedGauge int

func (g fixedGauge) InUse() int { return int(g) }

func TestMetricsReporter_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetricsReporter(reg, fixedGauge(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	_ = m.Report(ctx, domain.Result{Show: 1, Outcome: domain.Sold})
	_ = m.Report(ctx, domain.Result{Show: 1, Outcome: domain.Sold})
	_ = m.Report(ctx, domain.Result{Show: 2, Outcome: domain.SoldOut})

	if got := testutil.ToFloat64(m.outcomes.WithLabelValues("1", "sold")); got != 2 {
		t.Fatalf("expected 2 sold for show 1, got %v", got)
	}
	if got := testutil.ToFloat64(m.outcomes.WithLabelValues("2", "sold_out")); got != 1 {
		t.Fatalf("expected 1 sold_out for show 2, got %v", got)
	}
	if n, err := testutil.GatherAndCount(reg, "booking_admitted_workers"); err != nil || n != 1 {
		t.Fatalf("expected admitted gauge to be registered, n=%d err=%v", n, err)
	}

	if _, err := NewMetricsReporter(reg, nil); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}
