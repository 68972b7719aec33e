package infra

import (
	"context"
	"sync"

	"ticket-booking/booking/domain"
)

type Counters struct {
	Sold      int64
	SoldOut   int64
	Rejected  int64
	Abandoned int64
}

// Total soma todos os resultados.
func (c Counters) Total() int64 { return c.Sold + c.SoldOut + c.Rejected + c.Abandoned }

func (c *Counters) add(o domain.Outcome) {
	switch o {
	case domain.Sold:
		c.Sold++
	case domain.SoldOut:
		c.SoldOut++
	case domain.Rejected:
		c.Rejected++
	case domain.Abandoned:
		c.Abandoned++
	}
}

// MemoryReporter é uma implementação simples em memória.
// Útil para testes e para o relatório final do binário.
type MemoryReporter struct {
	mu     sync.Mutex
	total  Counters
	byShow map[domain.ShowID]Counters

	keepResults bool
	results     []domain.Result
}

type MemoryReporterOption func(*MemoryReporter)

// WithKeepResults guarda cada Result recebido (cresce com o número de workers).
func WithKeepResults(keep bool) MemoryReporterOption {
	return func(r *MemoryReporter) { r.keepResults = keep }
}

func NewMemoryReporter(opts ...MemoryReporterOption) *MemoryReporter {
	r := &MemoryReporter{byShow: make(map[domain.ShowID]Counters)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MemoryReporter) Report(_ context.Context, res domain.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total.add(res.Outcome)
	c := r.byShow[res.Show]
	c.add(res.Outcome)
	r.byShow[res.Show] = c
	if r.keepResults {
		r.results = append(r.results, res)
	}
	return nil
}

func (r *MemoryReporter) Total() Counters {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

func (r *MemoryReporter) ByShow() map[domain.ShowID]Counters {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[domain.ShowID]Counters, len(r.byShow))
	for k, v := range r.byShow {
		out[k] = v
	}
	return out
}

func (r *MemoryReporter) Results() []domain.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Result, len(r.results))
	copy(out, r.results)
	return out
}
