package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ticket-booking/booking/application"
	"ticket-booking/booking/domain"
	"ticket-booking/booking/infra"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Config struct {
	Shows    int
	Capacity int
	// Permits é o teto global de workers admitidos ao mesmo tempo.
	Permits int

	// AdmissionTimeout <= 0 espera indefinidamente pela vaga.
	AdmissionTimeout time.Duration
	// ProcessingDelay é o tempo gasto dentro da seção crítica.
	ProcessingDelay time.Duration
	// DispatchRate limita quantos workers são criados por segundo. <= 0 não limita.
	DispatchRate float64
}

func (c Config) validate() error {
	if c.Shows <= 0 || c.Capacity <= 0 || c.Permits <= 0 {
		return fmt.Errorf("%w: shows=%d capacity=%d permits=%d (all must be > 0)",
			domain.ErrInvalidConfig, c.Shows, c.Capacity, c.Permits)
	}
	return nil
}

type Option func(*System)

// WithReporter define o destino dos resultados. Padrão: nenhum.
func WithReporter(r domain.Reporter) Option {
	return func(s *System) { s.reporter = r }
}

// WithLogger define o logger das transições e falhas de report.
func WithLogger(l *zap.Logger) Option {
	return func(s *System) { s.log = l }
}

// WithRunID fixa o identificador da execução (padrão: UUID novo).
func WithRunID(id string) Option {
	return func(s *System) { s.runID = id }
}

// System é o estado compartilhado de uma execução: o árbitro, o inventário
// e os workers em andamento. Workers não são donos de nada; só recebem referências.
type System struct {
	cfg      Config
	log      *zap.Logger
	runID    string
	reporter domain.Reporter

	pool      *infra.ChanPool
	inventory *infra.Inventory
	pacer     *rate.Limiter

	mu       sync.Mutex
	closed   bool
	inFlight int
	nextID   domain.WorkerID
	wg       sync.WaitGroup
}

// New valida a configuração e cria o árbitro e o inventário.
// Qualquer falha aqui é fatal: nenhum worker roda.
func New(cfg Config, opts ...Option) (*System, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &System{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}

	pool, err := infra.NewChanPool(cfg.Permits)
	if err != nil {
		return nil, fmt.Errorf("init arbiter: %w", err)
	}
	inv, err := infra.NewInventory(cfg.Shows, cfg.Capacity)
	if err != nil {
		return nil, fmt.Errorf("init inventory: %w", err)
	}
	s.pool = pool
	s.inventory = inv

	limit := rate.Inf
	if cfg.DispatchRate > 0 {
		limit = rate.Limit(cfg.DispatchRate)
	}
	s.pacer = rate.NewLimiter(limit, 1)

	return s, nil
}

func (s *System) RunID() string            { return s.runID }
func (s *System) Config() Config           { return s.cfg }
func (s *System) Pool() *infra.ChanPool    { return s.pool }
func (s *System) Catalog() domain.Catalog  { return s.inventory }
func (s *System) ShowIDs() []domain.ShowID { return s.inventory.IDs() }

// UseReporter troca o destino dos resultados. Vale para os workers despachados
// a partir daqui; os já em andamento mantêm o anterior.
func (s *System) UseReporter(r domain.Reporter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reporter = r
}

// Dispatch cria n workers, cada um em sua goroutine, respeitando o ritmo
// configurado. Não espera os workers: use Wait.
//
// Se ctx encerrar durante o ritmo, para de criar e devolve o erro; os já
// criados seguem normalmente.
func (s *System) Dispatch(ctx context.Context, n int, sel domain.Selector) error {
	if sel == nil {
		return fmt.Errorf("%w: nil selector", domain.ErrInvalidConfig)
	}
	for i := 0; i < n; i++ {
		if err := s.pacer.Wait(ctx); err != nil {
			return fmt.Errorf("dispatch stopped after %d of %d workers: %w", i, n, err)
		}
		if _, err := s.spawn(ctx, sel); err != nil {
			return err
		}
	}
	return nil
}

func (s *System) spawn(ctx context.Context, sel domain.Selector) (domain.WorkerID, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0, domain.ErrClosed
	}
	s.nextID++
	id := s.nextID
	reporter := s.reporter
	s.inFlight++
	s.wg.Add(1)
	s.mu.Unlock()

	w := &application.Worker{
		ID: id,
		Arbiter: application.ArbiterService{
			Pool:           s.pool,
			AcquireTimeout: s.cfg.AdmissionTimeout,
		},
		Catalog:         s.inventory,
		Selector:        sel,
		Reporter:        reporter,
		ProcessingDelay: s.cfg.ProcessingDelay,
		OnTransition: func(id domain.WorkerID, st domain.State) {
			s.log.Debug("worker transition", zap.Int("worker", int(id)), zap.Stringer("state", st))
		},
		OnReportError: func(res domain.Result, err error) {
			s.log.Warn("report failed", zap.Int("worker", int(res.Worker)), zap.Error(err))
		},
	}

	go func() {
		defer s.done()
		w.Run(ctx)
	}()
	return id, nil
}

func (s *System) done() {
	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
	s.wg.Done()
}

// Wait bloqueia até todos os workers despachados chegarem em Completed.
func (s *System) Wait() {
	s.wg.Wait()
}

// Snapshot devolve a situação de cada sessão.
func (s *System) Snapshot() []domain.ShowStatus {
	return s.inventory.Snapshot()
}

// Close descarta o inventário e o árbitro. Chamar com workers em andamento
// é erro de uso e não altera nada. Chamadas repetidas são no-op.
func (s *System) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	if s.inFlight > 0 {
		return fmt.Errorf("%w: %d", domain.ErrWorkersInFlight, s.inFlight)
	}
	s.closed = true
	s.inventory.Close()
	return nil
}
