package application

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"ticket-booking/booking/domain"
)

// Worker é um solicitante: uma única tentativa de reserva.
//
// Ordem: vaga no árbitro -> lock da sessão -> TryReserve -> libera lock ->
// libera vaga -> reporta. Não há retry nem troca de sessão.
type Worker struct {
	ID       domain.WorkerID
	Arbiter  ArbiterService
	Catalog  domain.Catalog
	Selector domain.Selector
	Reporter domain.Reporter

	// ProcessingDelay simula o tempo de processamento dentro da seção crítica.
	ProcessingDelay time.Duration

	// OnTransition é chamado a cada mudança de estado (opcional).
	OnTransition func(id domain.WorkerID, s domain.State)
	// OnReportError recebe a falha do Reporter (opcional). A reserva não é desfeita.
	OnReportError func(res domain.Result, err error)

	state atomic.Int32
	ran   atomic.Bool
}

func (w *Worker) State() domain.State { return domain.State(w.state.Load()) }

func (w *Worker) setState(s domain.State) {
	w.state.Store(int32(s))
	if w.OnTransition != nil {
		w.OnTransition(w.ID, s)
	}
}

// Run executa o worker até Completed e devolve o resultado.
// Um Worker só roda uma vez; chamadas seguintes devolvem Abandoned.
func (w *Worker) Run(ctx context.Context) domain.Result {
	if !w.ran.CompareAndSwap(false, true) {
		return domain.Result{
			Worker:  w.ID,
			Outcome: domain.Abandoned,
			Err:     fmt.Errorf("%w: worker %d already ran", domain.ErrWorkerFault, w.ID),
		}
	}

	res := w.attempt(ctx)
	w.setState(domain.Completed)

	if w.Reporter != nil {
		if err := w.Reporter.Report(ctx, res); err != nil && w.OnReportError != nil {
			w.OnReportError(res, err)
		}
	}
	return res
}

func (w *Worker) attempt(ctx context.Context) (res domain.Result) {
	res.Worker = w.ID

	// o recover fica registrado primeiro para rodar depois de Unlock e release.
	defer func() {
		if p := recover(); p != nil {
			res.Outcome = domain.Abandoned
			res.Remaining = 0
			res.Err = fmt.Errorf("%w: %v", domain.ErrWorkerFault, p)
		}
	}()

	res.Show = w.Selector.Select(w.ID)
	w.setState(domain.AwaitingAdmission)

	show, ok := w.Catalog.Show(res.Show)
	if !ok {
		res.Outcome = domain.Abandoned
		res.Err = fmt.Errorf("%w: %d", domain.ErrInvalidShow, res.Show)
		return res
	}

	release, err := w.Arbiter.Acquire(ctx)
	if err != nil {
		res.Outcome = domain.Rejected
		res.Err = err
		return res
	}
	defer release()
	w.setState(domain.Admitted)

	w.setState(domain.AwaitingShowLock)
	show.Lock()
	defer show.Unlock()
	w.setState(domain.InCriticalSection)

	if w.ProcessingDelay > 0 {
		time.Sleep(w.ProcessingDelay)
	}
	res.Outcome, res.Remaining = show.TryReserve()
	return res
}
