package application

import (
	"context"
	"fmt"
	"time"

	"ticket-booking/booking/domain"
)

// ArbiterService concentra a regra de aquisição/liberação de vagas de admissão,
// sem saber nada sobre como o pool é implementado.
type ArbiterService struct {
	Pool           domain.SlotPool
	AcquireTimeout time.Duration
}

// Acquire tenta adquirir uma vaga.
// - Se `AcquireTimeout <= 0`, espera indefinidamente (até ctx cancelar).
// - Se `AcquireTimeout > 0`, espera até o timeout.
// Em caso de sucesso, release deve ser chamado exatamente uma vez.
// Em caso de erro, nenhuma vaga foi adquirida.
func (s ArbiterService) Acquire(ctx context.Context) (func(), error) {
	if s.Pool == nil {
		return func() {}, nil
	}

	acqCtx := ctx
	if s.AcquireTimeout > 0 {
		var cancel context.CancelFunc
		acqCtx, cancel = context.WithTimeout(ctx, s.AcquireTimeout)
		defer cancel()
	}

	release, ok := s.Pool.Acquire(acqCtx)
	if !ok {
		return nil, fmt.Errorf("%w: %w", domain.ErrAdmissionTimeout, context.Cause(acqCtx))
	}
	return release, nil
}
