package infra

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"ticket-booking/booking/domain"
)

// ChanPool é um semáforo simples baseado em channel com capacidade fixa.
//
// Além do semáforo, mantém contadores de vagas em uso e do pico observado,
// usados em métricas e nos testes de estresse.
type ChanPool struct {
	sem   chan struct{}
	inUse atomic.Int64
	peak  atomic.Int64
}

var _ domain.SlotPool = (*ChanPool)(nil)

// NewChanPool cria o pool com capacidade `max`. max <= 0 é erro de inicialização.
func NewChanPool(max int) (*ChanPool, error) {
	if max <= 0 {
		return nil, fmt.Errorf("%w: permits must be > 0, got %d", domain.ErrInvalidConfig, max)
	}
	return &ChanPool{sem: make(chan struct{}, max)}, nil
}

func (p *ChanPool) Acquire(ctx context.Context) (func(), bool) {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, false
	}

	// ctx pode ter encerrado junto com a vaga; o select escolhe ao acaso.
	// Nesse caso a vaga é devolvida para honrar o cancelamento.
	if ctx.Err() != nil {
		<-p.sem
		return nil, false
	}

	p.notePeak(p.inUse.Add(1))

	var once sync.Once
	return func() {
		once.Do(func() {
			p.inUse.Add(-1)
			<-p.sem
		})
	}, true
}

func (p *ChanPool) notePeak(n int64) {
	for {
		cur := p.peak.Load()
		if n <= cur || p.peak.CompareAndSwap(cur, n) {
			return
		}
	}
}

// Cap é o teto de vagas simultâneas.
func (p *ChanPool) Cap() int { return cap(p.sem) }

// InUse é quantos workers estão admitidos agora.
func (p *ChanPool) InUse() int { return int(p.inUse.Load()) }

// Peak é o maior número de admitidos simultâneos já observado.
func (p *ChanPool) Peak() int { return int(p.peak.Load()) }
