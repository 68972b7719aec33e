package infra

import (
	"math/rand/v2"
	"sync"

	"ticket-booking/booking/domain"
)

// RandomSelector escolhe uma sessão uniformemente entre 1..shows.
// Não há fallback: se a sessão escolhida esgotou, o worker recebe SoldOut.
type RandomSelector struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	shows int
}

var _ domain.Selector = (*RandomSelector)(nil)

// NewRandomSelector cria o seletor. seed == 0 usa uma semente aleatória.
func NewRandomSelector(shows int, seed uint64) *RandomSelector {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &RandomSelector{
		rnd:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		shows: shows,
	}
}

func (s *RandomSelector) Select(domain.WorkerID) domain.ShowID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ShowID(s.rnd.IntN(s.shows) + 1)
}
