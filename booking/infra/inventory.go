package infra

import (
	"fmt"
	"sync"
	"sync/atomic"

	"ticket-booking/booking/domain"
)

// ShowInventory é o contador de ingressos de uma sessão com seu lock exclusivo.
//
// remaining só é lido/alterado com mu em mãos. capacity é imutável.
type ShowInventory struct {
	id       domain.ShowID
	capacity int

	mu        sync.Mutex
	remaining int
}

var _ domain.Show = (*ShowInventory)(nil)

func NewShowInventory(id domain.ShowID, capacity int) (*ShowInventory, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: show %d capacity must be > 0, got %d", domain.ErrInvalidConfig, id, capacity)
	}
	return &ShowInventory{id: id, capacity: capacity, remaining: capacity}, nil
}

func (s *ShowInventory) ID() domain.ShowID { return s.id }
func (s *ShowInventory) Capacity() int     { return s.capacity }

func (s *ShowInventory) Lock()   { s.mu.Lock() }
func (s *ShowInventory) Unlock() { s.mu.Unlock() }

// TryReserve executa o check-then-decrement. Exige o lock da sessão.
func (s *ShowInventory) TryReserve() (domain.Outcome, int) {
	if s.remaining <= 0 {
		return domain.SoldOut, 0
	}
	s.remaining--
	return domain.Sold, s.remaining
}

// Status tira uma foto da sessão adquirindo o lock.
func (s *ShowInventory) Status() domain.ShowStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ShowStatus{ID: s.id, Capacity: s.capacity, Remaining: s.remaining}
}

// Inventory é a coleção fixa de sessões, alocada uma vez no startup
// e descartada uma vez no teardown.
//
// Não existe lock global: cada sessão é protegida apenas pelo próprio mutex.
type Inventory struct {
	shows  []*ShowInventory
	closed atomic.Bool
}

var _ domain.Catalog = (*Inventory)(nil)

// NewInventory cria `shows` sessões (IDs 1..shows), cada uma com `capacity` ingressos.
func NewInventory(shows, capacity int) (*Inventory, error) {
	if shows <= 0 {
		return nil, fmt.Errorf("%w: show count must be > 0, got %d", domain.ErrInvalidConfig, shows)
	}
	inv := &Inventory{shows: make([]*ShowInventory, 0, shows)}
	for i := 1; i <= shows; i++ {
		s, err := NewShowInventory(domain.ShowID(i), capacity)
		if err != nil {
			return nil, err
		}
		inv.shows = append(inv.shows, s)
	}
	return inv, nil
}

// Show implementa domain.Catalog. Depois de Close nenhuma sessão é resolvida.
func (inv *Inventory) Show(id domain.ShowID) (domain.Show, bool) {
	s, ok := inv.lookup(id)
	if !ok {
		return nil, false
	}
	return s, true
}

func (inv *Inventory) lookup(id domain.ShowID) (*ShowInventory, bool) {
	if inv.closed.Load() {
		return nil, false
	}
	i := int(id) - 1
	if i < 0 || i >= len(inv.shows) {
		return nil, false
	}
	return inv.shows[i], true
}

func (inv *Inventory) Len() int { return len(inv.shows) }

func (inv *Inventory) IDs() []domain.ShowID {
	out := make([]domain.ShowID, len(inv.shows))
	for i, s := range inv.shows {
		out[i] = s.id
	}
	return out
}

// Snapshot percorre as sessões uma a uma, cada foto com o lock da própria sessão.
// Não é uma foto atômica do conjunto.
func (inv *Inventory) Snapshot() []domain.ShowStatus {
	out := make([]domain.ShowStatus, len(inv.shows))
	for i, s := range inv.shows {
		out[i] = s.Status()
	}
	return out
}

// Close marca o inventário como descartado. Só deve ser chamado
// depois que todos os workers terminaram.
func (inv *Inventory) Close() {
	inv.closed.Store(true)
}
