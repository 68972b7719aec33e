package infra

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"ticket-booking/booking/domain"
)

func TestShowInventory_TryReserveUntilSoldOut(t *testing.T) {
	s, err := NewShowInventory(1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Lock()
	defer s.Unlock()

	if o, rem := s.TryReserve(); o != domain.Sold || rem != 1 {
		t.Fatalf("expected sold with 1 remaining, got %s/%d", o, rem)
	}
	if o, rem := s.TryReserve(); o != domain.Sold || rem != 0 {
		t.Fatalf("expected sold with 0 remaining, got %s/%d", o, rem)
	}
	if o, _ := s.TryReserve(); o != domain.SoldOut {
		t.Fatalf("expected sold out, got %s", o)
	}
	if s.remaining != 0 {
		t.Fatalf("expected remaining to stay at 0, got %d", s.remaining)
	}
}

func TestNewShowInventory_RejectsNonPositiveCapacity(t *testing.T) {
	if _, err := NewShowInventory(1, 0); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewInventory_AssignsIDsFromOne(t *testing.T) {
	inv, err := NewInventory(3, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids := inv.IDs()
	if len(ids) != 3 || ids[0] != 1 || ids[2] != 3 {
		t.Fatalf("expected ids [1 2 3], got %v", ids)
	}
	for _, st := range inv.Snapshot() {
		if st.Capacity != 5 || st.Remaining != 5 || st.Booked() != 0 {
			t.Fatalf("unexpected initial status %+v", st)
		}
	}
}

func TestNewInventory_InvalidConfig(t *testing.T) {
	if _, err := NewInventory(0, 5); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for 0 shows, got %v", err)
	}
	if _, err := NewInventory(2, -1); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative capacity, got %v", err)
	}
}

func TestInventory_ShowLookup(t *testing.T) {
	inv, _ := NewInventory(2, 1)

	if _, ok := inv.Show(0); ok {
		t.Fatalf("expected show 0 to be invalid")
	}
	if _, ok := inv.Show(3); ok {
		t.Fatalf("expected show 3 to be invalid")
	}
	s, ok := inv.Show(2)
	if !ok || s.ID() != 2 {
		t.Fatalf("expected to resolve show 2")
	}

	inv.Close()
	if _, ok := inv.Show(2); ok {
		t.Fatalf("expected no show to resolve after Close")
	}
}

func TestShowInventory_ConcurrentReservationsNeverOversell(t *testing.T) {
	const capacity, callers = 10, 200
	s, _ := NewShowInventory(1, capacity)

	var sold atomic.Int64
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			s.Lock()
			o, rem := s.TryReserve()
			if rem < 0 {
				t.Errorf("remaining went negative: %d", rem)
			}
			s.Unlock()
			if o == domain.Sold {
				sold.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := sold.Load(); got != capacity {
		t.Fatalf("expected %d sold, got %d", capacity, got)
	}
	if st := s.Status(); st.Remaining != 0 || st.Booked() != capacity {
		t.Fatalf("unexpected final status %+v", st)
	}
}
