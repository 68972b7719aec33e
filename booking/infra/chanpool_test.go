package infra

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ticket-booking/booking/domain"
)

func TestNewChanPool_RejectsNonPositiveMax(t *testing.T) {
	for _, max := range []int{0, -1} {
		if _, err := NewChanPool(max); !errors.Is(err, domain.ErrInvalidConfig) {
			t.Fatalf("max=%d: expected ErrInvalidConfig, got %v", max, err)
		}
	}
}

func TestChanPool_BlocksWhenFull(t *testing.T) {
	p, err := NewChanPool(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	release, ok := p.Acquire(context.Background())
	if !ok {
		t.Fatalf("expected first acquire to succeed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, ok := p.Acquire(ctx); ok {
		t.Fatalf("expected second acquire to time out")
	}

	release()
	if _, ok := p.Acquire(context.Background()); !ok {
		t.Fatalf("expected acquire after release to succeed")
	}
}

func TestChanPool_DoubleReleaseDoesNotFreeExtraSlot(t *testing.T) {
	p, _ := NewChanPool(1)

	r1, _ := p.Acquire(context.Background())
	r1()
	r1()

	if _, ok := p.Acquire(context.Background()); !ok {
		t.Fatalf("expected acquire to succeed")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, ok := p.Acquire(ctx); ok {
		t.Fatalf("expected pool to be full again (double release leaked a slot)")
	}
	if got := p.InUse(); got != 1 {
		t.Fatalf("expected InUse=1, got %d", got)
	}
}

func TestChanPool_CancelledContextDoesNotAdmit(t *testing.T) {
	p, _ := NewChanPool(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 50; i++ {
		if _, ok := p.Acquire(ctx); ok {
			t.Fatalf("expected cancelled ctx to never admit")
		}
	}
	if got := p.InUse(); got != 0 {
		t.Fatalf("expected InUse=0, got %d", got)
	}
}

func TestChanPool_AdmissionBoundUnderStress(t *testing.T) {
	const permits, workers = 3, 50
	p, _ := NewChanPool(permits)

	var holders, maxSeen atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			release, ok := p.Acquire(context.Background())
			if !ok {
				t.Errorf("unexpected acquire failure")
				return
			}
			n := holders.Add(1)
			for {
				cur := maxSeen.Load()
				if n <= cur || maxSeen.CompareAndSwap(cur, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			holders.Add(-1)
			release()
		}()
	}
	wg.Wait()

	if got := maxSeen.Load(); got > permits {
		t.Fatalf("expected at most %d concurrent holders, saw %d", permits, got)
	}
	if got := p.Peak(); got > permits || got < 1 {
		t.Fatalf("expected 1 <= Peak <= %d, got %d", permits, got)
	}
	if got := p.InUse(); got != 0 {
		t.Fatalf("expected InUse=0 after all releases, got %d", got)
	}
	if p.Cap() != permits {
		t.Fatalf("expected Cap=%d, got %d", permits, p.Cap())
	}
}
