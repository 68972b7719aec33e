package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticket-booking/booking/domain"
)

type blockingPool struct {
}

func (p *blockingPool) Acquire(ctx context.Context) (func(), bool) {
	select {
	case <-ctx.Done():
		return nil, false
	case <-time.After(5 * time.Second):
		// não deve chegar aqui nos testes
		return nil, false
	}
}

// countingPool admite sempre e conta aquisições/liberações.
type countingPool struct {
	acquired int
	released int
	onRelease func()
}

func (p *countingPool) Acquire(ctx context.Context) (func(), bool) {
	p.acquired++
	return func() {
		p.released++
		if p.onRelease != nil {
			p.onRelease()
		}
	}, true
}

func TestArbiterService_Acquire_AllowsWhenNoPool(t *testing.T) {
	svc := ArbiterService{}
	release, err := svc.Acquire(context.Background())
	if err != nil {
		t.Fatalf("expected admission, got %v", err)
	}
	release()
}

func TestArbiterService_Acquire_UsesTimeout(t *testing.T) {
	svc := ArbiterService{Pool: &blockingPool{}, AcquireTimeout: 10 * time.Millisecond}

	_, err := svc.Acquire(context.Background())
	if !errors.Is(err, domain.ErrAdmissionTimeout) {
		t.Fatalf("expected ErrAdmissionTimeout, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped DeadlineExceeded, got %v", err)
	}
}

func TestArbiterService_Acquire_HonoursCallerCancel(t *testing.T) {
	svc := ArbiterService{Pool: &blockingPool{}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Acquire(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestArbiterService_Acquire_NoTimeoutDelegatesToPool(t *testing.T) {
	pool := &countingPool{}
	svc := ArbiterService{Pool: pool, AcquireTimeout: 0}

	release, err := svc.Acquire(context.Background())
	if err != nil {
		t.Fatalf("expected admission, got %v", err)
	}
	release()
	if pool.acquired != 1 || pool.released != 1 {
		t.Fatalf("expected one acquire and one release, got %d/%d", pool.acquired, pool.released)
	}
}
