package tx

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSerialNestedCallsDoNotDeadlock(t *testing.T) {
	t.Parallel()
	s := NewSerial()
	done := make(chan error, 1)
	go func() {
		done <- s.Within(context.Background(), func(ctx context.Context) error {
			return s.Within(ctx, func(context.Context) error { return nil })
		})
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("nested within: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("nested Within deadlocked")
	}
}

func TestSerialRunsOneUnitAtATime(t *testing.T) {
	t.Parallel()
	s := NewSerial()
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		running int
		peak    int
	)
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Within(context.Background(), func(context.Context) error {
				mu.Lock()
				running++
				if running > peak {
					peak = running
				}
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				running--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()
	if peak != 1 {
		t.Fatalf("expected at most one unit running, saw %d", peak)
	}
}

func TestDoReturnsValueAndError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	got, err := Do(context.Background(), OrNoop(nil), func(context.Context) (int, error) { return 7, boom })
	if got != 7 || !errors.Is(err, boom) {
		t.Fatalf("Do = %d, %v", got, err)
	}
}

func TestSerialRejectsCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := NewSerial().Within(ctx, func(context.Context) error { called = true; return nil })
	if !errors.Is(err, context.Canceled) || called {
		t.Fatalf("expected cancellation before fn, err=%v called=%v", err, called)
	}
}
