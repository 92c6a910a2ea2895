package fontdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tdewolff/test"
)

func TestLoaderComplete(t *testing.T) {
	l := NewLoader()
	test.That(t, !l.IsComplete("a.js"))

	done := l.Done("a.js")
	select {
	case <-done:
		t.Fatal("resource must not be complete before Complete is called")
	default:
	}

	calls := 0
	l.OnComplete("a.js", func() { calls++ })
	test.Error(t, l.Complete("a.js"))
	<-done
	test.That(t, l.IsComplete("a.js"))
	test.T(t, calls, 1)

	err := l.Complete("a.js")
	test.That(t, errors.Is(err, ErrAlreadyComplete), "completion must be signaled only once")
	test.T(t, calls, 1)

	// callbacks registered after completion run immediately
	l.OnComplete("a.js", func() { calls++ })
	test.T(t, calls, 2)

	test.Error(t, l.Complete("b.js"))
	if diff := cmp.Diff([]string{"a.js", "b.js"}, l.Completed()); diff != "" {
		t.Errorf("Completed() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderWait(t *testing.T) {
	l := NewLoader()

	errs := make(chan error, 1)
	go func() {
		errs <- l.Wait(context.Background(), "a.js")
	}()
	test.Error(t, l.Complete("a.js"))
	test.Error(t, <-errs)

	// already complete
	test.Error(t, l.Wait(context.Background(), "a.js"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := l.Wait(ctx, "missing.js")
	test.That(t, errors.Is(err, context.DeadlineExceeded))
	test.That(t, !l.IsComplete("missing.js"))
}

func TestLoaderWaitCancelled(t *testing.T) {
	l := NewLoader()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.Wait(ctx, "missing.js")
	test.That(t, errors.Is(err, context.Canceled))
	test.T(t, len(l.resources), 0)

	// entries still referred to by a Done channel or callback are kept
	done := l.Done("b.js")
	test.That(t, errors.Is(l.Wait(ctx, "b.js"), context.Canceled))
	calls := 0
	l.OnComplete("c.js", func() { calls++ })
	test.That(t, errors.Is(l.Wait(ctx, "c.js"), context.Canceled))
	test.T(t, len(l.resources), 2)

	test.Error(t, l.Complete("b.js"))
	<-done
	test.Error(t, l.Complete("c.js"))
	test.T(t, calls, 1)

	// a later Complete still releases new waiters
	test.Error(t, l.Complete("missing.js"))
	test.Error(t, l.Wait(context.Background(), "missing.js"))
}
