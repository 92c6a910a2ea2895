package fontdata

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// A Loader tracks the completion of resources identified by their path. Dependent work waits on a path with Wait, Done or OnComplete and is released once Complete is called for that path.
//
// It is safe to use a Loader concurrently from multiple goroutines.
type Loader struct {
	mu        sync.Mutex
	resources map[string]*pending
}

type pending struct {
	done      chan struct{}
	complete  bool
	callbacks []func()
	waiters   int  // blocked in Wait
	shared    bool // done was returned by Done
}

// NewLoader returns a loader without any completed resources.
func NewLoader() *Loader {
	return &Loader{
		resources: map[string]*pending{},
	}
}

// get must be called with l.mu held. Entries for paths that never complete are kept while Done channels or callbacks refer to them, and are removed by prune otherwise.
func (l *Loader) get(path string) *pending {
	p, ok := l.resources[path]
	if !ok {
		p = &pending{done: make(chan struct{})}
		l.resources[path] = p
	}
	return p
}

// Complete marks the resource as loaded, releasing all waiters and running its callbacks. It returns ErrAlreadyComplete if the resource was completed before.
func (l *Loader) Complete(path string) error {
	l.mu.Lock()
	p := l.get(path)
	if p.complete {
		l.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyComplete, path)
	}
	p.complete = true
	callbacks := p.callbacks
	p.callbacks = nil
	close(p.done)
	l.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}
	return nil
}

// Done returns a channel that is closed once the resource is complete.
func (l *Loader) Done(path string) <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.get(path)
	p.shared = true
	return p.done
}

// Wait blocks until the resource is complete or the context is done.
func (l *Loader) Wait(ctx context.Context, path string) error {
	l.mu.Lock()
	p := l.get(path)
	p.waiters++
	l.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		l.mu.Lock()
		p.waiters--
		l.prune(path, p)
		l.mu.Unlock()
		return fmt.Errorf("waiting for %s: %w", path, ctx.Err())
	}
}

// prune removes an incomplete entry nobody refers to anymore. It must be called with l.mu held.
func (l *Loader) prune(path string, p *pending) {
	if !p.complete && p.waiters == 0 && !p.shared && len(p.callbacks) == 0 && l.resources[path] == p {
		delete(l.resources, path)
	}
}

// OnComplete registers f to be called once the resource is complete. If it already is, f is called immediately.
func (l *Loader) OnComplete(path string, f func()) {
	l.mu.Lock()
	p := l.get(path)
	if !p.complete {
		p.callbacks = append(p.callbacks, f)
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()
	f()
}

// IsComplete returns true if the resource has been completed.
func (l *Loader) IsComplete(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.resources[path]
	return ok && p.complete
}

// Completed returns the sorted paths of all completed resources.
func (l *Loader) Completed() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	paths := []string{}
	for path, p := range l.resources {
		if p.complete {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}
