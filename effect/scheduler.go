// Package effect supervises the background tasks (component.Effect
// values) that a mounted component wants running for as long as it stays
// mounted: one goroutine per identity+name, cancelled the moment its
// owning component disappears from the tree, panics contained and
// logged rather than taking down the app. Grounded on the teacher's
// go a.pollEvents() goroutine-per-background-task idiom in
// pkg/ui/runtime/app.go, generalized to many concurrent, individually
// cancellable tasks per spec §5.
package effect

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/zerocore-ai/rxtui/component"
	"github.com/zerocore-ai/rxtui/internal/rxlog"
)

// ContextFor resolves a component.Context bound to one identity, used as
// the argument to that identity's Effect.Run functions.
type ContextFor func(id component.Identity) *component.Context

type effectKey struct {
	id   component.Identity
	name string
}

// Scheduler tracks one goroutine per live (identity, effect name) pair.
type Scheduler struct {
	mu      sync.Mutex
	cancels map[effectKey]context.CancelFunc
	group   errgroup.Group
	rootCtx context.Context
	cancel  context.CancelFunc
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cancels: make(map[effectKey]context.CancelFunc),
		rootCtx: ctx,
		cancel:  cancel,
	}
}

// Reconcile compares live (this frame's mounted components, as reported
// by component.Runtime.Expand's Result.Live) against what is currently
// running: it spawns effects for newly mounted components and cancels
// effects whose component is no longer in the tree. ctxFor supplies the
// Context scoped to each identity, used both to read a component's
// current Effect list and as the argument to its Run functions.
func (s *Scheduler) Reconcile(live map[component.Identity]component.Component, ctxFor ContextFor) {
	s.mu.Lock()
	wanted := make(map[effectKey]component.Effect)
	for id, c := range live {
		for _, eff := range c.Effects(ctxFor(id)) {
			wanted[effectKey{id: id, name: eff.Name}] = eff
		}
	}

	for key, cancel := range s.cancels {
		if _, ok := wanted[key]; !ok {
			cancel()
			delete(s.cancels, key)
		}
	}

	var toSpawn []struct {
		key effectKey
		eff component.Effect
	}
	for key, eff := range wanted {
		if _, running := s.cancels[key]; !running {
			toSpawn = append(toSpawn, struct {
				key effectKey
				eff component.Effect
			}{key, eff})
		}
	}
	s.mu.Unlock()

	for _, t := range toSpawn {
		s.spawn(t.key, t.eff, ctxFor(t.key.id))
	}
}

func (s *Scheduler) spawn(key effectKey, eff component.Effect, ctx *component.Context) {
	taskCtx, cancel := context.WithCancel(s.rootCtx)
	s.mu.Lock()
	s.cancels[key] = cancel
	s.mu.Unlock()

	scoped := ctx.WithDone(taskCtx.Done())
	s.group.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				rxlog.Errorf("effect %q on %s panicked: %v", key.name, key.id, r)
			}
		}()
		eff.Run(scoped)
		return nil
	})
}

// Close cancels every running effect and waits for its goroutine to
// return — Run implementations are expected to observe cancellation
// promptly via whatever channel/context plumbing they themselves use;
// Close blocks until every Run has returned, and a Run that ignores
// cancellation keeps Close waiting.
func (s *Scheduler) Close() {
	s.mu.Lock()
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = make(map[effectKey]context.CancelFunc)
	s.mu.Unlock()
	s.cancel()
	_ = s.group.Wait()
}
