package effect

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/zerocore-ai/rxtui/component"
	"github.com/zerocore-ai/rxtui/vnode"
)

type tickerComponent struct {
	component.Base
	ticks *int32
}

func (t tickerComponent) View(ctx *component.Context) vnode.VNode {
	return &vnode.Container{}
}

func (t tickerComponent) Effects(ctx *component.Context) []component.Effect {
	return []component.Effect{{
		Name: "tick",
		Run: func(ctx *component.Context) {
			for {
				select {
				case <-ctx.Done():
					return
				default:
					atomic.AddInt32(t.ticks, 1)
					ctx.Send(true)
					time.Sleep(time.Millisecond)
				}
			}
		},
	}}
}

func TestSchedulerSpawnsAndCancelsEffect(t *testing.T) {
	rt := component.NewRuntime()
	sched := NewScheduler()

	var ticks int32
	comp := tickerComponent{ticks: &ticks}
	live := map[component.Identity]component.Component{component.Root: comp}

	sched.Reconcile(live, rt.ContextFor)

	deadline := time.Now().Add(200 * time.Millisecond)
	for atomic.LoadInt32(&ticks) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if atomic.LoadInt32(&ticks) == 0 {
		t.Fatal("expected the effect to have run at least once")
	}

	sched.Reconcile(map[component.Identity]component.Component{}, rt.ContextFor)
	observed := atomic.LoadInt32(&ticks)
	time.Sleep(20 * time.Millisecond)
	if atomic.LoadInt32(&ticks) > observed+2 {
		t.Fatal("expected the effect to stop ticking shortly after its component unmounted")
	}

	sched.Close()
}
