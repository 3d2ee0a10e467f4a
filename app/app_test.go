package app

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/zerocore-ai/rxtui/backend/sim"
	"github.com/zerocore-ai/rxtui/component"
	"github.com/zerocore-ai/rxtui/termevent"
	"github.com/zerocore-ai/rxtui/vnode"
)

// counterView is a minimal focusable component: Enter increments a
// counter rendered as plain text, used to exercise the full
// input→Update→View→diff→layout→draw→flush pipeline end to end.
type counterView struct {
	component.Base
}

func (counterView) Update(ctx *component.Context, msg interface{}, topic string) component.Action {
	if _, ok := msg.(string); ok {
		state, _ := ctx.GetState()
		count, _ := state.(int)
		return component.Update(count + 1)
	}
	return component.None()
}

func (counterView) View(ctx *component.Context) vnode.VNode {
	ctx.FocusFirst()
	state, _ := ctx.GetState()
	count, _ := state.(int)
	return &vnode.Container{
		Focusable: true,
		Events: vnode.EventCallbacks{
			OnKey: []vnode.KeyHandler{{Key: vnode.KeyEnter, Handle: ctx.Handler("inc")}},
		},
		Children: []vnode.VNode{
			&vnode.Text{Content: "count:" + strconv.Itoa(count)},
		},
	}
}

func waitForText(t *testing.T, be *sim.Backend, text string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if be.ContainsText(text) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q; screen was:\n%s", text, be.Capture())
}

func TestAppRendersAndHandlesKeyPress(t *testing.T) {
	be := sim.New(20, 5)
	a := New(Config{Backend: be, Root: counterView{}, Render: DebugRenderConfig()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	waitForText(t, be, "count:0")

	be.InjectKey(termevent.KeyEnter, 0)
	waitForText(t, be, "count:1")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Run to return promptly after context cancellation")
	}
}

func TestAppResizeTriggersRedraw(t *testing.T) {
	be := sim.New(20, 5)
	a := New(Config{Backend: be, Root: counterView{}, Render: DebugRenderConfig()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	waitForText(t, be, "count:0")
	be.InjectResize(30, 8)
	time.Sleep(50 * time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Run to return promptly after context cancellation")
	}
}
