// Package app wires component.Runtime, vdom, render, effect, focus, and
// event together into the frame loop a running program actually drives:
// poll input, expand components, diff/patch the render tree, reconcile
// effects, lay out, draw, and flush the minimal cell diff to the
// backend. Grounded on pkg/ui/runtime/app.go's Run/pollEvents/render
// structure and original_source/rxtui/lib/app/core.rs's run_loop /
// expand_component_tree / apply_focus_requests.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/zerocore-ai/rxtui/cellbuf"
	"github.com/zerocore-ai/rxtui/component"
	"github.com/zerocore-ai/rxtui/effect"
	"github.com/zerocore-ai/rxtui/event"
	"github.com/zerocore-ai/rxtui/focus"
	"github.com/zerocore-ai/rxtui/render"
	"github.com/zerocore-ai/rxtui/termevent"
	"github.com/zerocore-ai/rxtui/vdom"
)

// App runs one root component against a backend until it exits, the
// root's Update returns component.Exit(), or the caller's context is
// cancelled.
type App struct {
	cfg Config

	runtime    *component.Runtime
	scheduler  *effect.Scheduler
	scope      *focus.Scope
	dispatcher *event.Dispatcher

	tree *render.Tree
	buf  *cellbuf.Buffer

	inline *inlineState

	width, height int
}

// New builds an App from cfg. Call Run to start it.
func New(cfg Config) *App {
	if cfg.Render.PollInterval <= 0 {
		cfg.Render = DefaultRenderConfig()
	}
	scope := focus.NewScope()
	return &App{
		cfg:        cfg,
		runtime:    component.NewRuntime(),
		scheduler:  effect.NewScheduler(),
		scope:      scope,
		dispatcher: event.NewDispatcher(scope),
		tree:       render.NewTree(nil),
	}
}

// Run starts the frame loop. It blocks until ctx is cancelled, the
// component tree requests exit, or the backend fails to initialize.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Backend == nil {
		return errors.New("app: backend is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.cfg.Backend.Init(); err != nil {
		return err
	}
	defer a.cfg.Backend.Fini()

	a.width, a.height = a.cfg.Backend.Size()
	if a.cfg.Mode == Inline {
		a.inline = newInlineState()
		height := a.inline.resolveHeight(a.cfg.Inline.Height, a.height)
		a.inline.reserve(a.cfg.Backend, height)
		a.height = height
	} else {
		a.cfg.Backend.HideCursor()
	}
	a.buf = cellbuf.New(a.width, a.height)

	events := make(chan termevent.Event, 128)
	stop := make(chan struct{})
	go a.pollEvents(events, stop)
	defer close(stop)

	ticker := time.NewTicker(a.cfg.Render.PollInterval)
	defer ticker.Stop()

	a.renderFrame()
	if a.inline != nil && !a.cfg.Inline.CursorVisible {
		a.cfg.Backend.HideCursor()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if a.handleEvent(ev) {
				if exit := a.renderFrame(); exit {
					return nil
				}
			}
		case <-ticker.C:
			if a.runtime.Queue.HasPending() {
				if exit := a.renderFrame(); exit {
					return nil
				}
			}
		}
	}
}

func (a *App) pollEvents(out chan<- termevent.Event, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}
		ev := a.cfg.Backend.PollEvent()
		if ev == nil {
			continue
		}
		select {
		case out <- ev:
		case <-stop:
			return
		}
	}
}

// handleEvent applies an event's immediate side effects (resize, input
// routing) and reports whether a re-render is warranted.
func (a *App) handleEvent(ev termevent.Event) bool {
	switch e := ev.(type) {
	case termevent.ResizeEvent:
		a.width, a.height = e.Width, e.Height
		a.buf.Resize(a.width, a.height)
		return true
	default:
		return a.dispatcher.Dispatch(a.tree.Root, ev)
	}
}

// renderFrame runs one full Update→View→diff→layout→draw→flush pass and
// reports whether the component tree requested exit.
func (a *App) renderFrame() bool {
	result := a.runtime.Expand(a.cfg.Root)

	if a.tree.Root == nil {
		a.tree.Root = vdom.Build(result.VNode)
	} else {
		patches := vdom.Diff(a.tree.Root, result.VNode)
		vdom.Apply(patches, &a.tree.Root)
	}

	height := a.height
	if a.inline != nil {
		a.tree.Layout(a.width, a.height, true)
		height = a.inline.resolveHeight(a.cfg.Inline.Height, a.tree.Root.ContentSize.Height)
		if height > a.inline.reservedHeight {
			a.inline.expand(a.cfg.Backend, height)
			a.height = height
			a.buf.Resize(a.width, a.height)
		} else {
			height = a.inline.reservedHeight
		}
	}
	a.tree.Layout(a.width, height, false)

	a.scope.Sync(a.tree.Root)
	applyFocusRequests(a.tree.Root, a.scope, result.FocusRequests, result.Blur)

	a.scheduler.Reconcile(result.Live, a.runtime.ContextFor)

	a.tree.Draw(a.buf)
	a.flush()

	if result.Exit {
		if a.inline != nil && a.cfg.Inline.PreserveOnExit {
			a.inline.moveToEnd(a.cfg.Backend)
		}
		return true
	}
	return false
}

func (a *App) flush() {
	for _, u := range a.buf.Diff() {
		a.cfg.Backend.SetContent(u.X, u.Y, u.Cell.Rune, u.Cell.Style)
	}
	a.buf.Swap()
	a.cfg.Backend.Show()
}

// applyFocusRequests resolves this frame's focus/blur requests against
// the freshly synced scope: a component-scoped request locates that
// component's own root render node (the one vdom.Expand stamped with
// exactly this identity as its ComponentPath) and focuses the first
// focusable node within its subtree; a global request focuses the first
// focusable node in the whole tree. Either kind of request cancels a
// pending blur, mirroring apply_focus_requests's focus-cancels-clear
// rule.
func applyFocusRequests(root *render.Node, scope *focus.Scope, requests []component.FocusRequest, blur bool) {
	if len(requests) == 0 {
		if blur {
			scope.ClearFocus()
		}
		return
	}

	for _, req := range requests {
		switch req.Kind {
		case component.FocusGlobalFirst:
			scope.FocusFirst()
		case component.FocusComponent:
			if n := firstFocusableUnder(root, string(req.Target)); n != nil {
				scope.SetFocus(n)
			}
		}
	}
}

// firstFocusableUnder finds the render node whose ComponentPath exactly
// matches path (that component's own root view node) and returns the
// first focusable node within its subtree, document order.
func firstFocusableUnder(root *render.Node, path string) *render.Node {
	anchor := findByComponentPath(root, path)
	if anchor == nil {
		return nil
	}
	for _, n := range render.DocumentOrder(anchor, nil) {
		if n.Kind == render.KindContainer && n.Focusable {
			return n
		}
	}
	return nil
}

func findByComponentPath(n *render.Node, path string) *render.Node {
	if n == nil {
		return nil
	}
	if n.Kind == render.KindContainer && n.ComponentPath == path {
		return n
	}
	for _, c := range n.Children {
		if found := findByComponentPath(c, path); found != nil {
			return found
		}
	}
	return nil
}
