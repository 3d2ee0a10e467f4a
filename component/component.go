package component

import "github.com/zerocore-ai/rxtui/vnode"

// Component is the unit of reactive state: Update folds a message into an
// Action, View renders the current state into a tree (which may itself
// mount child components via vnode.Mount), and Effects lists the
// background tasks that should be running while this component is
// mounted. Grounded on lib.rs's Component trait and core.rs's
// expand_component_tree driving Update then View per frame.
type Component interface {
	Update(ctx *Context, msg interface{}, topic string) Action
	View(ctx *Context) vnode.VNode
	Effects(ctx *Context) []Effect
}

// Effect is a named background task a component wants running for as
// long as it stays mounted. Run is invoked with a Context scoped to the
// owning component and a channel-like cancellation signal via ctx's
// Done(); the effect package supervises Run's lifetime.
type Effect struct {
	Name string
	Run  func(ctx *Context)
}

// Base embeds into a Component to supply no-op Update/Effects, so a
// display-only component needs to implement only View.
type Base struct{}

func (Base) Update(ctx *Context, msg interface{}, topic string) Action { return None() }

func (Base) Effects(ctx *Context) []Effect { return nil }
