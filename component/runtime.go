package component

import (
	"github.com/zerocore-ai/rxtui/internal/rxlog"
	"github.com/zerocore-ai/rxtui/vdom"
	"github.com/zerocore-ai/rxtui/vnode"
)

// Runtime owns the state, topic, and message-queue storage that persists
// across frames and drives one component tree's Update→View expansion
// per frame, mirroring core.rs's App fields (vdom aside) plus
// expand_component_tree/node_to_vnode.
type Runtime struct {
	States *StateStore
	Topics *TopicStore
	Queue  *MessageQueue

	ctx   *Context
	mount map[Identity]Component
	exit  bool
}

func NewRuntime() *Runtime {
	states := NewStateStore()
	topics := NewTopicStore()
	queue := NewMessageQueue()
	return &Runtime{
		States: states,
		Topics: topics,
		Queue:  queue,
		ctx:    newContext(states, topics, queue),
		mount:  make(map[Identity]Component),
	}
}

// Result is one frame's expansion output.
type Result struct {
	VNode         vnode.VNode
	Exit          bool
	FocusRequests []FocusRequest
	Blur          bool
	// Live is every component instance reachable this frame, keyed by
	// identity — the effect package diffs this against its own
	// previously-seen set to spawn/cancel background tasks.
	Live map[Identity]Component
}

// Expand drives root's Update for every pending message, then walks its
// View recursively through every mounted child component, returning the
// fully expanded, Mount-free tree ready for vdom.Diff.
//
// An unowned topic's queued messages are snapshotted once here and
// replayed to every component visited this frame (frame-traversal order)
// until one of them claims the topic by returning UpdateTopic — mirroring
// §4.1's "delivered to every component's update, in frame-traversal
// order, until one claims it" rather than the first visitor draining (and
// so discarding) messages meant for whichever component downstream
// actually owns them.
func (rt *Runtime) Expand(root Component) Result {
	rt.exit = false
	live := make(map[Identity]Component)
	topics := rt.Queue.SnapshotTopics()
	vn := rt.step(root, Root, live, topics)

	for id := range rt.mount {
		if _, ok := live[id]; !ok {
			rt.States.Delete(id)
		}
	}
	rt.mount = live

	counts := make(map[string]int, len(topics))
	for topic, msgs := range topics {
		counts[topic] = len(msgs)
	}
	rt.Queue.ConsumeTopics(counts)

	return Result{
		VNode:         vn,
		Exit:          rt.exit,
		FocusRequests: rt.ctx.takeFocusRequests(),
		Blur:          rt.ctx.takeBlurRequest(),
		Live:          live,
	}
}

// step runs one component's Update (for every pending direct message, and
// this frame's snapshot of every topic it hasn't been ruled out of
// owning), records it as live, and recursively expands its View via
// vdom.Expand using rt.mountChild as the callback for any nested
// vnode.Mount. topics is shared, read-only for the whole frame — never
// drained per visiting component.
func (rt *Runtime) step(c Component, id Identity, live map[Identity]Component, topics map[string][]interface{}) vnode.VNode {
	live[id] = c
	rt.ctx.current = id

	for _, msg := range rt.Queue.DrainDirect(id) {
		rt.applyAction(c.Update(rt.ctx, msg, ""), id)
		if rt.exit {
			return &vnode.Container{}
		}
	}

	for topic, msgs := range topics {
		if owner, ok := rt.Topics.Owner(topic); ok && owner != id {
			continue
		}
		for _, msg := range msgs {
			rt.ctx.current = id
			action := c.Update(rt.ctx, msg, topic)
			if ut, ok := action.(UpdateTopicAction); ok && ut.Topic == topic {
				rt.Topics.ClaimTopic(topic, id)
			}
			rt.applyAction(action, id)
			if rt.exit {
				return &vnode.Container{}
			}
		}
	}

	rt.ctx.current = id
	view := c.View(rt.ctx)
	return vdom.Expand(view, string(id), rt.mountChild(live, topics))
}

func (rt *Runtime) mountChild(live map[Identity]Component, topics map[string][]interface{}) vdom.MountFunc {
	return func(component interface{}, path string) vnode.VNode {
		c, ok := component.(Component)
		if !ok {
			rxlog.Errorf("component mount at %s does not implement component.Component", path)
			return &vnode.Container{}
		}
		return rt.step(c, Identity(path), live, topics)
	}
}

// ContextFor returns a Context scoped permanently to id, independent of
// the shared frame-expansion Context whose current identity is
// repointed on every step. Effects run on their own goroutine
// concurrently with the next frame's expansion, so they must never share
// that mutable current field — they get their own Context bound to one
// identity instead, backed by the same (mutex-protected) stores.
func (rt *Runtime) ContextFor(id Identity) *Context {
	c := newContext(rt.States, rt.Topics, rt.Queue)
	c.current = id
	return c
}

func (rt *Runtime) applyAction(action Action, id Identity) {
	switch a := action.(type) {
	case UpdateAction:
		rt.States.Set(id, a.State)
	case UpdateTopicAction:
		rt.Topics.UpdateTopic(a.Topic, a.State, id)
	case ExitAction:
		rt.exit = true
	case NoneAction:
	}
}
