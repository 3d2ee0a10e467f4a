package component

import "github.com/zerocore-ai/rxtui/internal/rxlog"

// FocusTargetKind discriminates FocusRequest.
type FocusTargetKind int

const (
	// FocusComponent focuses the first focusable node within one
	// component's subtree.
	FocusComponent FocusTargetKind = iota
	// FocusGlobalFirst focuses the first focusable node in the whole tree.
	FocusGlobalFirst
)

// FocusRequest is queued by Context.FocusSelf/FocusFirst and drained by
// the app loop once per frame, after layout has produced real node
// positions to focus against.
type FocusRequest struct {
	Kind   FocusTargetKind
	Target Identity // valid when Kind == FocusComponent
}

// Context is the single handle a Component's Update/View/Effects receive.
// One Context is reused across an entire frame's expansion pass; Runtime
// repoints its current identity around each component the way core.rs's
// Context.current_component_id is reassigned and restored during
// expand_component_tree/node_to_vnode recursion.
type Context struct {
	states *StateStore
	topics *TopicStore
	queue  *MessageQueue

	current Identity

	focusRequests []FocusRequest
	blurRequested bool

	// done is set only on a Context minted for one effect's lifetime
	// (via WithDone); a frame-expansion Context leaves it nil, so Done
	// never fires for Update/View code.
	done <-chan struct{}
}

// WithDone returns a shallow copy of c whose Done() channel is done —
// the effect package uses this to hand an effect's Run function a
// Context it can select on to notice its own cancellation.
func (c *Context) WithDone(done <-chan struct{}) *Context {
	scoped := *c
	scoped.done = done
	return &scoped
}

// Done returns the channel that closes when this Context's owning effect
// should stop, or nil if this Context was never scoped to one (the
// per-frame Update/View Context has no such lifetime).
func (c *Context) Done() <-chan struct{} { return c.done }

func newContext(states *StateStore, topics *TopicStore, queue *MessageQueue) *Context {
	return &Context{
		states: states,
		topics: topics,
		queue:  queue,
	}
}

// Identity returns the identity of the component currently being
// updated/viewed.
func (c *Context) Identity() Identity { return c.current }

// GetState returns a clone of the current component's own state.
func (c *Context) GetState() (interface{}, bool) {
	return c.states.GetCloned(c.current)
}

// ReadTopic returns a clone of topic's current shared state.
func (c *Context) ReadTopic(topic string) (interface{}, bool) {
	return c.topics.Read(topic)
}

// Send queues msg for delivery to the current component itself, the way
// an effect calls ctx.send(tick) to feed its own Update.
func (c *Context) Send(msg interface{}) {
	if !c.queue.SendDirect(c.current, msg) {
		rxlog.Warnf("component %s: self-send cap (%d) reached, dropping message", c.current, selfSendCap)
	}
}

// SendTo queues msg for delivery to a specific component identity.
func (c *Context) SendTo(id Identity, msg interface{}) {
	if !c.queue.SendDirect(id, msg) {
		rxlog.Warnf("component %s: send cap (%d) reached, dropping message", id, selfSendCap)
	}
}

// SendTopic broadcasts msg to whichever component owns (or next claims)
// topic.
func (c *Context) SendTopic(topic string, msg interface{}) {
	if !c.queue.SendTopic(topic, msg) {
		rxlog.Warnf("topic %s: send cap (%d) reached, dropping message", topic, selfSendCap)
	}
}

// Handler returns a zero-argument callback that sends msg to this
// component when invoked — the usual shape for @key/@click bindings.
func (c *Context) Handler(msg interface{}) func() {
	id := c.current
	return func() { c.SendTo(id, msg) }
}

// HandlerWithValue returns a callback that builds its message from the
// value the event carries (a typed rune for OnAnyChar, say) before
// sending it to this component.
func (c *Context) HandlerWithValue(build func(value interface{}) interface{}) func(interface{}) {
	id := c.current
	return func(value interface{}) { c.SendTo(id, build(value)) }
}

// FocusSelf requests focus move to the first focusable node within this
// component's own subtree.
func (c *Context) FocusSelf() {
	c.focusRequests = append(c.focusRequests, FocusRequest{Kind: FocusComponent, Target: c.current})
}

// FocusFirst requests focus move to the first focusable node in the
// whole tree.
func (c *Context) FocusFirst() {
	c.focusRequests = append(c.focusRequests, FocusRequest{Kind: FocusGlobalFirst})
}

// BlurFocus requests that focus be cleared entirely after this frame,
// unless a FocusSelf/FocusFirst request elsewhere overrides it.
func (c *Context) BlurFocus() {
	c.blurRequested = true
}

// IsFirstRender reports whether this is the current component's first
// View call — true exactly until its first state entry is written.
func (c *Context) IsFirstRender() bool {
	_, seen := c.states.Get(c.current)
	return !seen
}

// takeFocusRequests drains and returns the frame's focus requests.
func (c *Context) takeFocusRequests() []FocusRequest {
	out := c.focusRequests
	c.focusRequests = nil
	return out
}

// takeBlurRequest drains and returns whether focus-clear was requested.
func (c *Context) takeBlurRequest() bool {
	out := c.blurRequested
	c.blurRequested = false
	return out
}
