package event

import (
	"github.com/zerocore-ai/rxtui/termevent"
	"github.com/zerocore-ai/rxtui/vnode"
)

// mapKey translates a raw terminal key into the small bindable vnode.Key
// set a view's @key bindings match against. Keys with no vnode.Key
// equivalent (function keys, ctrl combinations) map to vnode.KeyNone and
// are only reachable through a character handler, never @key.
func mapKey(k termevent.Key) vnode.Key {
	switch k {
	case termevent.KeyEnter:
		return vnode.KeyEnter
	case termevent.KeyEscape:
		return vnode.KeyEscape
	case termevent.KeyTab:
		return vnode.KeyTab
	case termevent.KeyShiftTab:
		return vnode.KeyShiftTab
	case termevent.KeyUp:
		return vnode.KeyUp
	case termevent.KeyDown:
		return vnode.KeyDown
	case termevent.KeyLeft:
		return vnode.KeyLeft
	case termevent.KeyRight:
		return vnode.KeyRight
	case termevent.KeyBackspace:
		return vnode.KeyBackspace
	case termevent.KeyDelete:
		return vnode.KeyDelete
	case termevent.KeyPageUp:
		return vnode.KeyPageUp
	case termevent.KeyPageDown:
		return vnode.KeyPageDown
	case termevent.KeyHome:
		return vnode.KeyHome
	case termevent.KeyEnd:
		return vnode.KeyEnd
	default:
		return vnode.KeyNone
	}
}
