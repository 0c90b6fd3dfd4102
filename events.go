package folderdrop

import "slices"

// Event describes something observable that happened during a tick.
type Event struct {
	Type      EventType
	Item      ItemID
	Container ContainerID // the container dropped on, or the item's own container for drag/hover events
	// Expected is the item the container wanted next (EventWrongOrder only).
	Expected ItemID
	// X, Y is the item's world position when the event fired. For rejections
	// this is the drop point, before the item is moved back.
	X, Y float64
	Tick uint64
}

// EventSink receives every event the world emits. Set one with
// World.SetEventSink to bridge events into another system.
//
//go:generate go tool mockgen -destination=./internal/mocks/eventsink_mock.go -package=mocks . EventSink
type EventSink interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

type handlerKind uint8

const (
	handlerInserted handlerKind = iota
	handlerRejected
	handlerDragStart
	handlerDragEnd
	handlerHover
)

type handlerRegistry struct {
	inserted  []eventHandler
	rejected  []eventHandler
	dragStart []eventHandler
	dragEnd   []eventHandler
	hover     []eventHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered world-level callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	list := h.reg.list(h.kind)
	*list = removeHandler(*list, h.id)
}

func (r *handlerRegistry) list(kind handlerKind) *[]eventHandler {
	switch kind {
	case handlerInserted:
		return &r.inserted
	case handlerRejected:
		return &r.rejected
	case handlerDragStart:
		return &r.dragStart
	case handlerDragEnd:
		return &r.dragEnd
	default:
		return &r.hover
	}
}

func (r *handlerRegistry) add(kind handlerKind, fn func(Event)) CallbackHandle {
	r.nextID++
	list := r.list(kind)
	*list = append(*list, eventHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: kind}
}

func removeHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnInserted registers a callback for accepted insertions.
func (w *World) OnInserted(fn func(Event)) CallbackHandle {
	return w.handlers.add(handlerInserted, fn)
}

// OnRejected registers a callback for both EventWrongContainer and
// EventWrongOrder.
func (w *World) OnRejected(fn func(Event)) CallbackHandle {
	return w.handlers.add(handlerRejected, fn)
}

// OnDragStart registers a callback fired when an item starts being dragged.
func (w *World) OnDragStart(fn func(Event)) CallbackHandle {
	return w.handlers.add(handlerDragStart, fn)
}

// OnDragEnd registers a callback fired when an item stops being dragged.
func (w *World) OnDragEnd(fn func(Event)) CallbackHandle {
	return w.handlers.add(handlerDragEnd, fn)
}

// OnHover registers a callback for EventHoverEnter and EventHoverLeave.
func (w *World) OnHover(fn func(Event)) CallbackHandle {
	return w.handlers.add(handlerHover, fn)
}

// SetEventSink sets the optional event bridge. Pass nil to detach.
func (w *World) SetEventSink(sink EventSink) {
	w.sink = sink
}

// emit stamps the tick and dispatches to callbacks first, then the sink.
func (w *World) emit(ev Event) {
	ev.Tick = w.tick

	var list []eventHandler
	switch ev.Type {
	case EventInserted:
		list = w.handlers.inserted
	case EventWrongContainer, EventWrongOrder:
		list = w.handlers.rejected
	case EventDragStart:
		list = w.handlers.dragStart
	case EventDragEnd:
		list = w.handlers.dragEnd
	case EventHoverEnter, EventHoverLeave:
		list = w.handlers.hover
	}
	// Handlers may remove themselves or others while running.
	for _, h := range slices.Clone(list) {
		h.fn(ev)
	}
	if w.sink != nil {
		w.sink.EmitEvent(ev)
	}
	if w.debug {
		w.debugEvent(ev)
	}
}
