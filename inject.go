package folderdrop

// syntheticPointerEvent represents a single injected pointer event.
// Screen coordinates are used and mapped to world space through the
// viewport, identical to real pointer input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a button press at the given screen coordinates.
// The event is consumed on the next Update call.
func (w *World) InjectPress(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (w *World) InjectMove(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a button release at the given screen coordinates.
func (w *World) InjectRelease(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two ticks.
func (w *World) InjectClick(x, y float64) {
	w.InjectPress(x, y)
	w.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), frames-2
// held moves linearly interpolated so that the last one lands on (toX, toY),
// and a release there. The item only follows the pointer while the button is
// held, so at least one move is needed; frames is raised to 3 if smaller.
func (w *World) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	w.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		w.InjectMove(x, y)
	}
	w.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (w *World) Pending() int {
	return len(w.injectQueue)
}

// nextInjected pops one queued event and builds the tick's input from it.
// The viewport comes from live if it has one, otherwise from the last tick.
// JustPressed is derived from the previous tick's held state.
func (w *World) nextInjected(live PointerInput) (PointerInput, bool) {
	if len(w.injectQueue) == 0 {
		return PointerInput{}, false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	vw, vh := live.ViewportWidth, live.ViewportHeight
	if vw == 0 && vh == 0 {
		vw, vh = w.viewportW, w.viewportH
	}
	return PointerInput{
		Position:       Vec2{evt.screenX, evt.screenY},
		OnScreen:       true,
		ViewportWidth:  vw,
		ViewportHeight: vh,
		JustPressed:    evt.pressed && !w.lastHeld,
		Held:           evt.pressed,
	}, true
}
