package folderdrop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// World owns the item and container arenas and advances them one tick at a
// time. It is not safe for concurrent use; call Update from the game loop.
type World struct {
	items          []itemSlot
	containers     []Container
	itemIndex      map[ItemID]ItemHandle
	containerIndex map[ContainerID]ContainerHandle

	handlers     handlerRegistry
	sink         EventSink
	debug        bool
	rejectPolicy RejectPolicy

	// Pointer state as of the current tick.
	cursor         Vec2
	cursorOnScreen bool
	viewportW      float64
	viewportH      float64
	lastHeld       bool
	tick           uint64

	candidates  []ItemHandle // reused drag-start buffer
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
}

// NewWorld creates an empty world using RejectToOrigin.
func NewWorld() *World {
	return &World{
		itemIndex:      make(map[ItemID]ItemHandle),
		containerIndex: make(map[ContainerID]ContainerHandle),
		rejectPolicy:   RejectToOrigin,
	}
}

// Update advances the world by one tick. Phases run in a fixed order:
// interaction state machine, drag driver, insertion validator, highlights.
// A drag that begins this tick moves this tick and is not validated until it
// ends.
//
// If synthetic input is queued (see InjectPress), the next queued event
// replaces in for this tick.
func (w *World) Update(in PointerInput) {
	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	if injected, ok := w.nextInjected(in); ok {
		in = injected
	}

	w.tick++
	dt := float32(1.0 / float64(ebiten.TPS()))

	w.viewportW = in.ViewportWidth
	w.viewportH = in.ViewportHeight
	w.cursorOnScreen = in.OnScreen
	if in.OnScreen {
		w.cursor = ToWorld(in.Position, in.ViewportWidth, in.ViewportHeight)
	}

	var stats debugStats
	var t0 time.Time
	if w.debug {
		t0 = time.Now()
	}

	w.updateInteraction(in.JustPressed, in.Held)

	if w.debug {
		stats.interactionTime = time.Since(t0)
		t0 = time.Now()
	}

	w.updateDrag()

	if w.debug {
		stats.dragTime = time.Since(t0)
		t0 = time.Now()
	}

	w.validateInsertions()

	if w.debug {
		stats.insertTime = time.Since(t0)
		stats.liveItems = len(w.itemIndex)
		w.debugLog(stats)
	}

	w.updateHighlights(dt)
	w.lastHeld = in.Held
}

// Tick returns the number of completed Update calls.
func (w *World) Tick() uint64 {
	return w.tick
}

// Cursor returns the last mapped world-space cursor and whether the pointer
// was on-screen during the most recent tick.
func (w *World) Cursor() (Vec2, bool) {
	return w.cursor, w.cursorOnScreen
}

// SetRejectPolicy chooses where rejected items are put back.
func (w *World) SetRejectPolicy(p RejectPolicy) {
	w.rejectPolicy = p
}

// RejectPolicy returns the current rejection policy.
func (w *World) RejectPolicy() RejectPolicy {
	return w.rejectPolicy
}

// SetDebugMode enables or disables debug mode. When enabled, drag and drop
// outcomes and per-tick phase timings are logged to stderr, and MustItem
// panics on dead handles.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
}
