package folderdrop

import "testing"

// Injected coordinates are screen pixels; an 800x600 viewport puts the world
// origin at (400, 300).
var testViewport = PointerInput{ViewportWidth: testVW, ViewportHeight: testVH}

func TestInjectClick(t *testing.T) {
	w := newTestBoard(t)

	var starts, ends int
	w.OnDragStart(func(Event) { starts++ })
	w.OnDragEnd(func(Event) { ends++ })

	w.InjectClick(400, 100) // world (0,-200): item 1
	if w.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", w.Pending())
	}

	// Tick 1: press
	w.Update(testViewport)
	if w.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after tick 1, got %d", w.Pending())
	}
	if starts != 1 || ends != 0 {
		t.Errorf("after press: starts=%d ends=%d, want 1 0", starts, ends)
	}

	// Tick 2: release
	w.Update(testViewport)
	if w.Pending() != 0 {
		t.Fatalf("expected 0 remaining events after tick 2, got %d", w.Pending())
	}
	if ends != 1 {
		t.Errorf("drag should end on release tick, ends=%d", ends)
	}
	if got := stateOf(t, w, 1); got != StateHovered {
		t.Errorf("state after click = %v, want hovered", got)
	}
}

func TestInjectDrag_Frames(t *testing.T) {
	w := NewWorld()
	w.InjectDrag(10, 10, 200, 200, 5)
	if w.Pending() != 5 {
		t.Fatalf("expected 5 queued events, got %d", w.Pending())
	}

	last := w.injectQueue[3]
	if last.screenX != 200 || last.screenY != 200 || !last.pressed {
		t.Errorf("last held move = %+v, want pressed at (200,200)", last)
	}
	if rel := w.injectQueue[4]; rel.pressed {
		t.Error("final event should be a release")
	}
}

func TestInjectDrag_MinimumFrames(t *testing.T) {
	w := NewWorld()
	w.InjectDrag(0, 0, 50, 50, 1)
	if w.Pending() != 3 {
		t.Errorf("expected frames raised to 3, got %d events", w.Pending())
	}
}

func TestInjectDrag_Inserts(t *testing.T) {
	w := newTestBoard(t)
	var dragPath []Vec2
	w.OnDragEnd(func(e Event) { dragPath = append(dragPath, Vec2{e.X, e.Y}) })

	// Item 0 at world (-250,-200) -> folder 0 at world (0,300).
	w.InjectDrag(150, 100, 400, 600, 6)
	for w.Pending() > 0 {
		w.Update(testViewport)
	}

	if _, ok := w.ItemByID(0); ok {
		t.Error("item 0 should have been inserted")
	}
	if len(dragPath) != 1 || dragPath[0] != (Vec2{0, 300}) {
		t.Errorf("drag end = %v, want [(0,300)]", dragPath)
	}
}

func TestInjected_JustPressedFromPreviousTick(t *testing.T) {
	w := newTestBoard(t)
	w.InjectPress(400, 100)
	w.InjectPress(400, 100) // still held: not a new press

	w.Update(testViewport)
	w.Update(testViewport)

	var starts int
	for _, v := range w.Items() {
		if v.State == StateDragging {
			starts++
		}
	}
	if starts != 1 {
		t.Errorf("%d items dragging, want 1", starts)
	}
}

func TestInjected_ViewportFallsBackToLastTick(t *testing.T) {
	w := newTestBoard(t)
	w.Update(testViewport)

	w.InjectPress(400, 100)
	w.Update(PointerInput{}) // caller without a viewport

	if got := stateOf(t, w, 1); got != StateDragging {
		t.Errorf("state = %v, want dragging (viewport from previous tick)", got)
	}
}

func TestInjected_OverridesLiveInput(t *testing.T) {
	w := newTestBoard(t)
	w.InjectPress(400, 100)

	live := pointerAt(Vec2{250, 0}, true, true) // would grab item 3
	w.Update(live)

	if got := stateOf(t, w, 1); got != StateDragging {
		t.Errorf("item 1 state = %v, want dragging", got)
	}
	if got := stateOf(t, w, 3); got != StateIdle {
		t.Errorf("item 3 state = %v, want idle", got)
	}
}
