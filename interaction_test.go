package folderdrop

import "testing"

func stateOf(t *testing.T, w *World, id ItemID) InteractionState {
	t.Helper()
	h, ok := w.ItemByID(id)
	if !ok {
		t.Fatalf("item %d is not live", id)
	}
	it, _ := w.Item(h)
	return it.State
}

func TestInteraction_PressAtCenterStartsDrag(t *testing.T) {
	w := NewWorld()
	mustAddItem(t, w, 0, 0, Vec2{0, 0}, 100)

	w.Update(PointerInput{
		Position:       Vec2{400, 300},
		OnScreen:       true,
		ViewportWidth:  800,
		ViewportHeight: 600,
		JustPressed:    true,
		Held:           true,
	})

	if got := stateOf(t, w, 0); got != StateDragging {
		t.Errorf("state = %v, want dragging", got)
	}
}

func TestInteraction_HoverEnterAndLeave(t *testing.T) {
	w := newTestBoard(t)

	w.Update(pointerAt(Vec2{0, -200}, false, false))
	if got := stateOf(t, w, 1); got != StateHovered {
		t.Fatalf("state over item = %v, want hovered", got)
	}
	if got := stateOf(t, w, 0); got != StateIdle {
		t.Errorf("other item state = %v, want idle", got)
	}

	w.Update(pointerAt(Vec2{0, 100}, false, false))
	if got := stateOf(t, w, 1); got != StateIdle {
		t.Errorf("state after leaving = %v, want idle", got)
	}
}

func TestInteraction_HoverBoundaryCounts(t *testing.T) {
	w := newTestBoard(t)
	w.Update(pointerAt(Vec2{50, -150}, false, false)) // item 1's bottom-right corner
	if got := stateOf(t, w, 1); got != StateHovered {
		t.Errorf("state on corner = %v, want hovered", got)
	}
}

func TestInteraction_HeldLeavesStateAlone(t *testing.T) {
	w := newTestBoard(t)
	w.Update(pointerAt(Vec2{0, -200}, false, false))

	// Press on empty space, then sweep across item 0 with the button down.
	w.Update(pointerAt(Vec2{0, 100}, true, true))
	w.Update(pointerAt(Vec2{-250, -200}, false, true))

	if got := stateOf(t, w, 1); got != StateHovered {
		t.Errorf("item 1 state = %v, want hovered (unchanged while held)", got)
	}
	if got := stateOf(t, w, 0); got != StateIdle {
		t.Errorf("item 0 state = %v, want idle (unchanged while held)", got)
	}
	if _, ok := w.Dragging(); ok {
		t.Error("pressing on empty space must not start a drag")
	}
}

func TestInteraction_OffScreenSkipsTick(t *testing.T) {
	w := newTestBoard(t)
	w.Update(pointerAt(Vec2{0, -200}, false, false))

	w.Update(PointerInput{OnScreen: false, JustPressed: true, Held: true, ViewportWidth: testVW, ViewportHeight: testVH})
	if got := stateOf(t, w, 1); got != StateHovered {
		t.Errorf("state after off-screen tick = %v, want hovered", got)
	}
}

func TestInteraction_LowestIDWins(t *testing.T) {
	w := NewWorld()
	// Added in descending id order so handle order and id order disagree.
	mustAddItem(t, w, 5, 0, Vec2{0, 0}, 100)
	mustAddItem(t, w, 2, 0, Vec2{20, 20}, 100)
	mustAddItem(t, w, 9, 0, Vec2{-20, 0}, 100)

	w.Update(pointerAt(Vec2{10, 10}, true, true))

	h, ok := w.Dragging()
	if !ok {
		t.Fatal("expected a drag to start")
	}
	if it, _ := w.Item(h); it.ID != 2 {
		t.Errorf("dragging item %d, want 2", it.ID)
	}
	dragging := 0
	for _, v := range w.Items() {
		if v.State == StateDragging {
			dragging++
		}
	}
	if dragging != 1 {
		t.Errorf("%d items dragging, want 1", dragging)
	}
}

func TestInteraction_HoverUpdatedOnDragStartTick(t *testing.T) {
	w := NewWorld()
	mustAddItem(t, w, 0, 0, Vec2{0, 0}, 100)
	mustAddItem(t, w, 1, 0, Vec2{300, 0}, 100)

	// Item 1 is hovered first.
	w.Update(pointerAt(Vec2{300, 0}, false, false))

	// A source that reports the press edge without the level: item 0 starts
	// dragging and item 1, no longer under the cursor, still drops to idle.
	w.Update(pointerAt(Vec2{0, 0}, true, false))

	if got := stateOf(t, w, 0); got != StateDragging {
		t.Errorf("item 0 state = %v, want dragging", got)
	}
	if got := stateOf(t, w, 1); got != StateIdle {
		t.Errorf("item 1 state = %v, want idle", got)
	}
}

func TestInteraction_ReleaseEndsDrag(t *testing.T) {
	w := newTestBoard(t)
	var ends []Event
	w.OnDragEnd(func(e Event) { ends = append(ends, e) })

	w.Update(pointerAt(Vec2{0, -200}, true, true))
	w.Update(pointerAt(Vec2{0, 0}, false, true))
	if got := stateOf(t, w, 1); got != StateDragging {
		t.Fatalf("state while held = %v, want dragging", got)
	}

	w.Update(pointerAt(Vec2{0, 0}, false, false))
	if got := stateOf(t, w, 1); got != StateHovered {
		t.Errorf("state after release = %v, want hovered", got)
	}
	if len(ends) != 1 || ends[0].Item != 1 || ends[0].X != 0 || ends[0].Y != 0 {
		t.Errorf("drag end events = %+v", ends)
	}
}

func TestInteraction_ReleaseOffScreenKeepsDragging(t *testing.T) {
	w := newTestBoard(t)
	w.Update(pointerAt(Vec2{0, -200}, true, true))
	w.Update(offScreen(false))

	if got := stateOf(t, w, 1); got != StateDragging {
		t.Errorf("state after off-screen release = %v, want dragging", got)
	}

	// Pointer comes back with the button up: the drag ends where the item was.
	w.Update(pointerAt(Vec2{0, 100}, false, false))
	if got := stateOf(t, w, 1); got != StateIdle {
		t.Errorf("state after return = %v, want idle", got)
	}
	if p := itemPos(t, w, 1); p != (Vec2{0, -200}) {
		t.Errorf("position = %v, want (0,-200)", p)
	}
}

func TestInteraction_StaleDragIsDropped(t *testing.T) {
	w := newTestBoard(t)
	w.Update(pointerAt(Vec2{0, -200}, true, true))
	w.Update(offScreen(false))

	// New press on item 0 without the pointer ever returning with the button up.
	w.Update(pointerAt(Vec2{-250, -200}, true, true))

	if got := stateOf(t, w, 0); got != StateDragging {
		t.Errorf("item 0 state = %v, want dragging", got)
	}
	if got := stateOf(t, w, 1); got != StateIdle {
		t.Errorf("item 1 state = %v, want idle", got)
	}
}

func TestInteraction_RestRecordedAtDragStart(t *testing.T) {
	w := newTestBoard(t)
	h, _ := w.ItemByID(2)
	w.Update(pointerAt(Vec2{240, -190}, true, true))
	w.Update(pointerAt(Vec2{100, 0}, false, true))

	it, _ := w.Item(h)
	if it.Rest != (Vec2{250, -200}) {
		t.Errorf("Rest = %v, want (250,-200)", it.Rest)
	}
}

func TestInteraction_EventOrder(t *testing.T) {
	w := newTestBoard(t)
	var got []EventType
	record := func(e Event) { got = append(got, e.Type) }
	w.OnHover(record)
	w.OnDragStart(record)
	w.OnDragEnd(record)

	w.Update(pointerAt(Vec2{0, -200}, false, false)) // hover
	w.Update(pointerAt(Vec2{0, -200}, true, true))   // grab
	w.Update(pointerAt(Vec2{0, 0}, false, true))     // move
	w.Update(pointerAt(Vec2{0, 0}, false, false))    // release

	want := []EventType{EventHoverEnter, EventHoverLeave, EventDragStart, EventDragEnd, EventHoverEnter}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInteractionState_String(t *testing.T) {
	if StateIdle.String() != "idle" || StateHovered.String() != "hovered" || StateDragging.String() != "dragging" {
		t.Error("unexpected state names")
	}
	if InteractionState(200).String() != "unknown" {
		t.Error("out of range state should be unknown")
	}
}
