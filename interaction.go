package folderdrop

// updateInteraction runs the per-item state machine for one tick.
//
// Every live item gets its hover/idle state refreshed, even when a drag starts
// this tick. While the button is held, states are left alone, so an ongoing
// drag survives until the first on-screen tick with the button up; that tick
// turns the dragged item into Hovered (or Idle) and hands it to the validator.
//
// Items under the cursor when the button goes down are drag candidates. The
// candidate with the lowest ItemID wins; the rest keep their state.
func (w *World) updateInteraction(justPressed, held bool) {
	if !w.cursorOnScreen {
		return
	}

	w.candidates = w.candidates[:0]
	for i := range w.items {
		slot := &w.items[i]
		if !slot.alive {
			continue
		}
		h := ItemHandle(i)
		hit := PointOverlap(w.cursor, slot.item.Position, Splat(slot.item.Size))
		switch {
		case hit && justPressed:
			w.candidates = append(w.candidates, h)
		case hit && !held:
			w.setState(h, StateHovered)
		case !hit && !held:
			w.setState(h, StateIdle)
		}
	}

	if len(w.candidates) == 0 {
		return
	}
	w.beginDrag(w.pickDragCandidate())
}

// pickDragCandidate returns the candidate with the lowest ItemID.
func (w *World) pickDragCandidate() ItemHandle {
	pick := w.candidates[0]
	for _, h := range w.candidates[1:] {
		if w.items[h].item.ID < w.items[pick].item.ID {
			pick = h
		}
	}
	return pick
}

// beginDrag moves h into StateDragging. A drag left over from a release that
// happened off-screen is dropped first so only one item ever drags.
func (w *World) beginDrag(h ItemHandle) {
	for i := range w.items {
		if ItemHandle(i) != h && w.items[i].alive && w.items[i].item.State == StateDragging {
			w.setState(ItemHandle(i), StateIdle)
		}
	}
	it := &w.items[h].item
	if it.State != StateDragging {
		it.Rest = it.Position
	}
	w.setState(h, StateDragging)
}

// setState changes an item's state and emits the matching leave/enter events.
func (w *World) setState(h ItemHandle, next InteractionState) {
	it := &w.items[h].item
	prev := it.State
	if prev == next {
		return
	}
	it.State = next

	ev := Event{Item: it.ID, Container: it.Container, X: it.Position.X, Y: it.Position.Y}
	switch prev {
	case StateDragging:
		ev.Type = EventDragEnd
		w.emit(ev)
	case StateHovered:
		ev.Type = EventHoverLeave
		w.emit(ev)
	}
	switch next {
	case StateDragging:
		ev.Type = EventDragStart
		w.emit(ev)
	case StateHovered:
		ev.Type = EventHoverEnter
		w.emit(ev)
	}
}
