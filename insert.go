package folderdrop

// validateInsertions checks every resting item (Idle or Hovered) against the
// containers.
func (w *World) validateInsertions() {
	for i := range w.items {
		slot := &w.items[i]
		if !slot.alive || slot.item.State == StateDragging {
			continue
		}
		w.validateItem(ItemHandle(i))
	}
}

// validateItem resolves one item against the containers in handle order.
// The first container that accepts or rejects the item ends the search; a
// matching container with an exhausted sequence is skipped.
func (w *World) validateItem(h ItemHandle) {
	it := &w.items[h].item
	size := Splat(it.Size)

	for ci := range w.containers {
		c := &w.containers[ci]
		if !RectOverlap(it.Position, size, c.Position, Splat(c.Size)) {
			continue
		}

		ev := Event{Item: it.ID, Container: c.ID, X: it.Position.X, Y: it.Position.Y}

		if it.Container != c.ID {
			ev.Type = EventWrongContainer
			w.reject(h, ev)
			return
		}

		next, ok := c.Next()
		if !ok {
			continue
		}
		if next != it.ID {
			ev.Type = EventWrongOrder
			ev.Expected = next
			w.reject(h, ev)
			return
		}

		c.pop()
		w.destroy(h)
		ev.Type = EventInserted
		w.emit(ev)
		return
	}
}

// reject puts the item back according to the reject policy and reports why.
// An item rejected while sitting on its rest position goes to Origin instead,
// so a bad starting placement is reported once rather than every tick.
func (w *World) reject(h ItemHandle, ev Event) {
	it := &w.items[h].item
	if w.rejectPolicy == RejectToRest && it.Position != it.Rest {
		it.Position = it.Rest
	} else {
		it.Position = Origin
	}
	w.emit(ev)
}
