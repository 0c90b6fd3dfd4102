package folderdrop

// updateDrag snaps every dragged item to the cursor. Z is untouched. When the
// pointer is off-screen the item keeps its last position.
func (w *World) updateDrag() {
	if !w.cursorOnScreen {
		return
	}
	for i := range w.items {
		slot := &w.items[i]
		if slot.alive && slot.item.State == StateDragging {
			slot.item.Position = w.cursor
		}
	}
}
