package folderdrop

// Item is a draggable record. Its Container never changes after creation.
type Item struct {
	ID        ItemID
	Container ContainerID
	Position  Vec2
	Z         float64 // depth; carried for renderers, never written by the world
	Size      float64 // edge length of the square hit box
	State     InteractionState

	// Rest is where the item was when its most recent drag began.
	Rest Vec2

	// Highlight is a 0..1 render hint that eases toward 1 while hovered or
	// dragged and back to 0 when idle.
	Highlight float64
}

// Bounds returns the item's hit box as a top-left rectangle.
func (it *Item) Bounds() Rect {
	return Bounds(it.Position, Splat(it.Size))
}

// ItemView is a snapshot of a live item for renderers.
type ItemView struct {
	Handle ItemHandle
	Item
}

// itemSlot is one arena entry. Dead slots stay in place so handles remain
// stable.
type itemSlot struct {
	item  Item
	alive bool
	hl    highlightTween
}

// AddItem places a new item in the world in StateIdle and returns its handle.
// The container does not need to exist yet.
func (w *World) AddItem(id ItemID, container ContainerID, position Vec2, size float64) (ItemHandle, error) {
	if _, dup := w.itemIndex[id]; dup {
		return -1, errorf(ErrDuplicateItem, "item %d", id)
	}
	h := ItemHandle(len(w.items))
	w.items = append(w.items, itemSlot{
		item: Item{
			ID:        id,
			Container: container,
			Position:  position,
			Size:      size,
			State:     StateIdle,
			Rest:      position,
		},
		alive: true,
	})
	w.itemIndex[id] = h
	return h, nil
}

// SetItemZ sets the render depth of a live item.
func (w *World) SetItemZ(h ItemHandle, z float64) {
	if w.live(h) {
		w.items[h].item.Z = z
	}
}

// Item returns a copy of the item behind h. ok is false once the item has
// been inserted into its container or if h was never issued.
func (w *World) Item(h ItemHandle) (it Item, ok bool) {
	if !w.live(h) {
		return Item{}, false
	}
	return w.items[h].item, true
}

// ItemByID looks up a live item by identity.
func (w *World) ItemByID(id ItemID) (ItemHandle, bool) {
	h, ok := w.itemIndex[id]
	return h, ok
}

// MustItem is like Item but panics in debug mode when h is not live. With
// debug mode off a dead handle yields the zero Item, whose ID 0 is
// indistinguishable from a real item 0; use Item when liveness matters.
func (w *World) MustItem(h ItemHandle) Item {
	if w.debug {
		debugCheckLive(w, h, "MustItem")
	}
	it, _ := w.Item(h)
	return it
}

// Items returns views of every live item in handle order.
func (w *World) Items() []ItemView {
	out := make([]ItemView, 0, len(w.itemIndex))
	for i := range w.items {
		if w.items[i].alive {
			out = append(out, ItemView{Handle: ItemHandle(i), Item: w.items[i].item})
		}
	}
	return out
}

// Remaining returns the number of live items.
func (w *World) Remaining() int {
	return len(w.itemIndex)
}

// Dragging returns the handle of the item currently being dragged, if any.
func (w *World) Dragging() (ItemHandle, bool) {
	for i := range w.items {
		if w.items[i].alive && w.items[i].item.State == StateDragging {
			return ItemHandle(i), true
		}
	}
	return -1, false
}

func (w *World) live(h ItemHandle) bool {
	return h >= 0 && int(h) < len(w.items) && w.items[h].alive
}

// destroy removes an item from the world. Its handle is never reissued.
func (w *World) destroy(h ItemHandle) {
	slot := &w.items[h]
	slot.alive = false
	slot.hl = highlightTween{}
	delete(w.itemIndex, slot.item.ID)
}
