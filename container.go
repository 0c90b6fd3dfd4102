package folderdrop

// Container is a static drop target. Sequence holds the item identities it
// still expects, front first; it only ever shrinks from the front.
type Container struct {
	ID       ContainerID
	Position Vec2
	Size     float64
	Sequence []ItemID
}

// Next returns the item the container expects next. ok is false when the
// sequence is exhausted.
func (c *Container) Next() (id ItemID, ok bool) {
	if len(c.Sequence) == 0 {
		return 0, false
	}
	return c.Sequence[0], true
}

// Bounds returns the container's drop area as a top-left rectangle.
func (c *Container) Bounds() Rect {
	return Bounds(c.Position, Splat(c.Size))
}

func (c *Container) pop() {
	c.Sequence[0] = 0
	c.Sequence = c.Sequence[1:]
}

// ContainerView is a snapshot of a container for renderers and debugging.
// Sequence is a copy.
type ContainerView struct {
	Handle ContainerHandle
	Container
}

// AddContainer places a container in the world. The sequence is copied.
func (w *World) AddContainer(id ContainerID, position Vec2, size float64, sequence []ItemID) (ContainerHandle, error) {
	if _, dup := w.containerIndex[id]; dup {
		return -1, errorf(ErrDuplicateContainer, "container %d", id)
	}
	h := ContainerHandle(len(w.containers))
	w.containers = append(w.containers, Container{
		ID:       id,
		Position: position,
		Size:     size,
		Sequence: append([]ItemID(nil), sequence...),
	})
	w.containerIndex[id] = h
	return h, nil
}

// Container returns a copy of the container behind h.
func (w *World) Container(h ContainerHandle) (Container, bool) {
	if h < 0 || int(h) >= len(w.containers) {
		return Container{}, false
	}
	return snapshotContainer(&w.containers[h]), true
}

// ContainerByID looks up a container by identity.
func (w *World) ContainerByID(id ContainerID) (ContainerHandle, bool) {
	h, ok := w.containerIndex[id]
	return h, ok
}

// Containers returns views of every container in handle order.
func (w *World) Containers() []ContainerView {
	out := make([]ContainerView, len(w.containers))
	for i := range w.containers {
		out[i] = ContainerView{Handle: ContainerHandle(i), Container: snapshotContainer(&w.containers[i])}
	}
	return out
}

// Complete reports whether every container has consumed its whole sequence.
func (w *World) Complete() bool {
	for i := range w.containers {
		if len(w.containers[i].Sequence) > 0 {
			return false
		}
	}
	return true
}

func snapshotContainer(c *Container) Container {
	cp := *c
	cp.Sequence = append([]ItemID(nil), c.Sequence...)
	return cp
}
