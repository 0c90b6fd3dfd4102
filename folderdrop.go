package folderdrop

// Vec2 is a 2D vector used for positions, sizes, and cursor coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Splat returns a Vec2 with both components set to s.
func Splat(s float64) Vec2 { return Vec2{s, s} }

// Rect is an axis-aligned rectangle given by its top-left corner and extent.
// World space is origin-centered, so "top-left" here means minimum X and Y.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// ItemID identifies a draggable item. It is the value stored in container
// sequences.
type ItemID int

// ContainerID identifies a drop target.
type ContainerID int

// ItemHandle indexes the world's item arena. Handles are never reused.
type ItemHandle int

// ContainerHandle indexes the world's container arena.
type ContainerHandle int

// InteractionState is the per-item pointer interaction state.
type InteractionState uint8

const (
	StateIdle     InteractionState = iota // pointer elsewhere, button up
	StateHovered                          // pointer over the item, button up
	StateDragging                         // item follows the pointer
)

// String returns the state name.
func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovered:
		return "hovered"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of world event.
type EventType uint8

const (
	EventInserted       EventType = iota // item accepted and removed from the world
	EventWrongContainer                  // item dropped on a container it does not belong to
	EventWrongOrder                      // item dropped on its container out of sequence
	EventDragStart                       // item entered StateDragging
	EventDragEnd                         // item left StateDragging
	EventHoverEnter                      // item entered StateHovered
	EventHoverLeave                      // item left StateHovered
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventInserted:
		return "inserted"
	case EventWrongContainer:
		return "wrong-container"
	case EventWrongOrder:
		return "wrong-order"
	case EventDragStart:
		return "drag-start"
	case EventDragEnd:
		return "drag-end"
	case EventHoverEnter:
		return "hover-enter"
	case EventHoverLeave:
		return "hover-leave"
	default:
		return "unknown"
	}
}

// RejectPolicy selects where a rejected item is put back.
type RejectPolicy uint8

const (
	RejectToOrigin RejectPolicy = iota // snap to the world origin (0, 0)
	RejectToRest                       // return to where the last drag began; Origin if rejected there
)

// Origin is the sentinel position rejected items snap to under RejectToOrigin.
var Origin = Vec2{}
