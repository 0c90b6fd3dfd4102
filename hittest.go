package folderdrop

import "math"

// Within reports whether value lies in the closed interval
// [center-extent/2, center+extent/2].
func Within(value, center, extent float64) bool {
	half := extent / 2
	return value >= center-half && value <= center+half
}

// PointOverlap reports whether point lies inside the box of the given size
// centered on center. Edges count as inside.
func PointOverlap(point, center, size Vec2) bool {
	return Within(point.X, center.X, size.X) && Within(point.Y, center.Y, size.Y)
}

// RectOverlap reports whether two center-anchored boxes overlap. The boxes are
// separated only when their centers are farther apart on some axis than the
// sum of their half extents, so touching edges overlap.
func RectOverlap(centerA, sizeA, centerB, sizeB Vec2) bool {
	if math.Abs(centerA.X-centerB.X) > (sizeA.X+sizeB.X)/2 {
		return false
	}
	if math.Abs(centerA.Y-centerB.Y) > (sizeA.Y+sizeB.Y)/2 {
		return false
	}
	return true
}

// Bounds returns the top-left rectangle of a center-anchored box.
func Bounds(center, size Vec2) Rect {
	return Rect{
		X:      center.X - size.X/2,
		Y:      center.Y - size.Y/2,
		Width:  size.X,
		Height: size.Y,
	}
}
