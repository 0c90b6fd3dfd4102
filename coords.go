package folderdrop

// ToWorld converts a raw pointer position, reported relative to the viewport's
// corner, into origin-centered world coordinates.
func ToWorld(raw Vec2, viewportWidth, viewportHeight float64) Vec2 {
	return raw.Sub(Vec2{viewportWidth / 2, viewportHeight / 2})
}

// ToScreen is the inverse of ToWorld.
func ToScreen(world Vec2, viewportWidth, viewportHeight float64) Vec2 {
	return world.Add(Vec2{viewportWidth / 2, viewportHeight / 2})
}
