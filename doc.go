// Package folderdrop is the interaction core of a "drag files into folders"
// board for [Ebitengine] games.
//
// It maps raw pointer coordinates into an origin-centered world, hit tests
// the pointer against draggable items, drives each item through an
// Idle/Hovered/Dragging state machine, and validates drops: every container
// accepts its items only in a fixed order. A correct drop removes the item
// from the world; a drop on the wrong container or out of order is rejected
// and the item is put back.
//
// Rendering, assets, and window setup stay with the caller. The world only
// consumes a [PointerInput] per tick and exposes item and container views.
//
// # Quick start
//
//	w := folderdrop.NewWorld()
//	w.AddContainer(0, folderdrop.Vec2{X: 0, Y: 300}, 200, []folderdrop.ItemID{0, 1})
//	w.AddItem(0, 0, folderdrop.Vec2{X: 0, Y: 0}, 100)
//	w.AddItem(1, 0, folderdrop.Vec2{X: 50, Y: 50}, 100)
//
//	w.OnRejected(func(e folderdrop.Event) { log.Printf("rejected: %+v", e) })
//
// Or populate the world from a YAML layout with [LoadLayout] and
// [Layout.Build].
//
// From an [ebiten.Game]:
//
//	func (g *Game) Update() error {
//		g.world.Update(folderdrop.ReadPointer(g.w, g.h))
//		return nil
//	}
//
// # Tick order
//
// Each [World.Update] runs the state machine, then moves the dragged item to
// the cursor, then validates every item that is not being dragged against the
// containers. A drag that starts this tick moves this tick and is not checked
// until the button is released.
//
// # Events
//
// Insertions and rejections are reported through callbacks ([World.OnInserted],
// [World.OnRejected], ...) and an optional [EventSink]. Rejections are never
// Go errors. The ecs subpackage publishes events into a [Donburi] world.
//
// # Testing
//
// [World.InjectDrag] and friends queue synthetic pointer input, and
// [LoadTestScript] drives scripted drags with expectations, so whole drop
// sequences can be tested without a window.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package folderdrop
