// Package gridview renders a pannable, zoomable grid of installation cells
// on an [Ebitengine] surface and turns pointer, touch, and wheel input into
// view changes and entity activations.
//
// The host application owns the entities. It hands the engine an ordered
// snapshot and a callback, and the engine does the rest: panning with a
// held pointer, pinch and wheel zoom anchored at the gesture point, and
// tap-to-activate resolved by geometric hit testing.
//
// # Quick start
//
//	board := gridview.NewBoard(800, 600, func(id string) {
//		// cycle the entity's status, then:
//		board.SetEntities(updated)
//	})
//	board.SetEntities(entities)
//	ebiten.RunGame(board)
//
// [Board] implements ebiten.Game; call [Board.Update] and [Board.Draw]
// yourself to compose it into a larger game instead.
//
// # Coordinates
//
// Entities live at logical grid coordinates. [CellRect] maps a grid
// coordinate to its logical-space rectangle; the [ViewTransform] maps
// logical space to screen pixels. Callers that auto-place new entities must
// use the same [CellRect] formula so placement stays consistent across the
// application.
//
// # Export
//
// The export control renders the current view with an opaque background and
// hands a timestamped PNG to an [ExportSink]; the default sink writes to an
// exports/ directory.
//
// [Ebitengine]: https://ebitengine.org
package gridview
