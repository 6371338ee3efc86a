// Package expand recognizes expand/collapse gestures on the items of a
// scrollable list and drives their height, for [Ebitengine] programs or any
// host that can deliver pointer events.
//
// Three gesture styles compete for each touch cycle, checked in this order:
//
//   - stretch: a two-finger pinch or spread, as reported by the [ScaleDetector]
//   - pull: a two-finger vertical drag with the fingers spread horizontally
//   - blinds: a single-finger downward drag that starts with the list scrolled
//     to the top; the item stays put until the drag passes a pop threshold,
//     then follows the finger, with a haptic tick at the pop
//
// Stretch and pull blend the spread and the drag into one height delta. On
// release the item settles fully open or fully closed with a tween (via
// [gween]).
//
// # Quick start
//
//	list := expand.NewList(expand.Rect{Width: 480, Height: 800})
//	list.Add(expand.NewRow("mail", 64, 240))
//
//	ctrl := expand.NewController(expand.DefaultConfig(), list,
//		expand.WithHaptics(expand.EbitenHaptics{Magnitude: 0.5}))
//	ctrl.SetScrollAdapter(list)
//
//	input := expand.NewInput(expand.NewDispatcher(ctrl))
//
//	// each frame, from ebiten.Game.Update:
//	input.Update()
//	ctrl.Update(1 / float32(ebiten.TPS()))
//
// Hosts with their own item storage implement [Container] and
// [ScrollAdapter] instead of using [List], and call
// [Controller.OnInterceptEvent] and [Controller.OnEvent] from their own event
// routing instead of using [Dispatcher].
//
// # Lifecycle events and ECS
//
// [WithEventSink] receives an [ExpandEvent] whenever a gesture starts, pops,
// moves on to another item, or settles. The expand/ecs module publishes them
// into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package expand
