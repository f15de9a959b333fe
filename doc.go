// Package gesture interprets raw multi-touch input as named gesture events
// and maps those events onto the rotation and scale of a tracked 3D object.
//
// # Quick start
//
//	scene := gesture.NewScene()
//	canvas := scene.NewSurface("canvas")
//	scene.NewDetector(canvas, gesture.DetectorConfig{})
//
//	model := gesture.NewTransform(0.02)
//	if _, err := scene.NewHandler(model, gesture.DefaultHandlerConfig()); err != nil {
//		log.Fatal(err)
//	}
//
//	scene.TargetAcquired()
//	canvas.InjectDrag(1, 100, 100, 110, 100, 1) // rotates model around Y
//
// In an Ebitengine game, feed real touches with [EbitenSource] and call
// [EbitenSource.Poll] and [Scene.Update] from the game's Update, or let
// [Run] drive both:
//
//	gesture.Run(scene, canvas, gesture.RunConfig{Title: "Demo", Draw: draw})
//
// # Gesture lifecycle
//
// A [Detector] listens on a [Surface]. For every touch notification it
// derives a [TouchState] (contact count, centroid, spread of the first two
// contacts) and compares it with the gesture it remembers. A gesture lives
// for one contiguous run of the same contact count:
//
//   - a count change ends the old gesture (EndEvent) and, if contacts remain,
//     starts a new one (StartEvent) within the same notification;
//   - an unchanged count emits a MoveEvent with deltas from the previous
//     notification.
//
// Events are named "<prefix>finger<start|move|end>" with prefix one, two,
// three or many (four and more contacts). [Bus] dispatches them by cohort
// and phase; [Bus.On] accepts the string names.
//
// # Transform mapping
//
// A [Handler] turns "onefingermove" into rotation around Y (and optionally
// X) and "twofingermove" into scale through a [ScaleStrategy]: [RatioScale]
// for smooth proportional zoom or [StepScale] for fixed steps. Every scale
// axis stays inside [MinScale, MaxScale]. Nothing is applied while the
// injected [Visibility] reports the target as lost.
//
// # ECS integration
//
// The ecs sub-module forwards every gesture event into a [Donburi] world.
//
// [Donburi]: https://github.com/yohamta/donburi
package gesture
