// Package popup presents modal pop-up surfaces over an [Ebitengine] scene:
// sheets that slide in from the top or bottom edge and cards that zoom in at
// the center, with gesture-driven interactive dismissal.
//
// # Quick start
//
// Build content as a [View] tree, wrap it in a type implementing
// [Presentable], and present it through a [TransitioningDelegate]:
//
//	scene := popup.NewScene(640, 480)
//	delegate := popup.NewTransitioningDelegate(popup.TransitionConfig{
//		Position: popup.PositionBottom,
//		Insets:   popup.EdgeInsets{Left: 8, Right: 8, Bottom: 8},
//	})
//	pc, err := scene.Present(sheet, delegate)
//
// [Run] opens a window and drives the scene. For full control, implement
// [ebiten.Game] yourself and call [Scene.Update], [Scene.Draw] and
// [Scene.SetBounds] from Layout.
//
// # Surfaces
//
// A [Presentable] only has to return its root view. Everything else is an
// optional capability interface: [PreferredHeighter] and [HeightFitter] size
// the surface, [InteractiveDismisser] forbids gesture dismissal,
// [ScrollViewProvider] exposes an inner scroll region,
// [InteractiveViewsProvider] and [ExcludedViewsProvider] filter touches, and
// [KeyboardRegistrar] opts out of keyboard avoidance.
//
// # Interaction
//
// Each presentation binds an [InteractionController] to a pan on the
// surface. Dragging the surface toward its edge scrubs a dismissal; on
// release the fling is projected to its resting point to decide whether to
// finish or cancel. A drag that starts while the inner scroll region is away
// from its resting edge scrolls the content instead. Tapping the dimming
// background dismisses the surface.
//
// # Layout
//
// The resting frame is recomputed when the container resizes
// ([Scene.SetBounds]), when the keyboard appears, hides or changes height
// ([Scene.ShowKeyboard], [Scene.HideKeyboard]), and on
// [PresentationController.SetNeedsLayout]. A visible keyboard pushes the
// surface up just enough to clear it, never down.
//
// # Configuration
//
// [TransitionConfig] decodes from YAML or JSON with [LoadTransitionConfig]:
//
//	position: bottom
//	present_duration: 250ms
//	dismiss_duration: 200ms
//	insets: {left: 8, right: 8, bottom: 8}
//
// # Logging
//
// The scene logs transitions, interaction state changes and layout passes at
// debug level through a [zerolog.Logger] set with [Scene.SetLogger].
// [Scene.SetDebugMode] enables extra checks and, when no logger was set,
// writes to stderr.
//
// [Ebitengine]: https://ebitengine.org
package popup
