// Package foyer is a screen shell for [Ebitengine] games: a retained tree of
// named UI elements, a screen registry with single-active-screen switching,
// an idle animator, and a localization applier.
//
// # Quick start
//
// Build an element tree, describe the shell in a config, and bind once the
// tree is populated:
//
//	root := foyer.NewContainer("root")
//	// ... add screens (panels carrying the "screen" class) and buttons ...
//
//	shell := foyer.NewShell(cfg)
//	if err := shell.Bind(root); err != nil {
//		log.Fatal(err)
//	}
//
// Then pump the shell each frame; Update advances the idle animators,
// refreshes world transforms, and routes pointer input:
//
//	shell.Update(dt)
//
// # Screens
//
// Any element carrying the "screen" class is a screen. Exactly one screen is
// active at a time; the active screen's subtree is hit-testable
// ([HitInteractive]) and every other screen's subtree is [HitIgnore], so
// overlapping inactive screens never intercept pointer events. Switch with
// [ScreenManager.ShowScreen]; unknown names warn and leave the state
// unchanged.
//
// # Idle animation
//
// [IdleAnimator] oscillates scale, rotation, position, and opacity between
// fixed bounds. Position and rotation are offsets from the pose captured at
// start and scale is a factor of the captured scale, so the oscillation
// never drifts. Two drivers share one config: a per-tick interpolation loop
// and a [gween] driver using infinite yoyo sequences.
//
// All foyer state is single-threaded and frame-driven; call Update and the
// input helpers from the game's update loop only.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package foyer
