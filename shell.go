package foyer

// Shell ties the screen manager, idle animators, and localizer together
// behind the two-phase startup the whole package follows: construct with
// NewShell, then Bind once the element tree is confirmed populated. Binding
// is the readiness signal — there is no deferred-tick guessing about when
// the tree is complete.
type Shell struct {
	cfg       Config
	screens   *ScreenManager
	localizer *Localizer
	animators []*IdleAnimator
	pool      *TweenPool
	dict      Dictionary

	root        *Element
	pointer     pointerState
	injectQueue []syntheticPointerEvent
	script      *ScriptRunner
	bound       bool
}

// NewShell constructs an unbound shell for the given configuration.
func NewShell(cfg Config) *Shell {
	return &Shell{
		cfg:     cfg,
		screens: NewScreenManager(),
		pool:    NewTweenPool(),
	}
}

// SetDictionary sets the locale dictionary. Before Bind it is stored and
// applied during Bind; after Bind it swaps the active dictionary and
// re-applies immediately. Returns the number of substitutions (0 pre-Bind).
func (s *Shell) SetDictionary(dict Dictionary) int {
	s.dict = dict
	if s.localizer != nil {
		return s.localizer.SetDictionary(dict)
	}
	return 0
}

// Bind runs the initialization protocol against a populated tree: discover
// and register screens, activate the start screen, wire buttons, apply the
// locale, resolve idle targets, and start their oscillation. Config entries
// that fail to resolve are logged and skipped; the only error is an absent
// tree. Bind a shell once.
func (s *Shell) Bind(root *Element) error {
	if s.bound {
		warnf("shell already bound, ignoring")
		return nil
	}
	if err := s.screens.Bind(root, s.cfg.StartScreen, s.cfg.Buttons); err != nil {
		return err
	}
	s.root = root
	s.localizer = NewLocalizer(root, s.dict)

	for _, t := range s.cfg.Idle {
		el := root.FindByName(t.Target)
		if el == nil {
			warnf("idle target %q not found, skipping", t.Target)
			continue
		}
		anim := NewIdleAnimator(t.Config, el)
		anim.UseTweenPool(s.pool)
		s.animators = append(s.animators, anim)
		anim.Start()
	}

	s.bound = true
	return nil
}

// Update advances one tick: animators first, then a transform refresh, then
// pointer input — so hit testing always sees this tick's completed property
// writes. dt is in seconds (1/TPS under ebiten). No-op before Bind.
func (s *Shell) Update(dt float64) {
	if !s.bound {
		return
	}

	for _, anim := range s.animators {
		anim.Update(dt)
	}
	s.pool.Update(float32(dt))

	s.root.RefreshTransforms()

	if s.script != nil {
		s.script.step(s)
	}
	if !s.processInjectedInput() {
		s.pointer.readMouse(s.root)
	}
}

// Screens returns the shell's screen manager.
func (s *Shell) Screens() *ScreenManager {
	return s.screens
}

// ShowScreen switches the active screen. Shorthand for Screens().ShowScreen.
func (s *Shell) ShowScreen(name string) {
	s.screens.ShowScreen(name)
}

// Localizer returns the shell's localizer, or nil before Bind.
func (s *Shell) Localizer() *Localizer {
	return s.localizer
}

// Animators returns the idle animators resolved during Bind.
// The returned slice MUST NOT be mutated.
func (s *Shell) Animators() []*IdleAnimator {
	return s.animators
}

// Root returns the bound tree, or nil before Bind.
func (s *Shell) Root() *Element {
	return s.root
}

// StartIdle starts every idle animator. Running animators are unaffected.
func (s *Shell) StartIdle() {
	for _, anim := range s.animators {
		anim.Start()
	}
}

// StopIdle stops every idle animator.
func (s *Shell) StopIdle() {
	for _, anim := range s.animators {
		anim.Stop()
	}
}

// RestartIdle restarts every idle animator from its target's live pose.
func (s *Shell) RestartIdle() {
	for _, anim := range s.animators {
		anim.Restart()
	}
}
