package foyer

// IdleConfig describes one idle oscillation: which properties move, their
// bounds, the motion curve, and the half-cycle duration (seconds, one
// traversal from bound to bound). Immutable during a run — change it and
// Restart to pick up new values.
//
// Position and rotation bounds are offsets composed with the pose captured
// when the animation starts; scale bounds are factors of the captured scale;
// opacity bounds are absolute values in [0, 1].
type IdleConfig struct {
	AnimateScale bool  `yaml:"animate_scale"`
	Scale        Range `yaml:"scale"`

	AnimateRotation bool  `yaml:"animate_rotation"`
	Rotation        Range `yaml:"rotation"`

	AnimatePosition bool `yaml:"animate_position"`
	PositionMin     Vec2 `yaml:"position_min"`
	PositionMax     Vec2 `yaml:"position_max"`

	AnimateOpacity bool  `yaml:"animate_opacity"`
	Opacity        Range `yaml:"opacity"`

	// Ease names a registered ease function ("" = smoothstep).
	Ease string `yaml:"ease"`
	// Duration is the half-cycle length in seconds. Non-positive durations
	// are clamped to defaultIdleDuration.
	Duration float64 `yaml:"duration"`
	// Loop oscillates forever; otherwise one full forward+reverse cycle
	// plays and the animator stops.
	Loop bool `yaml:"loop"`
	// UseTweens selects the gween sequence driver instead of the per-tick
	// interpolation loop. Both drivers share the timing model above.
	UseTweens bool `yaml:"use_tweens"`
}

const defaultIdleDuration = 1.0

// pose is the baseline captured at animation start. Every frame recomputes
// from this fixed pose plus a bounded interpolation, so long-running
// oscillation cannot accumulate drift.
type pose struct {
	x, y     float64
	scaleX   float64
	scaleY   float64
	rotation float64
}

func capturePose(e *Element) pose {
	return pose{x: e.X, y: e.Y, scaleX: e.ScaleX, scaleY: e.ScaleY, rotation: e.Rotation}
}

// idleState is the loop driver's per-target clock.
type idleState struct {
	el      *Element
	base    pose
	elapsed float64
	forward bool
	done    bool
}

// IdleAnimator drives a continuous yoyo oscillation of one or more elements.
// It is independent of screen switching; a screen switch neither stops nor
// restarts it.
type IdleAnimator struct {
	cfg     IdleConfig
	targets []*Element

	// loop driver state
	state []idleState

	// tween driver state
	pool     *TweenPool
	ownsPool bool
	owner    uint32
	seqCount int

	animating bool
}

// NewIdleAnimator creates a stopped animator for the given targets. Nil
// targets are tolerated and skipped with a warning at start.
func NewIdleAnimator(cfg IdleConfig, targets ...*Element) *IdleAnimator {
	if cfg.Duration <= 0 {
		cfg.Duration = defaultIdleDuration
	}
	return &IdleAnimator{
		cfg:      cfg,
		targets:  targets,
		pool:     NewTweenPool(),
		ownsPool: true,
		owner:    nextOwnerID(),
	}
}

// UseTweenPool makes the animator register its sequences in a shared pool
// (pumped by its owner, typically a Shell) instead of the private one.
// Must be called while stopped.
func (a *IdleAnimator) UseTweenPool(p *TweenPool) {
	if a.animating || p == nil {
		return
	}
	a.pool = p
	a.ownsPool = false
}

// Config returns the animator's configuration.
func (a *IdleAnimator) Config() IdleConfig {
	return a.cfg
}

// SetConfig replaces the configuration. Takes effect on the next Start;
// call Restart to apply immediately.
func (a *IdleAnimator) SetConfig(cfg IdleConfig) {
	if cfg.Duration <= 0 {
		cfg.Duration = defaultIdleDuration
	}
	a.cfg = cfg
}

// Animating reports whether the animator is running.
func (a *IdleAnimator) Animating() bool {
	return a.animating
}

// Start begins the oscillation for every target, capturing each target's
// live pose as the new baseline. No-op when already animating. A config with
// no enabled property still runs (no visible effect) — acceptable idle
// behavior, not an error.
func (a *IdleAnimator) Start() {
	if a.animating {
		return
	}

	if a.cfg.UseTweens {
		a.seqCount = 0
		for _, el := range a.targets {
			if el == nil {
				warnf("idle animator: missing target, skipping")
				continue
			}
			a.seqCount += startTweens(a.pool, a.owner, el, capturePose(el), a.cfg)
		}
		a.animating = true
		return
	}

	a.state = a.state[:0]
	for _, el := range a.targets {
		if el == nil {
			warnf("idle animator: missing target, skipping")
			continue
		}
		a.state = append(a.state, idleState{el: el, base: capturePose(el), forward: true})
	}
	a.animating = true
}

// Stop cancels every loop and tween owned by this animator. Partially applied
// frame values are left as-is; the next Start recaptures the live pose.
// Idempotent.
func (a *IdleAnimator) Stop() {
	if !a.animating {
		return
	}
	a.pool.KillOwner(a.owner)
	a.seqCount = 0
	a.state = a.state[:0]
	a.animating = false
}

// Restart is Stop followed by Start. Use after SetConfig to apply a new
// configuration mid-run.
func (a *IdleAnimator) Restart() {
	a.Stop()
	a.Start()
}

// Update advances the oscillation by dt seconds. For the tween driver this
// pumps the private pool (shared pools are pumped by their owner). All
// property writes for one target happen together within the tick.
func (a *IdleAnimator) Update(dt float64) {
	if !a.animating {
		return
	}

	if a.cfg.UseTweens {
		if a.ownsPool {
			a.pool.Update(float32(dt))
		}
		// A finite (Loop=false) cycle ends when the pool has dropped all of
		// this animator's sequences.
		if !a.cfg.Loop && a.seqCount > 0 && a.pool.OwnedBy(a.owner) == 0 {
			a.seqCount = 0
			a.animating = false
		}
		return
	}

	running := false
	for i := range a.state {
		st := &a.state[i]
		if st.done {
			continue
		}
		a.step(st, dt)
		if !st.done {
			running = true
		}
	}
	if !running && len(a.state) > 0 {
		a.animating = false
	}
}

// step advances one target's clock and reapplies every enabled property from
// the captured base pose.
func (a *IdleAnimator) step(st *idleState, dt float64) {
	d := a.cfg.Duration
	st.elapsed += dt

	t := st.elapsed / d
	if t >= 1 {
		t = 1
	}
	eased := float64(EaseByName(a.cfg.Ease)(float32(t), 0, 1, 1))
	frac := eased
	if !st.forward {
		frac = 1 - eased
	}
	a.apply(st, frac)

	// Half-cycle boundary: flip direction, carry the remainder so the
	// oscillation period stays exactly two durations.
	if st.elapsed >= d {
		if !a.cfg.Loop && !st.forward {
			st.done = true
			return
		}
		st.forward = !st.forward
		st.elapsed -= d
	}
}

// apply writes every enabled property for frac in [0, 1], where 0 is the min
// bound and 1 the max bound.
func (a *IdleAnimator) apply(st *idleState, frac float64) {
	el := st.el
	if a.cfg.AnimateScale {
		f := a.cfg.Scale.Lerp(frac)
		el.ScaleX = st.base.scaleX * f
		el.ScaleY = st.base.scaleY * f
	}
	if a.cfg.AnimateRotation {
		el.Rotation = st.base.rotation + a.cfg.Rotation.Lerp(frac)
	}
	if a.cfg.AnimatePosition {
		p := a.cfg.PositionMin.Lerp(a.cfg.PositionMax, frac)
		el.X = st.base.x + p.X
		el.Y = st.base.y + p.Y
	}
	if a.cfg.AnimateOpacity {
		el.Alpha = a.cfg.Opacity.Lerp(frac)
	}
	el.MarkDirty()
}
