package foyer

import (
	"github.com/tanema/gween"
)

// ownerIDCounter hands out owner tags for bulk cancellation. Plain counter,
// single-threaded like the rest of foyer.
var ownerIDCounter uint32

func nextOwnerID() uint32 {
	ownerIDCounter++
	return ownerIDCounter
}

// ownedSequence is one running gween sequence plus the writer that applies
// its current value to a target property.
type ownedSequence struct {
	owner uint32
	seq   *gween.Sequence
	apply func(float32)
}

// TweenPool runs gween sequences tagged with an owner identity so one owner's
// sequences can be cancelled together. There is no global pool — a Shell owns
// one and pumps it from Update; standalone animators create their own.
type TweenPool struct {
	active []ownedSequence
}

// NewTweenPool creates an empty pool.
func NewTweenPool() *TweenPool {
	return &TweenPool{}
}

// Add registers a sequence under the given owner. apply is invoked with the
// sequence's current value every Update.
func (p *TweenPool) Add(owner uint32, seq *gween.Sequence, apply func(float32)) {
	p.active = append(p.active, ownedSequence{owner: owner, seq: seq, apply: apply})
}

// Update advances every sequence by dt seconds and applies the resulting
// values. Completed sequences are removed; infinite (looping) sequences never
// complete. Values for one target are all written within the same tick.
func (p *TweenPool) Update(dt float32) {
	kept := p.active[:0]
	for _, os := range p.active {
		value, _, seqDone := os.seq.Update(dt)
		os.apply(value)
		if !seqDone {
			kept = append(kept, os)
		}
	}
	// Clear the tail so dropped entries don't pin their closures.
	for i := len(kept); i < len(p.active); i++ {
		p.active[i] = ownedSequence{}
	}
	p.active = kept
}

// KillOwner removes every sequence tagged with owner, preventing any further
// application of their values. Values already applied this tick are left
// as-is.
func (p *TweenPool) KillOwner(owner uint32) {
	kept := p.active[:0]
	for _, os := range p.active {
		if os.owner != owner {
			kept = append(kept, os)
		}
	}
	for i := len(kept); i < len(p.active); i++ {
		p.active[i] = ownedSequence{}
	}
	p.active = kept
}

// OwnedBy returns how many sequences are currently tagged with owner.
func (p *TweenPool) OwnedBy(owner uint32) int {
	n := 0
	for _, os := range p.active {
		if os.owner == owner {
			n++
		}
	}
	return n
}

// Len returns the number of running sequences.
func (p *TweenPool) Len() int {
	return len(p.active)
}

// newYoyoSequence builds a min→max sequence that plays forward then reverse.
// loop=true oscillates forever; loop=false plays exactly one full cycle.
func newYoyoSequence(min, max float64, cfg IdleConfig) *gween.Sequence {
	seq := gween.NewSequence(gween.New(float32(min), float32(max), float32(cfg.Duration), EaseByName(cfg.Ease)))
	seq.SetYoyo(true)
	if cfg.Loop {
		seq.SetLoop(-1)
	} else {
		seq.SetLoop(1)
	}
	return seq
}

// startTweens registers one yoyo sequence per enabled property of cfg,
// targeting el and recomputing each frame from the captured base pose.
// Returns the number of sequences registered.
func startTweens(pool *TweenPool, owner uint32, el *Element, base pose, cfg IdleConfig) int {
	count := 0
	if cfg.AnimateScale {
		pool.Add(owner, newYoyoSequence(cfg.Scale.Min, cfg.Scale.Max, cfg), func(v float32) {
			f := float64(v)
			el.ScaleX = base.scaleX * f
			el.ScaleY = base.scaleY * f
			el.MarkDirty()
		})
		count++
	}
	if cfg.AnimateRotation {
		pool.Add(owner, newYoyoSequence(cfg.Rotation.Min, cfg.Rotation.Max, cfg), func(v float32) {
			el.Rotation = base.rotation + float64(v)
			el.MarkDirty()
		})
		count++
	}
	if cfg.AnimatePosition {
		pool.Add(owner, newYoyoSequence(cfg.PositionMin.X, cfg.PositionMax.X, cfg), func(v float32) {
			el.X = base.x + float64(v)
			el.MarkDirty()
		})
		pool.Add(owner, newYoyoSequence(cfg.PositionMin.Y, cfg.PositionMax.Y, cfg), func(v float32) {
			el.Y = base.y + float64(v)
			el.MarkDirty()
		})
		count += 2
	}
	if cfg.AnimateOpacity {
		pool.Add(owner, newYoyoSequence(cfg.Opacity.Min, cfg.Opacity.Max, cfg), func(v float32) {
			el.Alpha = float64(v)
			el.MarkDirty()
		})
		count++
	}
	return count
}
