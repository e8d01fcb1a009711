package foyer

// elementIDCounter is a plain counter (no atomic — foyer is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// ActivateContext carries activation (click) event data.
type ActivateContext struct {
	Element *Element
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
}

// Element is the fundamental UI tree node. A single flat struct is used for
// all element kinds to avoid interface dispatch on the per-frame paths.
type Element struct {
	// Identity
	ID   uint32
	Name string
	Kind ElementKind

	// Hierarchy
	Parent   *Element
	children []*Element

	// Marker classes ("screen", "active", ...). Small ordered set; linear
	// scans beat a map at the handful of classes UI elements carry.
	classes []string

	// Transform (local)
	X, Y     float64
	W, H     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Computed during RefreshTransforms
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility & interaction
	Alpha   float64
	Visible bool
	HitMode HitMode

	// Text (KindButton, KindLabel)
	Text        string
	placeholder string // first-seen text, the localization key

	// Activation callback (nil by default; zero cost when unused)
	OnActivate func(ActivateContext)
}

// elementDefaults sets the common default field values shared by all constructors.
func elementDefaults(e *Element) {
	e.ID = nextElementID()
	e.ScaleX = 1
	e.ScaleY = 1
	e.Alpha = 1
	e.Visible = true
	e.transformDirty = true
}

// NewContainer creates a group element with no size and no visual output.
// Containers are never hit-testable themselves.
func NewContainer(name string) *Element {
	e := &Element{Name: name, Kind: KindContainer}
	elementDefaults(e)
	return e
}

// NewPanel creates a sized rectangular element. Screens are panels carrying
// the "screen" class.
func NewPanel(name string, w, h float64) *Element {
	e := &Element{Name: name, Kind: KindPanel, W: w, H: h}
	elementDefaults(e)
	return e
}

// NewButton creates an interactive leaf element with a text label.
func NewButton(name, text string, w, h float64) *Element {
	e := &Element{Name: name, Kind: KindButton, Text: text, W: w, H: h}
	elementDefaults(e)
	e.HitMode = HitInteractive
	return e
}

// NewLabel creates a non-interactive text element.
func NewLabel(name, text string) *Element {
	e := &Element{Name: name, Kind: KindLabel, Text: text}
	elementDefaults(e)
	return e
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("foyer: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("foyer: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("foyer: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Element) ChildAt(index int) *Element {
	return e.children[index]
}

// --- Marker classes ---

// HasClass reports whether the element carries the given marker class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds a marker class. No-op if already present.
func (e *Element) AddClass(class string) {
	if e.HasClass(class) {
		return
	}
	e.classes = append(e.classes, class)
}

// RemoveClass removes a marker class. No-op if absent.
func (e *Element) RemoveClass(class string) {
	for i, c := range e.classes {
		if c == class {
			copy(e.classes[i:], e.classes[i+1:])
			e.classes = e.classes[:len(e.classes)-1]
			return
		}
	}
}

// Classes returns the element's marker classes. MUST NOT be mutated.
func (e *Element) Classes() []string {
	return e.classes
}

// --- Queries ---

// FindByName returns the first element named name in document order
// (depth-first, children in insertion order), including e itself.
// Returns nil if no such element exists.
func (e *Element) FindByName(name string) *Element {
	if e.Name == name {
		return e
	}
	for _, child := range e.children {
		if found := child.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAllByClass appends every element in this subtree carrying the given
// marker class, in document order.
func (e *Element) FindAllByClass(class string, buf []*Element) []*Element {
	if e.HasClass(class) {
		buf = append(buf, e)
	}
	for _, child := range e.children {
		buf = child.FindAllByClass(class, buf)
	}
	return buf
}

// --- Hit mode ---

// SetHitModeRecursive sets the hit mode on this element and every descendant.
// This is the mechanism that keeps inactive screens from intercepting pointer
// events even when they visually overlap the active one.
func (e *Element) SetHitModeRecursive(mode HitMode) {
	e.HitMode = mode
	for _, child := range e.children {
		child.SetHitModeRecursive(mode)
	}
}

// --- Activation ---

// Activate fires the element's OnActivate callback with the element's own
// position as the event location. Used by button bindings and tests;
// pointer-driven activation goes through Shell input processing with real
// coordinates.
func (e *Element) Activate() {
	if e.OnActivate == nil {
		return
	}
	gx, gy := e.LocalToWorld(0, 0)
	e.OnActivate(ActivateContext{Element: e, GlobalX: gx, GlobalY: gy})
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of el.
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on el and all its descendants.
func markSubtreeDirty(el *Element) {
	el.transformDirty = true
	for _, child := range el.children {
		markSubtreeDirty(child)
	}
}
