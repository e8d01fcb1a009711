package foyer

import "errors"

// ErrNoRoot is returned by Bind when the UI tree is absent. The manager never
// activates in that case; callers are expected to log and carry on.
var ErrNoRoot = errors.New("foyer: no UI tree to bind")

// ButtonMapping pairs a button name to the screen its activation shows.
// Design-time data, consumed once during Bind.
type ButtonMapping struct {
	Button string `yaml:"button"`
	Screen string `yaml:"screen"`
}

// ScreenManager tracks every screen under a root and enforces the
// single-active-screen invariant: after a successful Bind, exactly one
// registered screen carries the "active" class and a hit-testable subtree.
//
// Two-phase startup: construct with NewScreenManager, then call Bind once the
// tree is confirmed populated. Binding against a half-built tree registers
// whatever screens exist at that moment, so callers must not Bind before the
// tree is complete.
type ScreenManager struct {
	root    *Element
	screens map[string]*Element
	order   []string // discovery (document) order
	active  string
}

// NewScreenManager creates an unbound manager.
func NewScreenManager() *ScreenManager {
	return &ScreenManager{screens: make(map[string]*Element)}
}

// Bind discovers screens under root, activates the start screen, and wires
// button mappings. startScreen may be empty: the first discovered screen is
// then used — an arbitrary fallback, meaningful only in that it is stable for
// a fixed tree (document order).
//
// Unnamed screens and unresolvable mappings are logged and skipped; the only
// error condition is a nil root.
func (m *ScreenManager) Bind(root *Element, startScreen string, buttons []ButtonMapping) error {
	if root == nil {
		errorf("screen manager: %v", ErrNoRoot)
		return ErrNoRoot
	}
	m.root = root

	for _, el := range root.FindAllByClass(ScreenClass, nil) {
		if el.Name == "" {
			warnf("screen element without a name, skipping")
			continue
		}
		if _, dup := m.screens[el.Name]; dup {
			warnf("duplicate screen %q, keeping the first", el.Name)
			continue
		}
		m.screens[el.Name] = el
		m.order = append(m.order, el.Name)
		el.RemoveClass(ActiveClass)
		el.SetHitModeRecursive(HitIgnore)
	}

	if len(m.order) == 0 {
		warnf("no screen elements found under %q", root.Name)
		return nil
	}

	// Hit testing prunes ignored subtrees, so the chain above every screen
	// must stay traversable regardless of which screen is active.
	for _, name := range m.order {
		for p := m.screens[name].Parent; p != nil; p = p.Parent {
			p.HitMode = HitInteractive
		}
	}

	start := startScreen
	if _, ok := m.screens[start]; !ok {
		if start != "" {
			warnf("start screen %q is not registered%s, falling back to %q",
				start, suggest(start, m.order), m.order[0])
		}
		start = m.order[0]
	}
	m.ShowScreen(start)

	for _, b := range buttons {
		m.bindButton(b)
	}
	return nil
}

// bindButton locates the mapping's button by searching every registered
// screen in registry order (first match wins) and binds its activation to a
// screen switch. Unresolvable mappings warn and are skipped.
func (m *ScreenManager) bindButton(b ButtonMapping) {
	if _, ok := m.screens[b.Screen]; !ok {
		warnf("button %q maps to unknown screen %q%s, skipping",
			b.Button, b.Screen, suggest(b.Screen, m.order))
		return
	}
	var btn *Element
	for _, name := range m.order {
		if btn = m.screens[name].FindByName(b.Button); btn != nil {
			break
		}
	}
	if btn == nil {
		warnf("button %q not found on any screen, skipping mapping to %q", b.Button, b.Screen)
		return
	}
	target := b.Screen
	btn.OnActivate = func(ActivateContext) {
		m.ShowScreen(target)
	}
}

// ShowScreen makes the named screen the single active one: it gains the
// "active" class and a fully hit-testable subtree, every other screen loses
// both. Unknown names warn and leave the active screen unchanged. Idempotent.
func (m *ScreenManager) ShowScreen(name string) {
	if _, ok := m.screens[name]; !ok {
		warnf("unknown screen %q%s", name, suggest(name, m.order))
		return
	}
	for _, n := range m.order {
		el := m.screens[n]
		if n == name {
			el.AddClass(ActiveClass)
			el.SetHitModeRecursive(HitInteractive)
		} else {
			el.RemoveClass(ActiveClass)
			el.SetHitModeRecursive(HitIgnore)
		}
	}
	m.active = name
}

// Active returns the active screen element, or nil before Bind (or when the
// registry is empty).
func (m *ScreenManager) Active() *Element {
	if m.active == "" {
		return nil
	}
	return m.screens[m.active]
}

// ActiveName returns the active screen's name, or "".
func (m *ScreenManager) ActiveName() string {
	return m.active
}

// Screen returns the registered screen with the given name, or nil.
func (m *ScreenManager) Screen(name string) *Element {
	return m.screens[name]
}

// Names returns the registered screen names in discovery order.
// The returned slice MUST NOT be mutated.
func (m *ScreenManager) Names() []string {
	return m.order
}
