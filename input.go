package foyer

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Hit testing ---

// elementContainsLocal tests whether (lx, ly) falls inside an element's
// rectangle. Elements without size (containers, labels) are not hit-testable.
func elementContainsLocal(e *Element, lx, ly float64) bool {
	if e.W == 0 && e.H == 0 {
		return false
	}
	return lx >= 0 && lx <= e.W && ly >= 0 && ly <= e.H
}

// collectInteractive walks the tree in document (painter) order, appending
// hit-testable elements to buf. A Visible=false or HitMode=HitIgnore element
// prunes its whole subtree, which is what lets ScreenManager silence an
// entire inactive screen with one recursive hit-mode write.
func collectInteractive(e *Element, buf []*Element) []*Element {
	if !e.Visible || e.HitMode != HitInteractive {
		return buf
	}
	if e.W != 0 || e.H != 0 {
		buf = append(buf, e)
	}
	for _, child := range e.children {
		buf = collectInteractive(child, buf)
	}
	return buf
}

// HitTest finds the topmost hit-testable element at (worldX, worldY), or nil.
// Later siblings paint above earlier ones, so the collected list is scanned
// in reverse. World transforms must be current (see Element.RefreshTransforms).
func HitTest(root *Element, worldX, worldY float64) *Element {
	buf := collectInteractive(root, nil)
	for i := len(buf) - 1; i >= 0; i-- {
		e := buf[i]
		lx, ly := e.WorldToLocal(worldX, worldY)
		if elementContainsLocal(e, lx, ly) {
			return e
		}
	}
	return nil
}

// --- Pointer state ---

// pointerState tracks the mouse across frames so a press and release over the
// same element can be synthesized into one activation.
type pointerState struct {
	down    bool
	pressEl *Element
}

// syntheticPointerEvent is a single injected pointer event, consumed one per
// tick ahead of real mouse input. Injection keeps input paths testable
// without a window.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// processPointer runs the press/release state machine for one pointer sample.
func (p *pointerState) processPointer(root *Element, x, y float64, pressed bool) {
	switch {
	case pressed && !p.down:
		p.down = true
		p.pressEl = HitTest(root, x, y)
	case !pressed && p.down:
		p.down = false
		target := HitTest(root, x, y)
		if target != nil && target == p.pressEl && target.OnActivate != nil {
			lx, ly := target.WorldToLocal(x, y)
			target.OnActivate(ActivateContext{
				Element: target,
				GlobalX: x, GlobalY: y,
				LocalX: lx, LocalY: ly,
			})
		}
		p.pressEl = nil
	}
}

// readMouse samples the real mouse. Only the left button activates UI.
func (p *pointerState) readMouse(root *Element) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.processPointer(root, float64(mx), float64(my), pressed)
}

// --- Synthetic input (Shell API) ---

// InjectPress queues a pointer press at the given coordinates. The event is
// consumed on the next Update.
func (s *Shell) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given coordinates.
func (s *Shell) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two Updates.
func (s *Shell) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// processInjectedInput pops one queued event and feeds it through the pointer
// state machine. Returns true if an event was consumed (real mouse input is
// skipped that tick).
func (s *Shell) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.pointer.processPointer(s.root, evt.x, evt.y, evt.pressed)
	return true
}
