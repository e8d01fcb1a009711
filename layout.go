package foyer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LayoutNode is the YAML shape of one element in a declarative layout.
// Layouts exist so the offline inspector and the runtime read the same
// tree/marker conventions; trees built in code are equally valid.
type LayoutNode struct {
	Name     string       `yaml:"name"`
	Kind     string       `yaml:"kind"` // container (default), panel, button, label
	Class    []string     `yaml:"class"`
	Text     string       `yaml:"text"`
	X        float64      `yaml:"x"`
	Y        float64      `yaml:"y"`
	W        float64      `yaml:"w"`
	H        float64      `yaml:"h"`
	Children []LayoutNode `yaml:"children"`
}

// BuildLayout parses a YAML layout and constructs the element tree it
// describes. Structural YAML problems are errors; an unknown kind warns and
// falls back to a container so one typo cannot sink the whole tree.
func BuildLayout(data []byte) (*Element, error) {
	var root LayoutNode
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	return buildElement(root), nil
}

func buildElement(ln LayoutNode) *Element {
	var e *Element
	switch ln.Kind {
	case "", "container":
		e = NewContainer(ln.Name)
	case "panel":
		e = NewPanel(ln.Name, ln.W, ln.H)
	case "button":
		e = NewButton(ln.Name, ln.Text, ln.W, ln.H)
	case "label":
		e = NewLabel(ln.Name, ln.Text)
	default:
		warnf("layout: unknown kind %q on %q, treating as container", ln.Kind, ln.Name)
		e = NewContainer(ln.Name)
	}
	e.X = ln.X
	e.Y = ln.Y
	if e.Kind == KindContainer || e.Kind == KindLabel {
		// Containers and labels have no intrinsic size, but a layout may
		// still give them one (labels with explicit hit areas, for example).
		e.W = ln.W
		e.H = ln.H
	}
	if ln.Text != "" && e.Text == "" {
		e.Text = ln.Text
	}
	for _, c := range ln.Class {
		e.AddClass(c)
	}
	for _, child := range ln.Children {
		e.AddChild(buildElement(child))
	}
	return e
}
