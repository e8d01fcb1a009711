package foyer

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Dictionary maps placeholder text (the text an element was authored with)
// to localized text.
type Dictionary map[string]string

// LoadDictionary reads a YAML dictionary from fsys. The file is a flat
// string-to-string mapping.
func LoadDictionary(fsys fs.FS, path string) (Dictionary, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	var dict Dictionary
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary %s: %w", path, err)
	}
	return dict, nil
}

// Localize substitutes the text of every button and label under root whose
// placeholder appears in dict, and returns the number of substitutions.
// An element's placeholder is its first-seen text, captured on the first
// Localize call, so repeated application with different dictionaries always
// substitutes from the authored text, never from a previous translation.
func Localize(root *Element, dict Dictionary) int {
	if root == nil || len(dict) == 0 {
		return 0
	}
	return localize(root, dict)
}

func localize(e *Element, dict Dictionary) int {
	count := 0
	if e.Kind == KindButton || e.Kind == KindLabel {
		if e.placeholder == "" {
			e.placeholder = e.Text
		}
		if localized, ok := dict[e.placeholder]; ok {
			e.Text = localized
			count++
		}
	}
	for _, child := range e.children {
		count += localize(child, dict)
	}
	return count
}

// Localizer owns the active dictionary for one tree. Swapping the dictionary
// re-applies it immediately.
type Localizer struct {
	root *Element
	dict Dictionary
}

// NewLocalizer creates a localizer for the tree rooted at root and applies
// the initial dictionary (which may be nil).
func NewLocalizer(root *Element, dict Dictionary) *Localizer {
	l := &Localizer{root: root, dict: dict}
	Localize(root, dict)
	return l
}

// Dictionary returns the active dictionary.
func (l *Localizer) Dictionary() Dictionary {
	return l.dict
}

// SetDictionary swaps the active dictionary and re-applies it to the tree,
// returning the number of substitutions.
func (l *Localizer) SetDictionary(dict Dictionary) int {
	l.dict = dict
	return Localize(l.root, dict)
}
