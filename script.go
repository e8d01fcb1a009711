package foyer

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Screen string  `yaml:"screen,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// scriptFile is the top-level YAML structure for an input script.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner replays a scripted sequence of pointer events and screen
// switches across ticks, for automated UI exercising without a window or a
// human. Attach to a Shell via SetScript; the shell steps the runner once per
// Update, ahead of input processing.
//
// Supported actions: "click", "press" and "release" (x, y), "show" (screen),
// "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML input script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("failed to parse script: no steps")
	}
	for _, st := range f.Steps {
		switch st.Action {
		case "click", "press", "release", "show", "wait":
		default:
			return nil, fmt.Errorf("failed to parse script: unknown action %q", st.Action)
		}
	}
	return &ScriptRunner{steps: f.Steps}, nil
}

// LoadScript reads and parses an input script from the loader's filesystem.
func (l *Loader) LoadScript(path string) (*ScriptRunner, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return LoadScript(data)
}

// SetScript attaches a script runner to the shell. Pass nil to detach.
func (s *Shell) SetScript(r *ScriptRunner) {
	s.script = r
}

// Done reports whether every step has been executed and all injected input
// has drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the script by one tick. Called from Shell.Update.
func (r *ScriptRunner) step(s *Shell) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "show":
		s.ShowScreen(st.Screen)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
