package foyer

import (
	"fmt"
	"io"
	"os"

	"github.com/agnivade/levenshtein"
)

// logWriter receives all foyer diagnostics. Plain variable, no lock — foyer
// is single-threaded.
var logWriter io.Writer = os.Stderr

// SetLogWriter redirects foyer's diagnostics (default os.Stderr). Passing nil
// restores the default. Diagnostics are developer-facing only; nothing foyer
// logs is meant for the player.
func SetLogWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logWriter = w
}

// warnf logs a configuration warning. Warnings mark soft failures: the
// offending entry is skipped and the shell continues in its last valid state.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(logWriter, "[foyer] warning: "+format+"\n", args...)
}

// errorf logs a missing-collaborator error. The dependent component never
// activates but the process keeps running.
func errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(logWriter, "[foyer] error: "+format+"\n", args...)
}

// suggest returns a ` (did you mean %q?)` suffix naming the candidate closest
// to name, or "" when nothing is close enough. Edit-distance limits follow
// candidate length so short names only match near-exact typos.
func suggest(name string, candidates []string) string {
	best := ""
	bestDist := 0
	for _, cand := range candidates {
		if cand == "" || cand == name {
			continue
		}
		dist := levenshtein.ComputeDistance(name, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if best == "" || dist < bestDist || (dist == bestDist && cand < best) {
			best = cand
			bestDist = dist
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
