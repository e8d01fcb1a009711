// Command foyer-inspect validates a foyer layout and shell configuration
// without opening a window. It reports the screens a layout declares, whether
// every button mapping and idle target resolves against that layout, and how
// much of the referenced locale dictionary covers the layout's placeholders.
//
// Usage:
//
//	foyer-inspect -layout menu.yaml [-config shell.yaml] [-buttons]
//
// -buttons prints a button-mapping stub for every button found, ready to be
// pasted into a shell config. The exit status is 1 when any reference fails
// to resolve, so the tool slots into asset-pipeline checks.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/foyer"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
)

func main() {
	layoutPath := flag.String("layout", "", "layout YAML to inspect (required)")
	configPath := flag.String("config", "", "shell config YAML to check against the layout")
	emitButtons := flag.Bool("buttons", false, "emit a button-mapping stub for every button found")
	flag.Parse()

	if *layoutPath == "" {
		fmt.Fprintln(os.Stderr, "foyer-inspect: -layout is required")
		flag.Usage()
		os.Exit(2)
	}

	root, err := loadLayout(*layoutPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "foyer-inspect: %v\n", err)
		os.Exit(2)
	}

	insp := inspect(root)

	if *emitButtons {
		emitButtonStub(insp.buttons)
		return
	}

	failed := reportLayout(insp)
	if *configPath != "" {
		if !reportConfig(*configPath, insp) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func loadLayout(path string) (*foyer.Element, error) {
	l := foyer.NewLoader(filepath.Dir(path))
	return l.LoadLayout(filepath.Base(path))
}

// inspection is everything the reports need from one layout walk.
type inspection struct {
	root         *foyer.Element
	screens      []string
	buttons      []string
	placeholders []string // "@..." texts, deduplicated, in document order
}

func inspect(root *foyer.Element) inspection {
	insp := inspection{root: root}
	seen := map[string]bool{}
	var walk func(e *foyer.Element)
	walk = func(e *foyer.Element) {
		if e.HasClass(foyer.ScreenClass) && e.Name != "" {
			insp.screens = append(insp.screens, e.Name)
		}
		if e.Kind == foyer.KindButton {
			insp.buttons = append(insp.buttons, e.Name)
		}
		if (e.Kind == foyer.KindButton || e.Kind == foyer.KindLabel) &&
			strings.HasPrefix(e.Text, "@") && !seen[e.Text] {
			seen[e.Text] = true
			insp.placeholders = append(insp.placeholders, e.Text)
		}
		for _, child := range e.Children() {
			walk(child)
		}
	}
	walk(root)
	return insp
}

// reportLayout prints the screens and buttons a layout declares. Returns true
// when the layout itself is unusable (no screens).
func reportLayout(insp inspection) bool {
	fmt.Println(titleStyle.Render("Screens"))
	if len(insp.screens) == 0 {
		fmt.Println("  " + badStyle.Render("none — nothing to activate"))
	}
	for i, s := range insp.screens {
		marker := "  "
		if i == 0 {
			marker = dimStyle.Render("* ") // default start screen
		}
		fmt.Printf("  %s%s\n", marker, nameStyle.Render(s))
	}

	fmt.Println(titleStyle.Render("Buttons"))
	if len(insp.buttons) == 0 {
		fmt.Println("  " + dimStyle.Render("none"))
	}
	for _, b := range insp.buttons {
		fmt.Printf("    %s\n", nameStyle.Render(b))
	}
	return len(insp.screens) == 0
}

// reportConfig resolves a shell config against the inspected layout. Returns
// false when any reference is unresolved.
func reportConfig(path string, insp inspection) bool {
	l := foyer.NewLoader(filepath.Dir(path))
	cfg, err := l.LoadConfig(filepath.Base(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "foyer-inspect: %v\n", err)
		return false
	}

	ok := true
	check := func(cond bool, format string, args ...any) {
		line := fmt.Sprintf(format, args...)
		if cond {
			fmt.Printf("  %s %s\n", okStyle.Render("ok"), line)
		} else {
			fmt.Printf("  %s %s\n", badStyle.Render("!!"), line)
			ok = false
		}
	}
	hasScreen := func(name string) bool {
		for _, s := range insp.screens {
			if s == name {
				return true
			}
		}
		return false
	}

	fmt.Println(titleStyle.Render("Config: " + path))
	if cfg.StartScreen != "" {
		check(hasScreen(cfg.StartScreen), "start screen %q", cfg.StartScreen)
	}
	for _, b := range cfg.Buttons {
		found := insp.root.FindByName(b.Button) != nil
		check(found && hasScreen(b.Screen), "button %q → screen %q", b.Button, b.Screen)
	}
	for _, t := range cfg.Idle {
		check(insp.root.FindByName(t.Target) != nil, "idle target %q", t.Target)
	}

	if cfg.Locale != "" {
		dict, err := l.LoadDictionary(cfg.Locale)
		if err != nil {
			fmt.Printf("  %s locale %q: %v\n", badStyle.Render("!!"), cfg.Locale, err)
			return false
		}
		fmt.Println(titleStyle.Render("Locale: " + cfg.Locale))
		covered := 0
		for _, ph := range insp.placeholders {
			if _, found := dict[ph]; found {
				covered++
			} else {
				fmt.Printf("  %s missing %s\n", badStyle.Render("!!"), nameStyle.Render(ph))
				ok = false
			}
		}
		fmt.Printf("  %d/%d placeholders covered\n", covered, len(insp.placeholders))
	}
	return ok
}

// emitButtonStub prints a buttons: section skeleton for the layout's buttons.
func emitButtonStub(buttons []string) {
	fmt.Println("buttons:")
	for _, b := range buttons {
		fmt.Printf("  - button: %s\n    screen: \"\"\n", b)
	}
}
