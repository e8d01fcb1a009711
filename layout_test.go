package foyer

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const layoutYAML = `
name: root
children:
  - name: Home
    kind: panel
    class: [screen]
    w: 640
    h: 480
    children:
      - name: title
        kind: label
        text: "@title"
        x: 200
        y: 60
      - name: OpenSettings
        kind: button
        text: "@settings"
        x: 270
        y: 200
        w: 100
        h: 40
  - name: Settings
    kind: panel
    class: [screen]
    w: 640
    h: 480
    children:
      - name: Back
        kind: button
        text: "@back"
        x: 270
        y: 400
        w: 100
        h: 40
`

func TestBuildLayoutTree(t *testing.T) {
	root, err := BuildLayout([]byte(layoutYAML))
	require.NoError(t, err)

	assert.Equal(t, "root", root.Name)
	assert.Equal(t, KindContainer, root.Kind)
	require.Equal(t, 2, root.NumChildren())

	home := root.ChildAt(0)
	assert.Equal(t, "Home", home.Name)
	assert.Equal(t, KindPanel, home.Kind)
	assert.True(t, home.HasClass(ScreenClass))
	assert.Equal(t, 640.0, home.W)

	title := home.ChildAt(0)
	assert.Equal(t, KindLabel, title.Kind)
	assert.Equal(t, "@title", title.Text)
	assert.Equal(t, 200.0, title.X)

	btn := home.ChildAt(1)
	assert.Equal(t, KindButton, btn.Kind)
	assert.Equal(t, HitInteractive, btn.HitMode)
	assert.Equal(t, 100.0, btn.W)

	// Screens discovered from a layout behave like hand-built trees.
	m := NewScreenManager()
	require.NoError(t, m.Bind(root, "", nil))
	assert.Equal(t, []string{"Home", "Settings"}, m.Names())
}

func TestBuildLayoutUnknownKindFallsBack(t *testing.T) {
	buf := captureLog(t)
	root, err := BuildLayout([]byte("name: root\nkind: blob\n"))
	require.NoError(t, err)
	assert.Equal(t, KindContainer, root.Kind)
	assert.Contains(t, buf.String(), `unknown kind "blob"`)
}

func TestBuildLayoutBadYAML(t *testing.T) {
	_, err := BuildLayout([]byte("[unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse layout")
}

func TestLoaderLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{"menu.yaml": {Data: []byte(layoutYAML)}}
	l := NewFSLoader(fsys)
	root, err := l.LoadLayout("menu.yaml")
	require.NoError(t, err)
	assert.NotNil(t, root.FindByName("OpenSettings"))
}

func TestLoaderLoadLayoutMissing(t *testing.T) {
	l := NewFSLoader(fstest.MapFS{})
	_, err := l.LoadLayout("menu.yaml")
	require.Error(t, err)
}
