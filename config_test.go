package foyer

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shellYAML = `
start_screen: Home
buttons:
  - button: OpenSettings
    screen: Settings
  - button: Back
    screen: Home
idle:
  - target: title
    animate_scale: true
    scale: {min: 1.0, max: 1.05}
    ease: smoothstep
    duration: 1.5
    loop: true
  - target: logo
    animate_position: true
    position_min: {x: 0, y: -4}
    position_max: {x: 0, y: 4}
    use_tweens: true
    duration: 2.0
    loop: true
locale: locales/en.yaml
`

const localeYAML = `
"@play": "Play"
"@quit": "Quit"
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"shell.yaml":      {Data: []byte(shellYAML)},
		"locales/en.yaml": {Data: []byte(localeYAML)},
		"broken.yaml":     {Data: []byte("[unclosed")},
	}
}

func TestLoadConfig(t *testing.T) {
	l := NewFSLoader(testFS())
	cfg, err := l.LoadConfig("shell.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Home", cfg.StartScreen)
	require.Len(t, cfg.Buttons, 2)
	assert.Equal(t, ButtonMapping{Button: "OpenSettings", Screen: "Settings"}, cfg.Buttons[0])

	require.Len(t, cfg.Idle, 2)
	title := cfg.Idle[0]
	assert.Equal(t, "title", title.Target)
	assert.True(t, title.Config.AnimateScale)
	assert.Equal(t, Range{Min: 1.0, Max: 1.05}, title.Config.Scale)
	assert.Equal(t, 1.5, title.Config.Duration)
	assert.True(t, title.Config.Loop)
	assert.False(t, title.Config.UseTweens)

	logo := cfg.Idle[1]
	assert.True(t, logo.Config.AnimatePosition)
	assert.Equal(t, Vec2{X: 0, Y: -4}, logo.Config.PositionMin)
	assert.Equal(t, Vec2{X: 0, Y: 4}, logo.Config.PositionMax)
	assert.True(t, logo.Config.UseTweens)

	assert.Equal(t, "locales/en.yaml", cfg.Locale)
}

func TestLoadConfigMissingFile(t *testing.T) {
	l := NewFSLoader(testFS())
	_, err := l.LoadConfig("absent.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml")
}

func TestLoadConfigBadYAML(t *testing.T) {
	l := NewFSLoader(testFS())
	_, err := l.LoadConfig("broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadDictionary(t *testing.T) {
	l := NewFSLoader(testFS())
	dict, err := l.LoadDictionary("locales/en.yaml")
	require.NoError(t, err)
	assert.Equal(t, Dictionary{"@play": "Play", "@quit": "Quit"}, dict)
}

func TestLoadDictionaryMissing(t *testing.T) {
	l := NewFSLoader(testFS())
	_, err := l.LoadDictionary("locales/xx.yaml")
	require.Error(t, err)
}
