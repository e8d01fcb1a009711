package foyer

import (
	"fmt"
	"testing"
)

// setupBenchTree builds a root with n buttons spread over a grid, the shape a
// large menu screen takes.
func setupBenchTree(n int) *Element {
	root := NewPanel("root", 1280, 720)
	root.HitMode = HitInteractive
	for i := 0; i < n; i++ {
		btn := NewButton(fmt.Sprintf("btn%d", i), "", 32, 32)
		btn.X = float64(i%100) * 40
		btn.Y = float64(i/100) * 40
		root.AddChild(btn)
	}
	root.RefreshTransforms()
	return root
}

func BenchmarkRefreshTransforms_10000Static(b *testing.B) {
	root := setupBenchTree(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		root.RefreshTransforms()
	}
}

func BenchmarkRefreshTransforms_10000Dirty(b *testing.B) {
	root := setupBenchTree(10000)
	children := root.Children()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, child := range children {
			child.Rotation += 0.01
			child.transformDirty = true
		}
		root.RefreshTransforms()
	}
}

func BenchmarkHitTest_10000Buttons(b *testing.B) {
	root := setupBenchTree(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		HitTest(root, 640, 360)
	}
}

func BenchmarkShowScreen_100Screens(b *testing.B) {
	root := NewContainer("root")
	for i := 0; i < 100; i++ {
		s := NewPanel(fmt.Sprintf("screen%d", i), 640, 480)
		s.AddClass(ScreenClass)
		for j := 0; j < 10; j++ {
			s.AddChild(NewButton(fmt.Sprintf("b%d", j), "", 100, 40))
		}
		root.AddChild(s)
	}
	m := NewScreenManager()
	if err := m.Bind(root, "", nil); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.ShowScreen(fmt.Sprintf("screen%d", i%100))
	}
}

func BenchmarkIdleUpdate_100Animators(b *testing.B) {
	cfg := IdleConfig{
		AnimateScale:    true,
		Scale:           Range{Min: 1.0, Max: 1.05},
		AnimatePosition: true,
		PositionMin:     Vec2{Y: -4},
		PositionMax:     Vec2{Y: 4},
		Duration:        1.0,
		Loop:            true,
	}
	var anims []*IdleAnimator
	for i := 0; i < 100; i++ {
		a := NewIdleAnimator(cfg, NewLabel("l", "x"))
		a.Start()
		anims = append(anims, a)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, a := range anims {
			a.Update(1.0 / 60.0)
		}
	}
}
