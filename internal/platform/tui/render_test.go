package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawColorText(0, 0, "SCORE", core.ColorYellow)
	s.DrawText(6, 0, "10")
	s.DrawColorText(0, 1, "██", core.ColorCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"SCORE", "10", "██"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output %q", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for _, c := range []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorGreen, core.ColorYellow, core.ColorBlue,
		core.ColorMagenta, core.ColorCyan, core.ColorWhite, core.ColorOrange, core.ColorGray,
	} {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
}
