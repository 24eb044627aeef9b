package blocks

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestCatalogShapes(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, KindCount)

	for i, tet := range catalog {
		assert.Equal(t, Kind(i), tet.Kind)
		assert.Equal(t, 4, tet.Shape.Count(), "kind %s", tet.Kind)
		assert.True(t, connected(tet.Shape), "kind %s is not 4-connected", tet.Kind)
	}
}

func TestCanonicalGrids(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
		col  core.Color
	}{
		{KindI, "####", core.ColorCyan},
		{KindJ, "#../###", core.ColorBlue},
		{KindL, "..#/###", core.ColorOrange},
		{KindO, "##/##", core.ColorYellow},
		{KindS, ".##/##.", core.ColorGreen},
		{KindT, ".#./###", core.ColorMagenta},
		{KindZ, "##./.##", core.ColorRed},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tet := Canonical(tt.kind)
			assert.Equal(t, tt.want, tet.Shape.String())
			assert.Equal(t, tt.col, tet.Color)
		})
	}
}

func TestCanonicalReturnsCopy(t *testing.T) {
	a := Canonical(KindT)
	a.Shape[0][0] = true
	assert.Equal(t, ".#./###", Canonical(KindT).Shape.String())
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("S")
	assert.True(t, ok)
	assert.Equal(t, KindS, k)

	_, ok = ParseKind("X")
	assert.False(t, ok)
}

func TestRandomSourceDeterministic(t *testing.T) {
	a := NewRandomSource(42, DefaultPalette())
	b := NewRandomSource(42, DefaultPalette())
	seen := make(map[Kind]bool)
	for range 200 {
		ta, tb := a.Next(), b.Next()
		require.Equal(t, ta.Kind, tb.Kind)
		seen[ta.Kind] = true
	}
	assert.Len(t, seen, KindCount, "200 draws should hit every kind")
}

func TestRandomShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 50 {
		tet := RandomShape(rng)
		assert.Equal(t, 4, tet.Shape.Count())
	}
}

func TestPaletteOverride(t *testing.T) {
	p := DefaultPalette()
	p[KindO] = core.ColorWhite
	src := NewRandomSource(3, p)
	for range 100 {
		tet := src.Next()
		if tet.Kind == KindO {
			assert.Equal(t, core.ColorWhite, tet.Color)
		} else {
			assert.Equal(t, DefaultPalette()[tet.Kind], tet.Color)
		}
	}
}

func TestSequenceSource(t *testing.T) {
	src := NewSequenceSource(KindI, KindZ)
	got := []Kind{src.Next().Kind, src.Next().Kind, src.Next().Kind}
	assert.Equal(t, []Kind{KindI, KindZ, KindI}, got)

	assert.Equal(t, KindO, NewSequenceSource().Next().Kind)
}

// connected reports whether the occupied cells of s form one 4-connected group.
func connected(s Shape) bool {
	type rc struct{ r, c int }
	var start *rc
	for r := range s {
		for c := range s[r] {
			if s[r][c] {
				start = &rc{r, c}
				break
			}
		}
		if start != nil {
			break
		}
	}
	if start == nil {
		return false
	}

	seen := map[rc]bool{*start: true}
	stack := []rc{*start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range []rc{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			n := rc{cur.r + d.r, cur.c + d.c}
			if n.r < 0 || n.r >= s.Rows() || n.c < 0 || n.c >= s.Cols() {
				continue
			}
			if s[n.r][n.c] && !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(seen) == s.Count()
}
