// Package blocks implements the falling-block stacking game: a fixed playfield
// of settled cells, seven canonical pieces, collision and rotation rules, and
// an engine that serializes gravity ticks and player commands against a
// single authoritative state.
//
// The engine itself is synchronous. Hosts that receive stimuli from several
// goroutines use Runner, which owns the engine and the gravity timer.
package blocks

import (
	"math/rand"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Kind identifies one of the seven canonical pieces.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of canonical piece kinds.
const KindCount = 7

var kindNames = [KindCount]string{"I", "J", "L", "O", "S", "T", "Z"}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// ParseKind looks up a kind by its letter.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Shape is a rectangular occupancy grid, indexed [row][col].
type Shape [][]bool

// Rows returns the height of the bounding box.
func (s Shape) Rows() int {
	return len(s)
}

// Cols returns the width of the bounding box.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for _, row := range s {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two shapes have identical dimensions and occupancy.
func (s Shape) Equal(o Shape) bool {
	if s.Rows() != o.Rows() || s.Cols() != o.Cols() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for r := range s {
		out[r] = append([]bool(nil), s[r]...)
	}
	return out
}

// leadingEmptyRows counts rows above the first occupied row.
func (s Shape) leadingEmptyRows() int {
	for r, row := range s {
		for _, v := range row {
			if v {
				return r
			}
		}
	}
	return len(s)
}

// String renders the shape as rows of '#' and '.', for test failures.
func (s Shape) String() string {
	b := make([]byte, 0, s.Rows()*(s.Cols()+1))
	for r, row := range s {
		if r > 0 {
			b = append(b, '/')
		}
		for _, v := range row {
			if v {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
	}
	return string(b)
}

// parseShape builds a shape from rows of '#' and '.'.
func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for r, row := range rows {
		s[r] = make([]bool, len(row))
		for c, ch := range row {
			s[r][c] = ch == '#'
		}
	}
	return s
}

// Tetromino is an immutable piece definition: a grid plus its display color.
type Tetromino struct {
	Kind  Kind
	Shape Shape
	Color core.Color
}

var canonicalShapes = [KindCount]Shape{
	KindI: parseShape("####"),
	KindJ: parseShape("#..", "###"),
	KindL: parseShape("..#", "###"),
	KindO: parseShape("##", "##"),
	KindS: parseShape(".##", "##."),
	KindT: parseShape(".#.", "###"),
	KindZ: parseShape("##.", ".##"),
}

// Palette assigns a display color to each kind.
type Palette [KindCount]core.Color

// DefaultPalette returns the classic piece colors.
func DefaultPalette() Palette {
	return Palette{
		KindI: core.ColorCyan,
		KindJ: core.ColorBlue,
		KindL: core.ColorOrange,
		KindO: core.ColorYellow,
		KindS: core.ColorGreen,
		KindT: core.ColorMagenta,
		KindZ: core.ColorRed,
	}
}

// Canonical returns a copy of the canonical definition of kind in the default palette.
func Canonical(kind Kind) Tetromino {
	return DefaultPalette().Tetromino(kind)
}

// Tetromino returns a copy of the canonical definition of kind colored by p.
func (p Palette) Tetromino(kind Kind) Tetromino {
	return Tetromino{
		Kind:  kind,
		Shape: canonicalShapes[kind].Clone(),
		Color: p[kind],
	}
}

// Catalog returns all seven canonical pieces in kind order.
func Catalog() []Tetromino {
	out := make([]Tetromino, KindCount)
	for k := range KindCount {
		out[k] = Canonical(Kind(k))
	}
	return out
}

// ShapeSource supplies the next piece to spawn. Grids with empty leading rows
// spawn partly above the top; such a piece that comes to rest before all its
// cells are visible ends the game.
type ShapeSource interface {
	Next() Tetromino
}

// RandomShape picks one of the seven kinds uniformly.
func RandomShape(rng *rand.Rand) Tetromino {
	return Canonical(Kind(rng.Intn(KindCount)))
}

// RandomSource is a seeded uniform ShapeSource.
// The same seed always yields the same sequence.
type RandomSource struct {
	rng     *rand.Rand
	palette Palette
}

// NewRandomSource creates a source seeded with seed using the given palette.
func NewRandomSource(seed int64, palette Palette) *RandomSource {
	return &RandomSource{
		rng:     rand.New(rand.NewSource(seed)),
		palette: palette,
	}
}

// Next returns a uniformly selected canonical piece.
func (s *RandomSource) Next() Tetromino {
	return s.palette.Tetromino(Kind(s.rng.Intn(KindCount)))
}

// SequenceSource replays a fixed list of kinds in order, wrapping around.
// It is useful for scripted scenarios and tests.
type SequenceSource struct {
	kinds   []Kind
	next    int
	palette Palette
}

// NewSequenceSource creates a source that cycles through kinds.
// An empty list yields O pieces.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	if len(kinds) == 0 {
		kinds = []Kind{KindO}
	}
	return &SequenceSource{kinds: kinds, palette: DefaultPalette()}
}

// Next returns the next kind in the sequence.
func (s *SequenceSource) Next() Tetromino {
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return s.palette.Tetromino(k)
}
