// Package cellbuf provides a 2D character buffer with per-cell styling
// and efficient Lipgloss-based rendering.
//
// Each cell holds either a rune or a braille dot mask, plus a StyleKey.
// Dots give curves 2x4 sub-cell resolution. At render time the caller
// provides a map[StyleKey]lipgloss.Style, so the buffer is decoupled from
// specific color schemes.
//
// Limitation: all runes are assumed to be single-width.
package cellbuf

// StyleKey identifies a visual style. The caller defines the mapping
// from StyleKey to lipgloss.Style at render time.
type StyleKey int

// Sub-cell resolution of the braille dot grid.
const (
	DotsX = 2
	DotsY = 4
)

// brailleBase is U+2800, the empty braille pattern.
const brailleBase = 0x2800

// dotBits maps (row, col) inside a cell to its braille bit.
var dotBits = [DotsY][DotsX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Cell is a single character in the buffer with an associated style.
// A non-zero Dots mask takes precedence over Ch.
type Cell struct {
	Ch    rune
	Dots  uint8
	Style StyleKey
}

// Rune returns the character the cell renders as.
func (c Cell) Rune() rune {
	if c.Dots != 0 {
		return brailleBase + rune(c.Dots)
	}
	return c.Ch
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New creates a Buffer of the given size, filled with spaces in the
// given default style.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(defaultStyle)
	return b
}

// InBounds reports whether cell (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes a single character at (x, y), clearing any dots in that
// cell. Out-of-bounds writes are silently ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes a string starting at (x, y), one cell per rune.
// Characters that fall outside the buffer are skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// DotSize returns the buffer size in braille dots.
func (b *Buffer) DotSize() (w, h int) {
	return b.W * DotsX, b.H * DotsY
}

// SetDot lights the braille dot at dot coordinate (px, py). Cell (x, y)
// covers dots [x*DotsX, (x+1)*DotsX) × [y*DotsY, (y+1)*DotsY). Dots in the
// same cell accumulate; the cell takes the style of the last dot. A rune
// previously set in the cell is replaced. Out-of-bounds dots are ignored.
func (b *Buffer) SetDot(px, py int, style StyleKey) {
	x, y := floorDiv(px, DotsX), floorDiv(py, DotsY)
	if !b.InBounds(x, y) {
		return
	}
	c := &b.Cells[y][x]
	c.Dots |= dotBits[py-y*DotsY][px-x*DotsX]
	c.Style = style
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}

// floorDiv divides rounding toward negative infinity, so dots left of or
// above the origin map to negative cells.
func floorDiv(a, d int) int {
	q := a / d
	if a%d != 0 && a < 0 {
		q--
	}
	return q
}
