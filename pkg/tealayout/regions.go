// Package tealayout computes named screen regions for a Bubbletea v2 +
// Lipgloss v2 app and builds the chrome layers (toolbar, footer, panel
// separator, background fills, modals) that sit in them.
package tealayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// LayoutBuilder cuts fixed strips off the edges of the terminal in call
// order. Whatever is left can be claimed with Remaining.
type LayoutBuilder struct {
	termW, termH int
	free         image.Rectangle
	regions      []Region
}

// NewLayoutBuilder creates a builder for the given terminal size.
// Negative sizes are treated as zero.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{
		termW: termW,
		termH: termH,
		free:  image.Rect(0, 0, max(termW, 0), max(termH, 0)),
	}
}

// TopFixed cuts height rows off the top of the free area.
func (b *LayoutBuilder) TopFixed(name string, height int) *LayoutBuilder {
	h := clampSpan(height, b.free.Dy())
	r := b.free
	r.Max.Y = r.Min.Y + h
	b.free.Min.Y += h
	return b.add(name, r)
}

// BottomFixed cuts height rows off the bottom of the free area.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	h := clampSpan(height, b.free.Dy())
	r := b.free
	r.Min.Y = r.Max.Y - h
	b.free.Max.Y -= h
	return b.add(name, r)
}

// RightFixed cuts width columns off the right of the free area. It spans
// only the rows still free, i.e. between earlier top and bottom strips.
func (b *LayoutBuilder) RightFixed(name string, width int) *LayoutBuilder {
	w := clampSpan(width, b.free.Dx())
	r := b.free
	r.Min.X = r.Max.X - w
	b.free.Max.X -= w
	return b.add(name, r)
}

// Remaining claims the free area left after all fixed strips.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	return b.add(name, b.free)
}

// Build returns the final Layout. Regions with no area are reported as the
// zero rectangle.
func (b *LayoutBuilder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	for _, r := range b.regions {
		if r.Rect.Empty() {
			r.Rect = image.Rectangle{}
		}
		l.Regions[r.Name] = r
	}
	return l
}

func (b *LayoutBuilder) add(name string, r image.Rectangle) *LayoutBuilder {
	b.regions = append(b.regions, Region{Name: name, Rect: r})
	return b
}

func clampSpan(n, avail int) int {
	return max(0, min(n, avail))
}
