package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string. The caller provides
// a mapping from StyleKey to lipgloss.Style; cells whose key has no entry
// are written unstyled.
//
// Consecutive cells with the same StyleKey are merged into runs and
// rendered with a single Style.Render() call per run.
//
// Rows are joined with "\n". An empty buffer (W==0 or H==0) returns "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	var run strings.Builder
	for y, row := range b.Cells {
		var sb strings.Builder
		runStyle := row[0].Style
		for x := 0; x <= b.W; x++ {
			if x == b.W || row[x].Style != runStyle {
				flush(&sb, run.String(), runStyle, styles)
				run.Reset()
				if x == b.W {
					break
				}
				runStyle = row[x].Style
			}
			run.WriteRune(row[x].Rune())
		}
		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}

// String renders the buffer without any styling.
func (b *Buffer) String() string {
	lines := make([]string, b.H)
	for y, row := range b.Cells {
		rs := make([]rune, len(row))
		for x, c := range row {
			rs[x] = c.Rune()
		}
		lines[y] = string(rs)
	}
	return strings.Join(lines, "\n")
}

func flush(sb *strings.Builder, chunk string, key StyleKey, styles map[StyleKey]lipgloss.Style) {
	if s, ok := styles[key]; ok {
		sb.WriteString(s.Render(chunk))
		return
	}
	sb.WriteString(chunk)
}
