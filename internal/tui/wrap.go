// Package tui provides the Bubble Tea key recovery inspector.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// controlGlyph stands in for bytes outside printable ASCII.
const controlGlyph = '·'

// styledByte is one plaintext byte prepared for display.
type styledByte struct {
	s       string
	width   int
	isSpace bool
}

func buildStyledBytes(buf []byte) []styledByte {
	out := make([]styledByte, 0, len(buf))
	for _, b := range buf {
		displayed := rune(b)
		style := textStyle
		if b < 0x20 || b > 0x7e {
			displayed = controlGlyph
			style = controlStyle
		}
		out = append(out, styledByte{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: b == ' ',
		})
	}
	return out
}

// renderPlaintext wraps recovered plaintext to width. Real line breaks
// are kept and bytes outside printable ASCII show as a marked glyph.
func renderPlaintext(buf []byte, width int) string {
	lines := strings.Split(string(buf), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapStyledBytes(buildStyledBytes([]byte(line)), width))
	}
	return strings.Join(out, "\n")
}

func renderStyledBytes(bytes []styledByte) string {
	var b strings.Builder
	for _, item := range bytes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledBytes(bytes []styledByte, width int) string {
	if width <= 0 {
		return renderStyledBytes(bytes)
	}
	var out strings.Builder
	line := make([]styledByte, 0, len(bytes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(bytes); {
		item := bytes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledBytes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledByte{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledBytes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledBytes(line))
	return out.String()
}

func lineWidthOf(line []styledByte) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledByte) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
