package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/Yug-Shah/cryptoPals/internal/model"
)

const (
	profileGlyphs       = "▁▂▃▄▅▆▇█"
	minProfileWidth     = 10
	terminalWidthBackup = 80
	colorGreen          = "\x1b[32m"
	colorReset          = "\x1b[0m"
)

// RenderDistanceProfile prints one bar per key size in ascending size
// order, scaled between the observed minimum and maximum distance. Lower
// bars are better. The best candidate is marked beneath its bar and
// colored when the writer is a color-capable terminal.
func RenderDistanceProfile(w io.Writer, candidates []model.KeySizeCandidate) error {
	if len(candidates) == 0 {
		return nil
	}

	ordered := make([]model.KeySizeCandidate, len(candidates))
	copy(ordered, candidates)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].KeySize < ordered[j].KeySize
	})

	minVal, maxVal := ordered[0].Distance, ordered[0].Distance
	best := 0
	for i, c := range ordered {
		if c.Distance < minVal {
			minVal = c.Distance
		}
		if c.Distance > maxVal {
			maxVal = c.Distance
		}
		if c.Distance < ordered[best].Distance {
			best = i
		}
	}

	if _, err := fmt.Fprintln(w, "Distance by key size (lower is better)"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "min=%.4f max=%.4f best=%d\n", minVal, maxVal, ordered[best].KeySize); err != nil {
		return err
	}

	useColor := shouldUseColor(w)
	width := profileWidth(terminalWidth())
	for start := 0; start < len(ordered); start += width {
		end := start + width
		if end > len(ordered) {
			end = len(ordered)
		}
		segment := ordered[start:end]
		prefix := fmt.Sprintf("%2d..%-2d ", segment[0].KeySize, segment[len(segment)-1].KeySize)

		var bars strings.Builder
		bars.WriteString(prefix)
		for i, c := range segment {
			glyph := glyphFor(c.Distance, minVal, maxVal)
			if useColor && start+i == best {
				bars.WriteString(colorGreen)
				bars.WriteRune(glyph)
				bars.WriteString(colorReset)
			} else {
				bars.WriteRune(glyph)
			}
		}
		if _, err := fmt.Fprintln(w, bars.String()); err != nil {
			return err
		}

		if best >= start && best < end {
			marker := strings.Repeat(" ", len(prefix)+best-start) + "^"
			if useColor {
				marker = strings.Repeat(" ", len(prefix)+best-start) + colorGreen + "^" + colorReset
			}
			if _, err := fmt.Fprintln(w, marker); err != nil {
				return err
			}
		}
	}
	return nil
}

func glyphFor(v, minVal, maxVal float64) rune {
	glyphs := []rune(profileGlyphs)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return glyphs[len(glyphs)/2]
	}
	pos := (v - minVal) / (maxVal - minVal)
	idx := int(math.Round(pos * float64(len(glyphs)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(glyphs) {
		idx = len(glyphs) - 1
	}
	return glyphs[idx]
}

func profileWidth(totalWidth int) int {
	width := totalWidth - len(" 2..40 ")
	if width < minProfileWidth {
		width = minProfileWidth
	}
	return width
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
