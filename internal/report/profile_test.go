package report

import (
	"strings"
	"testing"

	"github.com/Yug-Shah/cryptoPals/internal/model"
)

func TestRenderDistanceProfile(t *testing.T) {
	candidates := []model.KeySizeCandidate{
		{KeySize: 4, Distance: 3.0},
		{KeySize: 2, Distance: 3.0},
		{KeySize: 3, Distance: 1.0},
	}

	var sb strings.Builder
	if err := RenderDistanceProfile(&sb, candidates); err != nil {
		t.Fatalf("render profile: %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	expected := []string{
		"Distance by key size (lower is better)",
		"min=1.0000 max=3.0000 best=3",
		" 2..4  █▁█",
		"        ^",
	}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %q", len(expected), len(lines), lines)
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Fatalf("line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}

func TestRenderDistanceProfileNoColorForPlainWriter(t *testing.T) {
	var sb strings.Builder
	candidates := []model.KeySizeCandidate{
		{KeySize: 2, Distance: 1.0},
		{KeySize: 3, Distance: 2.0},
	}
	if err := RenderDistanceProfile(&sb, candidates); err != nil {
		t.Fatalf("render profile: %v", err)
	}
	if strings.Contains(sb.String(), "\x1b[") {
		t.Fatalf("expected no escape codes for a plain writer, got %q", sb.String())
	}
}

func TestRenderDistanceProfileEmpty(t *testing.T) {
	var sb strings.Builder
	if err := RenderDistanceProfile(&sb, nil); err != nil {
		t.Fatalf("render profile: %v", err)
	}
	if sb.String() != "" {
		t.Fatalf("expected no output, got %q", sb.String())
	}
}

func TestGlyphFor(t *testing.T) {
	if got := glyphFor(5, 5, 5); got != '▅' {
		t.Fatalf("expected middle glyph for flat range, got %q", got)
	}
	if got := glyphFor(1, 1, 3); got != '▁' {
		t.Fatalf("expected lowest glyph at minimum, got %q", got)
	}
	if got := glyphFor(3, 1, 3); got != '█' {
		t.Fatalf("expected highest glyph at maximum, got %q", got)
	}
}

func TestProfileWidth(t *testing.T) {
	if got := profileWidth(80); got != 73 {
		t.Fatalf("expected width 73 for an 80 column terminal, got %d", got)
	}
	if got := profileWidth(12); got != minProfileWidth {
		t.Fatalf("expected floor width %d, got %d", minProfileWidth, got)
	}
}
