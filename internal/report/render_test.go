package report

import (
	"strings"
	"testing"
	"time"

	"github.com/Yug-Shah/cryptoPals/internal/model"
)

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{5, 5, 5}); got != "===" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	got := Sparkline([]float64{0, 10})
	if got[0] != ' ' || got[1] != '@' {
		t.Fatalf("expected extremes to map to extremes, got %q", got)
	}
}

func TestPrintableKey(t *testing.T) {
	got := PrintableKey([]byte{'I', 'C', 'E', 0x00, 0x7f, 0xff})
	if got != "ICE..." {
		t.Fatalf("expected %q, got %q", "ICE...", got)
	}
}

func TestRenderRecovery(t *testing.T) {
	var sb strings.Builder
	rec := model.Recovery{
		Key:       []byte("ICE"),
		Score:     42.5,
		Plaintext: []byte("does not appear here"),
	}
	if err := RenderRecovery(&sb, rec); err != nil {
		t.Fatalf("render recovery: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "Key size: 3\n") {
		t.Fatalf("missing key size in %q", out)
	}
	if !strings.Contains(out, "Key (hex): 494345\n") {
		t.Fatalf("missing hex key in %q", out)
	}
	if !strings.Contains(out, "Key (text): ICE\n") {
		t.Fatalf("missing text key in %q", out)
	}
	if strings.Contains(out, "does not appear here") {
		t.Fatalf("plaintext leaked into metadata block: %q", out)
	}
}

func TestRenderHitsEmpty(t *testing.T) {
	var sb strings.Builder
	if err := RenderHits(&sb, nil, 0); err != nil {
		t.Fatalf("render hits: %v", err)
	}
	if sb.String() != "No lines found.\n" {
		t.Fatalf("unexpected output %q", sb.String())
	}
}

func TestRenderHitsLimit(t *testing.T) {
	hits := []model.DetectHit{
		{Line: 4, Candidate: model.Candidate{Score: 3, Key: 'a', Plaintext: []byte("first")}},
		{Line: 0, Candidate: model.Candidate{Score: 2, Key: 'b', Plaintext: []byte("second")}},
		{Line: 2, Candidate: model.Candidate{Score: 1, Key: 'c', Plaintext: []byte("third")}},
	}
	var sb strings.Builder
	if err := RenderHits(&sb, hits, 2); err != nil {
		t.Fatalf("render hits: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Fatalf("expected top hits in %q", out)
	}
	if strings.Contains(out, "third") {
		t.Fatalf("expected limit to drop the third hit: %q", out)
	}
}

func TestRenderKeySizes(t *testing.T) {
	candidates := []model.KeySizeCandidate{
		{KeySize: 29, Distance: 1.2241},
		{KeySize: 3, Distance: 2.741},
	}
	var sb strings.Builder
	if err := RenderKeySizes(&sb, candidates, 0); err != nil {
		t.Fatalf("render key sizes: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "29") || !strings.Contains(lines[1], "1.2241") {
		t.Fatalf("expected best candidate first, got %q", lines[1])
	}
}

func TestRenderRunsAndSummary(t *testing.T) {
	runs := []model.RunSummary{
		{RunID: 1, EndedAt: time.Unix(0, 0).UTC(), Source: "ct.b64", KeySize: 29, KeyHex: "73616c74", Score: 10, DurationMs: 12},
		{RunID: 2, EndedAt: time.Unix(60, 0).UTC(), Source: "ct.b64", KeySize: 3, KeyHex: "494345", Score: 20, DurationMs: 8},
	}

	var sb strings.Builder
	if err := RenderRuns(&sb, runs); err != nil {
		t.Fatalf("render runs: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "Score trend: ") {
		t.Fatalf("missing score trend in %q", out)
	}
	if !strings.Contains(out, "73616c74") {
		t.Fatalf("missing key hex in %q", out)
	}

	sb.Reset()
	if err := RenderSummary(&sb, runs); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out = sb.String()
	if !strings.Contains(out, "Runs: 2\n") {
		t.Fatalf("missing run count in %q", out)
	}
	if !strings.Contains(out, "Avg Score: 15.00\n") {
		t.Fatalf("missing avg score in %q", out)
	}
	if !strings.Contains(out, "Best Score: 20.00\n") {
		t.Fatalf("missing best score in %q", out)
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var sb strings.Builder
	if err := RenderSummary(&sb, nil); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if sb.String() != "No runs found.\n" {
		t.Fatalf("unexpected output %q", sb.String())
	}
}
