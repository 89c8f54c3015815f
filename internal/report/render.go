package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Yug-Shah/cryptoPals/internal/codec"
	"github.com/Yug-Shah/cryptoPals/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// PrintableKey renders key bytes for display, substituting dots for
// anything outside printable ASCII.
func PrintableKey(key []byte) string {
	out := make([]byte, len(key))
	for i, b := range key {
		if b >= 0x20 && b <= 0x7e {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// preview renders up to max display bytes of buf, dot-substituted.
func preview(buf []byte, max int) string {
	s := PrintableKey(buf)
	if len(s) > max {
		return s[:max-1] + "~"
	}
	return s
}

// RenderRecovery prints the recovered key block for a repeating-key run.
// The plaintext itself is left to the caller so it can go to a pipe
// unadorned.
func RenderRecovery(w io.Writer, rec model.Recovery) error {
	if _, err := fmt.Fprintf(w, "Key size: %d\n", len(rec.Key)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Key (hex): %s\n", codec.EncodeHex(rec.Key)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Key (text): %s\n", PrintableKey(rec.Key)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Score: %.2f\n", rec.Score); err != nil {
		return err
	}
	return nil
}

// RenderCandidate prints a single-byte break result.
func RenderCandidate(w io.Writer, cand model.Candidate) error {
	if _, err := fmt.Fprintf(w, "Key: %#02x %q\n", cand.Key, rune(cand.Key)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Score: %.2f\n", cand.Score); err != nil {
		return err
	}
	return nil
}

// RenderHits prints a detection table, best line first.
func RenderHits(w io.Writer, hits []model.DetectHit, limit int) error {
	if len(hits) == 0 {
		_, err := fmt.Fprintln(w, "No lines found.")
		return err
	}
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	headers := []string{"Line", "Score", "Key", "Preview"}
	rows := make([][]string, 0, len(hits))
	for _, h := range hits {
		rows = append(rows, []string{
			fmt.Sprintf("%d", h.Line+1),
			fmt.Sprintf("%.2f", h.Candidate.Score),
			fmt.Sprintf("%#02x", h.Candidate.Key),
			preview(h.Candidate.Plaintext, 40),
		})
	}
	rightAlign := map[int]bool{0: true, 1: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderKeySizes prints the key size ranking, best first.
func RenderKeySizes(w io.Writer, candidates []model.KeySizeCandidate, limit int) error {
	if len(candidates) == 0 {
		_, err := fmt.Fprintln(w, "No key size candidates.")
		return err
	}
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	headers := []string{"Rank", "Key Size", "Distance"}
	rows := make([][]string, 0, len(candidates))
	for i, c := range candidates {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", c.KeySize),
			fmt.Sprintf("%.4f", c.Distance),
		})
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderRuns prints stored runs oldest first, with a score trend line.
func RenderRuns(w io.Writer, runs []model.RunSummary) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}

	headers := []string{"ID", "When", "Source", "Size", "Key", "Score", "ms"}
	rows := make([][]string, 0, len(runs))
	scores := make([]float64, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.RunID),
			r.EndedAt.Format("2006-01-02 15:04"),
			r.Source,
			fmt.Sprintf("%d", r.KeySize),
			truncate(r.KeyHex, 16),
			fmt.Sprintf("%.2f", r.Score),
			fmt.Sprintf("%d", r.DurationMs),
		})
		scores = append(scores, r.Score)
	}
	rightAlign := map[int]bool{0: true, 3: true, 5: true, 6: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nScore trend: %s\n", Sparkline(scores)); err != nil {
		return err
	}
	return nil
}

// RenderSummary prints aggregate numbers over the stored runs.
func RenderSummary(w io.Writer, runs []model.RunSummary) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	var totalScore, totalMs float64
	bestScore := runs[0].Score
	for _, r := range runs {
		totalScore += r.Score
		totalMs += float64(r.DurationMs)
		if r.Score > bestScore {
			bestScore = r.Score
		}
	}
	count := float64(len(runs))
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Runs: %d\n", len(runs)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Score: %.2f\n", totalScore/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best Score: %.2f\n", bestScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Duration: %.0f ms\n", totalMs/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}
