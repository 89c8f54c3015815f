// Package model defines shared data structures.
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrInvalidText reports that recovered bytes do not decode as UTF-8 text.
var ErrInvalidText = errors.New("recovered plaintext is not valid text")

// Candidate is one decryption attempt under a single-byte key.
type Candidate struct {
	Score     float64
	Key       byte
	Plaintext []byte
}

// Text renders the plaintext with invalid byte sequences substituted.
// Scoring and ranking always run on the raw bytes; this is display only.
func (c Candidate) Text() string {
	return strings.ToValidUTF8(string(c.Plaintext), "�")
}

// KeySizeCandidate scores one key length by normalized Hamming distance.
type KeySizeCandidate struct {
	KeySize  int
	Distance float64
}

// Recovery is the outcome of breaking a repeating-key ciphertext.
type Recovery struct {
	Key       []byte
	Score     float64
	Plaintext []byte
}

// Text returns the plaintext as validated text. It fails with
// ErrInvalidText when the recovered bytes are not UTF-8; the key and the
// raw bytes remain usable.
func (r Recovery) Text() (string, error) {
	if !utf8.Valid(r.Plaintext) {
		return "", ErrInvalidText
	}
	return string(r.Plaintext), nil
}

// DetectHit ties a candidate to the input line it was recovered from.
type DetectHit struct {
	Line      int
	Candidate Candidate
}

// BreakConfig defines analysis settings for the break command.
type BreakConfig struct {
	MinKeySize int
	MaxKeySize int
	Try        int
	KeySize    int
	TablePath  string
}

// HistoryConfig defines filters for history output.
type HistoryConfig struct {
	Source string
	Since  *time.Time
	Last   int
}

// RunRecord captures a completed breaking run.
type RunRecord struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Source     string
	InputBytes int
	KeySize    int
	KeyHex     string
	Score      float64
	Preview    string
	DurationMs int64
}

// RunSummary summarizes a stored run for reporting.
type RunSummary struct {
	RunID      int64
	EndedAt    time.Time
	Source     string
	KeySize    int
	KeyHex     string
	Score      float64
	Preview    string
	DurationMs int64
}
