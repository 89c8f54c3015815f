// Package breaker recovers XOR keys from ciphertext alone, using letter
// frequency scoring to tell plausible plaintext from noise.
package breaker

import (
	"errors"

	"github.com/Yug-Shah/cryptoPals/internal/english"
)

// ErrInsufficientData reports that the ciphertext is too short for the
// requested analysis.
var ErrInsufficientData = errors.New("not enough ciphertext")

// Breaker runs key recovery with a fixed scoring table.
type Breaker struct {
	table english.Table
}

// New returns a Breaker scoring with the default English table.
func New() *Breaker {
	return &Breaker{table: english.DefaultTable}
}

// NewWithTable returns a Breaker scoring with a custom table, such as one
// calibrated from a corpus.
func NewWithTable(table english.Table) *Breaker {
	return &Breaker{table: table}
}
