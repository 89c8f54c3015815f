// Package english provides the letter frequency model used to score
// candidate plaintexts.
package english

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	tableSize = 27
	spaceSlot = 26
)

// Table holds relative frequencies for the letters a-z plus the space
// character. Slots 0..25 map to 'a'..'z', the last slot to ' '.
type Table [tableSize]float64

// DefaultTable is the reference English distribution. Space carries the
// largest weight, which is what separates prose from letter soup.
var DefaultTable = Table{
	0.08167, // a
	0.01492, // b
	0.02782, // c
	0.04253, // d
	0.12702, // e
	0.02228, // f
	0.02015, // g
	0.06094, // h
	0.06966, // i
	0.00153, // j
	0.00772, // k
	0.04025, // l
	0.02406, // m
	0.06749, // n
	0.07507, // o
	0.01929, // p
	0.00095, // q
	0.05987, // r
	0.06327, // s
	0.09056, // t
	0.02758, // u
	0.00978, // v
	0.02360, // w
	0.00150, // x
	0.01974, // y
	0.00074, // z
	0.19181, // space
}

// slot maps a byte to its table index, or -1 for bytes outside the model.
func slot(b byte) int {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b - 'a')
	case b >= 'A' && b <= 'Z':
		return int(b - 'A')
	case b == ' ':
		return spaceSlot
	}
	return -1
}

// ScoreBytes sums the weight of every modeled byte in buf. Letters are
// case-folded; everything else contributes nothing, so arbitrary binary
// noise is safe to score. The sum is not normalized by length.
func (t Table) ScoreBytes(buf []byte) float64 {
	var total float64
	for _, b := range buf {
		if i := slot(b); i >= 0 {
			total += t[i]
		}
	}
	return total
}

// Score scores text against the table.
func (t Table) Score(s string) float64 {
	return t.ScoreBytes([]byte(s))
}

// ScoreBytes scores raw bytes against the default table.
func ScoreBytes(buf []byte) float64 {
	return DefaultTable.ScoreBytes(buf)
}

// Score scores text against the default table.
func Score(s string) float64 {
	return DefaultTable.Score(s)
}

// TableFromCorpus derives a table from sample text by relative frequency
// of its letters and spaces. Bytes outside the model are skipped.
func TableFromCorpus(r io.Reader) (Table, error) {
	var counts [tableSize]int64
	var total int64

	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("failed to read corpus: %w", err)
		}
		if i := slot(b); i >= 0 {
			counts[i]++
			total++
		}
	}
	if total == 0 {
		return Table{}, fmt.Errorf("corpus contains no letters or spaces")
	}

	var t Table
	for i, c := range counts {
		t[i] = float64(c) / float64(total)
	}
	return t, nil
}
