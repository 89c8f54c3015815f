package english

import (
	"strings"
	"testing"
)

func TestScoreKnownWeights(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"a", DefaultTable[0]},
		{"A", DefaultTable[0]},
		{" ", DefaultTable[spaceSlot]},
		{"ab", DefaultTable[0] + DefaultTable[1]},
		{"", 0},
		{"?!#\x00\xff", 0},
	}
	for _, c := range cases {
		if got := Score(c.text); got != c.want {
			t.Errorf("Score(%q): expected %v, got %v", c.text, c.want, got)
		}
	}
}

func TestScoreCaseFolds(t *testing.T) {
	if Score("Hello World") != Score("hello world") {
		t.Fatalf("expected case-insensitive scoring")
	}
}

func TestScoreIgnoresNoise(t *testing.T) {
	clean := "the quick brown fox"
	noisy := "the\x01 quick\xfe brown\x7f fox"
	if Score(clean) != Score(noisy) {
		t.Fatalf("expected unmodeled bytes to contribute nothing")
	}
}

func TestScorePrefersEnglish(t *testing.T) {
	english := "Now that the party is jumping"
	garbage := ";c\x1b*{\x04%\x1b\x7f{5\x02\x16"
	if Score(english) <= Score(garbage) {
		t.Fatalf("expected english text to outscore garbage, got %v vs %v",
			Score(english), Score(garbage))
	}
}

func TestScoreGrowsWithLength(t *testing.T) {
	if Score("go go go") <= Score("go") {
		t.Fatalf("expected unnormalized score to grow with length")
	}
}

func TestScoreBytesMatchesScore(t *testing.T) {
	s := "Cooking MC's like a pound of bacon"
	if ScoreBytes([]byte(s)) != Score(s) {
		t.Fatalf("expected byte and string scoring to agree")
	}
}

func TestTableFromCorpus(t *testing.T) {
	table, err := TableFromCorpus(strings.NewReader("aab "))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if table[0] != 0.5 {
		t.Errorf("expected weight 0.5 for a, got %v", table[0])
	}
	if table[1] != 0.25 {
		t.Errorf("expected weight 0.25 for b, got %v", table[1])
	}
	if table[spaceSlot] != 0.25 {
		t.Errorf("expected weight 0.25 for space, got %v", table[spaceSlot])
	}
	if table[2] != 0 {
		t.Errorf("expected weight 0 for c, got %v", table[2])
	}
}

func TestTableFromCorpusEmpty(t *testing.T) {
	if _, err := TableFromCorpus(strings.NewReader("123...\n")); err == nil {
		t.Fatalf("expected error for corpus without letters or spaces")
	}
}
