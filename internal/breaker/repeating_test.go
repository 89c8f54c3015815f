package breaker

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Yug-Shah/cryptoPals/internal/model"
	"github.com/Yug-Shah/cryptoPals/internal/xor"
)

var proseLines = []string{
	"the harbour master keeps a long ledger of every vessel that enters the bay and every crate that leaves the pier before dusk",
	"small grey birds gather on the sea wall each morning to watch the fishing boats warm their engines against the cold tide",
	"an old lighthouse keeper still climbs the spiral stairs at sunset although the lamp has turned itself for thirty years",
	"the chandler sells coiled rope and brass fittings and tins of tar to anyone who can pay before the shop shuts at noon",
	"storm glass hangs in the window of the harbour office and the clerks tap it twice whenever the wind swings to the north",
	"ferry passengers crowd the rail to count the seals that loaf on the green buoy at the mouth of the narrow channel",
	"every spring the yard hauls the pilot boat onto the slip to scrape her hull and paint her name in fresh white letters",
	"the night watchman walks the length of the quay with a slow lantern and greets the cook who bakes before first light",
	"charts of the sound hang behind glass in the reading room where retired captains argue about shoals that moved long ago",
	"when the fog lifts the whole fleet slips out within the hour and the town falls quiet until the gulls return at dusk",
}

// testProse joins the lines in three different rotations so the result is
// long without being periodic.
func testProse() []byte {
	var sb strings.Builder
	for _, start := range []int{0, 3, 7} {
		for i := range proseLines {
			sb.WriteString(proseLines[(start+i)%len(proseLines)])
			sb.WriteByte(' ')
		}
	}
	return []byte(sb.String())
}

func TestRepeatingKeyRoundTrip(t *testing.T) {
	plain := testProse()
	key := []byte("ICE")
	ct := xor.Repeating(key, plain)

	rec, err := New().RepeatingKey(len(key), ct)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.Equal(rec.Key, key) {
		t.Fatalf("expected key %q, got %q", key, rec.Key)
	}
	if !bytes.Equal(rec.Plaintext, plain) {
		t.Fatalf("expected recovered plaintext to match input")
	}
	text, err := rec.Text()
	if err != nil {
		t.Fatalf("expected valid text, got %v", err)
	}
	if text != string(plain) {
		t.Fatalf("expected text to match input")
	}
}

func TestRepeatingKeyInvalidText(t *testing.T) {
	plain := append(testProse(), 0xff, 0xfe)
	key := []byte("ICE")
	ct := xor.Repeating(key, plain)

	rec, err := New().RepeatingKey(len(key), ct)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.Equal(rec.Key, key) {
		t.Fatalf("expected key %q despite invalid text, got %q", key, rec.Key)
	}
	if _, err := rec.Text(); !errors.Is(err, model.ErrInvalidText) {
		t.Fatalf("expected ErrInvalidText, got %v", err)
	}
	if !bytes.Equal(rec.Plaintext, plain) {
		t.Fatalf("expected raw plaintext bytes to survive")
	}
}

func TestRepeatingKeySizeOne(t *testing.T) {
	plain := testProse()
	ct := make([]byte, len(plain))
	xor.SingleByte(ct, plain, 0x42)

	rec, err := New().RepeatingKey(1, ct)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cand := New().SingleByte(ct)
	if len(rec.Key) != 1 || rec.Key[0] != cand.Key {
		t.Fatalf("expected key %#x, got %v", cand.Key, rec.Key)
	}
	if !bytes.Equal(rec.Plaintext, cand.Plaintext) {
		t.Fatalf("expected single-byte break and size-one break to agree")
	}
}

func TestRepeatingKeyLargerThanInput(t *testing.T) {
	rec, err := New().RepeatingKey(5, []byte("abc"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rec.Key) != 5 {
		t.Fatalf("expected 5 key bytes, got %d", len(rec.Key))
	}
	if rec.Key[3] != 0 || rec.Key[4] != 0 {
		t.Fatalf("expected unreached key positions to stay zero, got %v", rec.Key)
	}
	if len(rec.Plaintext) != 3 {
		t.Fatalf("expected 3 plaintext bytes, got %d", len(rec.Plaintext))
	}
}

func TestRepeatingKeyInvalidSize(t *testing.T) {
	if _, err := New().RepeatingKey(0, []byte("abc")); err == nil {
		t.Fatalf("expected error for key size 0")
	}
}

func TestBreakRecoversKeyAndPlaintext(t *testing.T) {
	plain := testProse()
	key := []byte("salt spray over the iron rail")
	ct := xor.Repeating(key, plain)

	size, err := New().KeySize(ct)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if size != len(key) {
		t.Fatalf("expected estimated size %d, got %d", len(key), size)
	}

	rec, err := New().Break(ct)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.Equal(rec.Key, key) {
		t.Fatalf("expected key %q, got %q", key, rec.Key)
	}
	if !bytes.Equal(rec.Plaintext, plain) {
		t.Fatalf("expected recovered plaintext to match input")
	}
}

func TestBreakTooShort(t *testing.T) {
	if _, err := New().Break([]byte("ab")); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}
