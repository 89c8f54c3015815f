package xor

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	return b
}

func TestFixed(t *testing.T) {
	a := mustHex(t, "1c0111001f010100061a024b53535009181c")
	b := mustHex(t, "686974207468652062756c6c277320657965")
	want := mustHex(t, "746865206b696420646f6e277420706c6179")

	got, err := Fixed(a, b)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("expected %x, got %x", want, got)
	}
}

func TestFixedLengthMismatch(t *testing.T) {
	_, err := Fixed([]byte{1, 2, 3}, []byte{1, 2})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestFixedEmpty(t *testing.T) {
	got, err := Fixed(nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %x", got)
	}
}

func TestSingleByte(t *testing.T) {
	src := []byte("hello")
	dst := make([]byte, len(src))
	SingleByte(dst, src, 0x5a)
	SingleByte(dst, dst, 0x5a)
	if !bytes.Equal(dst, src) {
		t.Fatalf("expected round trip to %q, got %q", src, dst)
	}
}

func TestHammingDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"this is a test", "wokka wokka!!!", 37},
		{"this is a test", "this is a test", 0},
		{"", "", 0},
	}
	for _, c := range cases {
		got, err := HammingDistance([]byte(c.a), []byte(c.b))
		if err != nil {
			t.Fatalf("HammingDistance(%q, %q): expected no error, got %v", c.a, c.b, err)
		}
		if got != c.want {
			t.Errorf("HammingDistance(%q, %q): expected %d, got %d", c.a, c.b, c.want, got)
		}
	}
}

func TestHammingDistanceSymmetric(t *testing.T) {
	a := []byte("this is a test")
	b := []byte("wokka wokka!!!")
	ab, _ := HammingDistance(a, b)
	ba, _ := HammingDistance(b, a)
	if ab != ba {
		t.Fatalf("expected symmetric distance, got %d and %d", ab, ba)
	}
}

func TestHammingDistanceLengthMismatch(t *testing.T) {
	_, err := HammingDistance([]byte("abc"), []byte("ab"))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestRepeating(t *testing.T) {
	plain := []byte("Burning 'em, if you ain't quick and nimble\nI go crazy when I hear a cymbal")
	want := mustHex(t, "0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272a282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f")

	got := Repeating([]byte("ICE"), plain)
	if !bytes.Equal(got, want) {
		t.Fatalf("expected %x, got %x", want, got)
	}

	back := Repeating([]byte("ICE"), got)
	if !bytes.Equal(back, plain) {
		t.Fatalf("expected round trip to %q, got %q", plain, back)
	}
}

func TestCipherKeepsPosition(t *testing.T) {
	key := []byte("ICE")
	src := []byte("hello, repeating world")

	whole := Repeating(key, src)

	c := NewCipher(key)
	split := make([]byte, len(src))
	c.XORKeyStream(split[:7], src[:7])
	c.XORKeyStream(split[7:], src[7:])

	if !bytes.Equal(split, whole) {
		t.Fatalf("expected %x, got %x", whole, split)
	}
}

func TestCipherCopiesKey(t *testing.T) {
	key := []byte("ICE")
	c := NewCipher(key)
	key[0] = 'X'

	src := []byte("abcdef")
	got := make([]byte, len(src))
	c.XORKeyStream(got, src)

	want := Repeating([]byte("ICE"), src)
	if !bytes.Equal(got, want) {
		t.Fatalf("expected %x, got %x", want, got)
	}
}
