package codec

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHexToBase64(t *testing.T) {
	raw, err := DecodeHex("49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "SSdtIGtpbGxpbmcgeW91ciBicmFpbiBsaWtlIGEgcG9pc29ub3VzIG11c2hyb29t"
	if got := EncodeBase64(raw); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDecodeHexInvalid(t *testing.T) {
	if _, err := DecodeHex("zz"); err == nil {
		t.Fatalf("expected error for invalid hex")
	}
	if _, err := DecodeHex("abc"); err == nil {
		t.Fatalf("expected error for odd-length hex")
	}
}

func TestDecodeBase64Invalid(t *testing.T) {
	if _, err := DecodeBase64("!not-base64!"); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
}

func TestHexRoundTrip(t *testing.T) {
	raw := []byte{0x00, 0x1b, 0xff, 0x42}
	got, err := DecodeHex(EncodeHex(raw))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("expected %x, got %x", raw, got)
	}
}

func TestReadBase64StripsWrapping(t *testing.T) {
	payload := []byte("wrapped payloads decode as one value")
	encoded := EncodeBase64(payload)
	wrapped := encoded[:10] + "\n" + encoded[10:20] + "\r\n" + encoded[20:] + "\n"

	got, err := ReadBase64(strings.NewReader(wrapped))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("expected %q, got %q", payload, got)
	}
}

func TestReadHexFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ct.hex")
	if err := os.WriteFile(path, []byte("1c01\n1100\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, err := ReadHexFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.Equal(got, []byte{0x1c, 0x01, 0x11, 0x00}) {
		t.Fatalf("expected joined decode, got %x", got)
	}
}

func TestReadHexLinesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.hex")
	if err := os.WriteFile(path, []byte("0a0b\n\n  0c0d  \n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	lines, err := ReadHexLinesFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !bytes.Equal(lines[0], []byte{0x0a, 0x0b}) || !bytes.Equal(lines[1], []byte{0x0c, 0x0d}) {
		t.Fatalf("unexpected lines %x", lines)
	}
}

func TestReadHexLinesBadLine(t *testing.T) {
	input := strings.NewReader("0a0b\nnope\n")
	if _, err := ReadHexLines(input); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 decode error, got %v", err)
	}
}

func TestReadHexLinesEmpty(t *testing.T) {
	if _, err := ReadHexLines(strings.NewReader("\n\n")); err == nil {
		t.Fatalf("expected error for empty input")
	}
}
