// Package codec converts between ciphertext encodings and raw bytes.
package codec

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// EncodeHex renders raw bytes as lowercase hex.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex decodes a hex string into raw bytes.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex: %w", err)
	}
	return b, nil
}

// EncodeBase64 renders raw bytes as standard base64.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 decodes a standard base64 string into raw bytes.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	return b, nil
}

// ReadBase64 reads all of r, strips line breaks, and decodes the rest as
// base64. Encoded payloads are usually wrapped to some line width, so the
// whole stream counts as one value.
func ReadBase64(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return DecodeBase64(stripLineBreaks(string(data)))
}

// ReadHex reads all of r, strips line breaks, and decodes the rest as one
// hex value.
func ReadHex(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return DecodeHex(stripLineBreaks(string(data)))
}

// ReadBase64File decodes a base64 file, ignoring line wrapping.
func ReadBase64File(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return ReadBase64(file)
}

// ReadHexFile decodes a hex file, ignoring line wrapping.
func ReadHexFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return ReadHex(file)
}

// ReadHexLines reads one hex value per line from r, skipping blank
// lines.
func ReadHexLines(r io.Reader) ([][]byte, error) {
	var lines [][]byte
	lineno := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		b, err := DecodeHex(line)
		if err != nil {
			return nil, fmt.Errorf("failed to decode line %d: %w", lineno, err)
		}
		lines = append(lines, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no hex lines found")
	}
	return lines, nil
}

// ReadHexLinesFile reads one hex value per line from a file.
func ReadHexLinesFile(path string) ([][]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return ReadHexLines(file)
}

func stripLineBreaks(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
