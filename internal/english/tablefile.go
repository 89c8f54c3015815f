package english

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

type tableFile struct {
	Weights map[string]float64 `toml:"weights"`
}

// LoadTable reads a table from a TOML weights file, as written by
// WriteTable or the calibrate command. Letters missing from the file keep
// weight zero.
func LoadTable(path string) (Table, error) {
	var file tableFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return Table{}, fmt.Errorf("failed to decode table file: %w", err)
	}
	if len(file.Weights) == 0 {
		return Table{}, fmt.Errorf("table file contains no weights")
	}

	var t Table
	for name, weight := range file.Weights {
		i, err := slotForName(name)
		if err != nil {
			return Table{}, err
		}
		t[i] = weight
	}
	return t, nil
}

// WriteTable writes t as a TOML weights file, letters first, space last.
func WriteTable(w io.Writer, t Table) error {
	if _, err := fmt.Fprintln(w, "[weights]"); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	for i := 0; i < spaceSlot; i++ {
		if _, err := fmt.Fprintf(w, "%c = %.5f\n", rune('a'+i), t[i]); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "space = %.5f\n", t[spaceSlot]); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

func slotForName(name string) (int, error) {
	if name == "space" {
		return spaceSlot, nil
	}
	if len(name) == 1 {
		if i := slot(name[0]); i >= 0 && i != spaceSlot {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown weight name %q", name)
}
