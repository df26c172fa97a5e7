package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Decode parses a catalog document from r and normalizes it.
func Decode(r io.Reader) (Catalog, error) {
	var raw Raw
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog document: %w", err)
	}
	return Normalize(raw), nil
}

// Load reads and normalizes the catalog document at path.
func Load(path string) (Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()
	return Decode(file)
}
