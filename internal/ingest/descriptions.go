package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// LoadDescriptions reads the name -> description side file. A missing
// file (or an empty path) yields an empty lookup.
func LoadDescriptions(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return map[string]string{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read descriptions %s: %w", path, err)
	}
	out := map[string]string{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode descriptions %s: %w", path, err)
	}
	return out, nil
}

// describe returns the trimmed description for name, or nil.
func describe(descriptions map[string]string, name string) *string {
	d := strings.TrimSpace(descriptions[name])
	if d == "" {
		return nil
	}
	return &d
}
