package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"linkdeck/internal/domain"
)

// Loader handles loading and parsing of the optional seed file
type Loader struct {
	filePath string
}

// NewLoader creates a seed file loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the seed file, dropping entries that fail the
// link input validation.
func (l *Loader) Load() ([]Entry, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	entries := make([]Entry, 0, len(file.Links))
	for _, entry := range file.Links {
		title, url, err := domain.NormalizeLinkInput(entry.Title, entry.URL)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Title: title, URL: url})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid links found in seed file")
	}

	return entries, nil
}
