// Package catalog holds the character catalog and persona prompt table.
// Both are read-only after load.
package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Catalog maps category names to character names and characters to their
// persona instructions.
type Catalog struct {
	categories map[string][]string
}

// defaultCharacters is the built-in catalog, used when no override file is
// configured or the override cannot be used.
var defaultCharacters = map[string][]string{
	"Historical": {"Cleopatra", "Leonardo da Vinci", "Napoleon"},
	"Fictional":  {"Sherlock Holmes", "Harry Potter", "Batman"},
	"Heroes":     {"Superman", "Wonder Woman", "Spider-Man"},
	"Villains":   {"Joker", "Thanos", "Darth Vader"},
	"Global Icons": {
		"Michael Jackson", "Elon Musk", "Steve Jobs", "Albert Einstein",
		"Taylor Swift", "Lionel Messi", "Keanu Reeves", "Freddie Mercury",
		"Emma Watson", "Jungkook",
	},
	"Indian Icons": {
		"APJ Abdul Kalam", "Rakesh Master", "Rajinikanth", "MS Dhoni",
		"Sushant Singh Rajput", "Virat Kohli", "Allu Arjun", "Pawan Kalyan",
		"Nani", "Sai Pallavi",
	},
}

// Load builds the catalog, preferring the override file at path when it
// exists, is non-empty and parses to a non-empty mapping. Any failure falls
// back to the built-in catalog: a bad override must never take the catalog
// down with it.
func Load(path string) *Catalog {
	return &Catalog{categories: loadCategories(path)}
}

func loadCategories(path string) map[string][]string {
	if path == "" {
		return defaultCharacters
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("character override unreadable, using built-in catalog")
		}
		return defaultCharacters
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		log.Warn().Str("path", path).Msg("character override empty, using built-in catalog")
		return defaultCharacters
	}

	var override map[string][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &override)
	default:
		err = json.Unmarshal(data, &override)
	}
	if err != nil || len(override) == 0 {
		log.Warn().Err(err).Str("path", path).Msg("character override invalid, using built-in catalog")
		return defaultCharacters
	}

	log.Info().Str("path", path).Int("categories", len(override)).Msg("character catalog loaded from override")
	return override
}

// Categories returns the category-to-names mapping.
func (c *Catalog) Categories() map[string][]string {
	return c.categories
}
