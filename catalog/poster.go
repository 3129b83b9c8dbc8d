package catalog

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultPoster = "assets/default_poster.jpg"

// ResolvePoster mencari file poster untuk sebuah judul film dengan
// urutan fallback yang eksplisit:
//  1. nama file yang mengandung judul ternormalisasi,
//  2. nama file yang mengandung salah satu kata judul (>3 huruf),
//  3. poster default.
func ResolvePoster(assetsDir, title string) string {
	entries, err := os.ReadDir(assetsDir)
	if err != nil {
		return defaultPoster
	}

	normalized := strings.NewReplacer(" ", "_", ":", "", "-", "_").Replace(strings.ToLower(title))
	compact := strings.ReplaceAll(strings.ToLower(title), " ", "")

	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if strings.Contains(name, normalized) || strings.Contains(name, compact) {
			return filepath.Join(assetsDir, entry.Name())
		}
	}

	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		for _, word := range strings.Fields(strings.ToLower(title)) {
			if len(word) > 3 && strings.Contains(name, word) {
				return filepath.Join(assetsDir, entry.Name())
			}
		}
	}

	return defaultPoster
}
