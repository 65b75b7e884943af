package batch

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
)

// Manifest records one batch run: a unique build ID, the species, and
// the per-variant outcomes.
type Manifest struct {
	BuildID  string          `json:"build_id"`
	Species  string          `json:"species"`
	Created  time.Time       `json:"created"`
	Size     int             `json:"render_size"`
	Variants []ManifestEntry `json:"variants"`
}

// ManifestEntry represents one variant in the output manifest.
type ManifestEntry struct {
	Name  string `json:"name"`
	Seed  uint64 `json:"seed"`
	Image string `json:"image,omitempty"`
	Error string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json for a finished run.
func WriteManifest(path, species string, size int, results []Result) error {
	m := Manifest{
		BuildID: uuid.NewString(),
		Species: species,
		Created: time.Now().UTC(),
		Size:    size,
	}
	for _, r := range results {
		e := ManifestEntry{Name: r.Name, Seed: r.Seed}
		if r.Success {
			e.Image = r.Name + ".webp"
		} else {
			e.Error = r.Error
		}
		m.Variants = append(m.Variants, e)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
