package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"raycast-renderer/internal/camera"
)

// Manifest describes a finished render.
type Manifest struct {
	Image           string         `json:"image"`
	Width           int            `json:"width"`
	Height          int            `json:"height"`
	Supersample     int            `json:"supersample"`
	SamplesPerPixel int            `json:"samples_per_pixel"`
	MaxDepth        int            `json:"max_depth"`
	Seed            uint64         `json:"seed"`
	Background      string         `json:"background,omitempty"`
	Camera          camera.Options `json:"camera"`
	ElapsedMS       int64          `json:"elapsed_ms"`
}

// WriteManifest writes m as indented JSON to path, creating parent directories.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("manifest: mkdir %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}
