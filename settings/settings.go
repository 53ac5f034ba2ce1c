// Package settings persists editor configuration as JSON. Values absent
// from a settings file keep their defaults, so partial files from older
// versions load cleanly.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// CanvasSettings configures newly created documents.
type CanvasSettings struct {
	DefaultWidth    int      `json:"default_width"`
	DefaultHeight   int      `json:"default_height"`
	BackgroundColor [4]uint8 `json:"background_color"`
}

// ToolSettings configures the brush and eraser defaults.
type ToolSettings struct {
	BrushSize      float64 `json:"brush_size"`
	BrushHardness  float64 `json:"brush_hardness"`
	BrushOpacity   float64 `json:"brush_opacity"`
	EraserSize     float64 `json:"eraser_size"`
	EraserHardness float64 `json:"eraser_hardness"`
}

// PerformanceSettings bounds the engine's memory use.
type PerformanceSettings struct {
	TileSize      int `json:"tile_size"`
	MaxUndoStates int `json:"max_undo_states"`
	MemoryLimitMB int `json:"memory_limit_mb"`
}

// Settings is the persisted editor configuration.
type Settings struct {
	Canvas      CanvasSettings      `json:"canvas"`
	Tools       ToolSettings        `json:"tools"`
	Performance PerformanceSettings `json:"performance"`
}

// Default returns the stock configuration.
func Default() Settings {
	return Settings{
		Canvas: CanvasSettings{
			DefaultWidth:    1920,
			DefaultHeight:   1080,
			BackgroundColor: [4]uint8{255, 255, 255, 255},
		},
		Tools: ToolSettings{
			BrushSize:      10,
			BrushHardness:  0.8,
			BrushOpacity:   1.0,
			EraserSize:     20,
			EraserHardness: 0.5,
		},
		Performance: PerformanceSettings{
			TileSize:      256,
			MaxUndoStates: 50,
			MemoryLimitMB: 1024,
		},
	}
}

// Load reads settings from path, merging the file's values over the
// defaults. A missing file yields the defaults without error; malformed
// JSON returns the defaults together with the decode error.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), err
	}
	return s, nil
}

// Save writes the settings to path as indented JSON, creating parent
// directories as needed.
func (s Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
