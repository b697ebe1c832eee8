package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the cropper. Fields may be loaded
// from a JSON file and adjusted through the UI.
type Config struct {
	Debug bool `json:"debug"`
	// External transcoder
	FFmpegPath string `json:"ffmpeg_path"`
	CRF        int    `json:"crf"`
	OutputExt  string `json:"output_ext"`

	// Editor parameters
	HandleRadius   int `json:"handle_radius"`
	ReferenceFrame int `json:"reference_frame"`

	// Filter defaults
	FilterPlaceholder string `json:"filter_placeholder"`

	LogLevel string `json:"log_level"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		FFmpegPath:        "ffmpeg",
		CRF:               22,
		OutputExt:         "mp4",
		HandleRadius:      10,
		ReferenceFrame:    60,
		FilterPlaceholder: "hue=s=0",
		LogLevel:          "info",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.FFmpegPath == "" {
		c.FFmpegPath = "ffmpeg"
	}
	if c.CRF < 0 || c.CRF > 51 {
		c.CRF = 22
	}
	if c.OutputExt == "" {
		c.OutputExt = "mp4"
	}
	if c.HandleRadius <= 0 {
		c.HandleRadius = 10
	}
	if c.ReferenceFrame < 0 {
		c.ReferenceFrame = 60
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
