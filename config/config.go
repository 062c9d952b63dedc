// Package config resolves runtime settings from defaults, an optional .env file and TAGBOARD_* variables
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the full runtime configuration of the tagboard host
type Config struct {
	Store  StoreConfig
	Log    LogConfig
	Editor EditorConfig
	Audio  AudioConfig
}

// StoreConfig locates the persisted tag collection
type StoreConfig struct {
	Path string `validate:"required"`
}

// LogConfig controls the debug log sink
type LogConfig struct {
	Debug bool
	Path  string `validate:"required_if=Debug true"`
}

// EditorConfig tunes gesture classification, in terminal cells
type EditorConfig struct {
	DragThreshold float64 `validate:"gte=0"`
	HandleRadius  float64 `validate:"gt=0"`
}

// AudioConfig controls interaction cues
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 `validate:"gte=0,lte=1"`
	SampleRate   int     `validate:"gte=8000,lte=192000"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Store: StoreConfig{Path: "tags.json"},
		Log:   LogConfig{Path: "logs/tagboard.log"},
		Editor: EditorConfig{
			DragThreshold: 0.5,
			HandleRadius:  1,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
	}
}

// Load reads .env when present, applies environment overrides and validates
// Unparsable values are ignored and keep their default
func Load(envFiles ...string) (Config, error) {
	// Missing .env is the common case
	_ = godotenv.Load(envFiles...)

	cfg := Default()
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TAGBOARD_FILE"); v != "" {
		cfg.Store.Path = v
	}
	if v, ok := envBool("TAGBOARD_DEBUG"); ok {
		cfg.Log.Debug = v
	}
	if v := os.Getenv("TAGBOARD_LOG_FILE"); v != "" {
		cfg.Log.Path = v
	}
	if v, ok := envFloat("TAGBOARD_DRAG_THRESHOLD"); ok {
		cfg.Editor.DragThreshold = v
	}
	if v, ok := envFloat("TAGBOARD_HANDLE_RADIUS"); ok {
		cfg.Editor.HandleRadius = v
	}
	if v, ok := envBool("TAGBOARD_AUDIO_ENABLED"); ok {
		cfg.Audio.Enabled = v
	}

	// Master volume is given as 0-100
	if v := os.Getenv("TAGBOARD_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.MasterVolume = clampUnit(float64(n) / 100.0)
		}
	}
	if v := os.Getenv("TAGBOARD_SAMPLE_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Audio.SampleRate = n
		}
	}
}

var validate = validator.New()

// Validate checks field constraints
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

func envFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
