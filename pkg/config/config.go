// Package config loads note-generation settings from a YAML file and
// environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"notegen/pkg/anki"
)

// Config controls how assembled notes are shaped: which deck and model
// they target, the duplicate policy, and the field templates rendered
// against the marker map.
type Config struct {
	Deck            string   `yaml:"deck" env:"NOTEGEN_DECK" env-default:"Default"`
	Model           string   `yaml:"model" env:"NOTEGEN_MODEL" env-default:"Basic"`
	Tags            []string `yaml:"tags" env:"NOTEGEN_TAGS"`
	CheckDuplicates bool     `yaml:"check_duplicates" env:"NOTEGEN_CHECK_DUPLICATES" env-default:"true"`
	DuplicateScope  string   `yaml:"duplicate_scope" env:"NOTEGEN_DUPLICATE_SCOPE" env-default:"collection"`

	// Fields maps note field names to marker templates, e.g.
	// Front: "{furigana}". When empty, DefaultFields applies.
	Fields map[string]string `yaml:"fields"`
}

// DefaultFields is the field layout used when the config declares none.
func DefaultFields() map[string]string {
	return map[string]string{
		"Front": "{furigana}",
		"Back":  "{glossary}<br>{sentence}",
	}
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// When path is empty, the NOTEGEN_CONFIG env variable and then
// "./notegen.yaml" are tried; if neither names an existing file,
// configuration is loaded from ENV + defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = os.Getenv("NOTEGEN_CONFIG")
		explicitPath = path != ""
	}
	if !explicitPath {
		path = "./notegen.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if len(cfg.Fields) == 0 {
		cfg.Fields = DefaultFields()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Deck == "" {
		return fmt.Errorf("deck must not be empty")
	}
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	switch anki.DuplicateScope(c.DuplicateScope) {
	case anki.ScopeCollection, anki.ScopeDeck, anki.ScopeDeckRoot:
	default:
		return fmt.Errorf("duplicate_scope %q must be one of collection, deck, deck-root", c.DuplicateScope)
	}
	if len(c.Fields) == 0 {
		return fmt.Errorf("fields must declare at least one field template")
	}
	return nil
}

// Settings converts the configuration into the form note assembly takes.
func (c *Config) Settings() anki.Settings {
	return anki.Settings{
		Deck:            c.Deck,
		Model:           c.Model,
		Tags:            c.Tags,
		CheckDuplicates: c.CheckDuplicates,
		DuplicateScope:  anki.DuplicateScope(c.DuplicateScope),
		Fields:          c.Fields,
	}
}
