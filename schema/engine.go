// Package schema loads the outfit definition contract: the rarity constants,
// gameplay flags and value bounds accepted by the game's configuration
// schema. The contract is versioned externally and shipped as a JSON config
// rather than hardcoded, so it can track game updates without a rebuild.
package schema

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"survev-skin-studio/models"
)

// Config represents the outfit schema configuration structure.
type Config struct {
	Version   string   `json:"version"`
	Rarities  []Rarity `json:"rarities"`
	Flags     []string `json:"flags"`
	Defaults  Defaults `json:"defaults"`
	BaseScale Bounds   `json:"baseScale"`
	LootScale Bounds   `json:"lootScale"`
}

// Rarity maps a UI label to the typed constant emitted in the config snippet.
// An empty constant means the field is omitted from the export.
type Rarity struct {
	Label string `json:"label"`
	Const string `json:"const"`
}

// Defaults holds the values new designs start from.
type Defaults struct {
	BaseScale      float64 `json:"baseScale"`
	LootScale      float64 `json:"lootScale"`
	SoundPickup    string  `json:"soundPickup"`
	LootBorderName string  `json:"lootBorderName"`
	RefExt         string  `json:"refExt"`
}

// Bounds is an inclusive numeric range.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether the value falls inside the bounds.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Engine validates designs against the loaded schema contract.
type Engine struct {
	config *Config
}

var engineInstance *Engine

// NewEngine loads and validates the schema config, reusing the existing
// instance when one was already created.
func NewEngine(configPath string) (*Engine, error) {
	if engineInstance != nil {
		return engineInstance, nil
	}

	// Resolve config path
	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read outfit schema config: %w", err)
	}

	engine, err := NewEngineFromJSON(data)
	if err != nil {
		return nil, err
	}

	engineInstance = engine
	log.Printf("✓ Outfit schema config loaded: version=%s rarities=%d", engine.config.Version, len(engine.config.Rarities))
	return engineInstance, nil
}

// NewEngineFromJSON builds an engine from raw config bytes.
func NewEngineFromJSON(data []byte) (*Engine, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse outfit schema config: %w", err)
	}
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid outfit schema config: %w", err)
	}
	return &Engine{config: &config}, nil
}

// GetEngine returns the singleton engine instance, or nil when none was loaded.
func GetEngine() *Engine {
	return engineInstance
}

// validateConfig checks the structural requirements of the schema contract.
func validateConfig(config *Config) error {
	if config.Version == "" {
		return fmt.Errorf("missing version")
	}
	if len(config.Rarities) == 0 {
		return fmt.Errorf("no rarities defined")
	}
	if config.BaseScale.Min <= 0 || config.BaseScale.Max < config.BaseScale.Min {
		return fmt.Errorf("invalid baseScale bounds [%v, %v]", config.BaseScale.Min, config.BaseScale.Max)
	}
	if config.LootScale.Min <= 0 || config.LootScale.Max < config.LootScale.Min {
		return fmt.Errorf("invalid lootScale bounds [%v, %v]", config.LootScale.Min, config.LootScale.Max)
	}
	if !config.BaseScale.Contains(config.Defaults.BaseScale) {
		return fmt.Errorf("default baseScale %v outside bounds", config.Defaults.BaseScale)
	}
	return nil
}

// Config returns the loaded schema contract.
func (e *Engine) Config() *Config {
	return e.config
}

// Defaults returns the starting values for new designs.
func (e *Engine) Defaults() Defaults {
	return e.config.Defaults
}

// AllowsRarity reports whether the rarity constant is part of the contract.
func (e *Engine) AllowsRarity(rarityConst string) bool {
	if rarityConst == "" {
		return true
	}
	for _, r := range e.config.Rarities {
		if r.Const == rarityConst {
			return true
		}
	}
	return false
}

// ValidateDesign checks a design's gameplay fields against the contract.
func (e *Engine) ValidateDesign(design *models.OutfitDesign) error {
	if !e.AllowsRarity(design.Rarity) {
		return fmt.Errorf("rarity %q is not part of schema version %s", design.Rarity, e.config.Version)
	}
	if design.BaseScale != 0 && !e.config.BaseScale.Contains(design.BaseScale) {
		return fmt.Errorf("baseScale %v outside allowed range [%v, %v]",
			design.BaseScale, e.config.BaseScale.Min, e.config.BaseScale.Max)
	}
	if design.LootScale != 0 && !e.config.LootScale.Contains(design.LootScale) {
		return fmt.Errorf("lootScale %v outside allowed range [%v, %v]",
			design.LootScale, e.config.LootScale.Min, e.config.LootScale.Max)
	}
	if design.RefExt != "" && design.RefExt != ".img" && design.RefExt != ".svg" {
		return fmt.Errorf("reference extension %q not supported: expected .img or .svg", design.RefExt)
	}
	return nil
}
