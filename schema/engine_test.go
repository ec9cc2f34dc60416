package schema

import (
	"strings"
	"testing"

	"survev-skin-studio/models"
)

const testConfig = `{
  "version": "1.4.0",
  "rarities": [
    { "label": "(omit)", "const": "" },
    { "label": "Rare", "const": "Rarity.Rare" },
    { "label": "Mythic", "const": "Rarity.Mythic" }
  ],
  "flags": ["noDropOnDeath", "noDrop", "ghillie"],
  "defaults": {
    "baseScale": 1.0,
    "lootScale": 0.2,
    "soundPickup": "clothes_pickup_01",
    "lootBorderName": "loot-circle-outer-01",
    "refExt": ".img"
  },
  "baseScale": { "min": 0.5, "max": 2.0 },
  "lootScale": { "min": 0.05, "max": 0.5 }
}`

func testEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngineFromJSON([]byte(testConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return engine
}

func TestNewEngineFromJSON(t *testing.T) {
	engine := testEngine(t)
	if engine.Config().Version != "1.4.0" {
		t.Errorf("version %q", engine.Config().Version)
	}
	if engine.Defaults().SoundPickup != "clothes_pickup_01" {
		t.Errorf("defaults %+v", engine.Defaults())
	}
}

func TestNewEngineFromJSONRejectsBrokenConfigs(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"not json", "{"},
		{"missing version", `{"rarities":[{"label":"x","const":"y"}],"baseScale":{"min":0.5,"max":2},"lootScale":{"min":0.05,"max":0.5},"defaults":{"baseScale":1}}`},
		{"no rarities", `{"version":"1","rarities":[],"baseScale":{"min":0.5,"max":2},"lootScale":{"min":0.05,"max":0.5},"defaults":{"baseScale":1}}`},
		{"inverted bounds", `{"version":"1","rarities":[{"label":"x","const":"y"}],"baseScale":{"min":2,"max":0.5},"lootScale":{"min":0.05,"max":0.5},"defaults":{"baseScale":1}}`},
		{"default outside bounds", `{"version":"1","rarities":[{"label":"x","const":"y"}],"baseScale":{"min":0.5,"max":2},"lootScale":{"min":0.05,"max":0.5},"defaults":{"baseScale":3}}`},
	}
	for _, c := range cases {
		if _, err := NewEngineFromJSON([]byte(c.json)); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestAllowsRarity(t *testing.T) {
	engine := testEngine(t)
	if !engine.AllowsRarity("") {
		t.Error("empty rarity must be allowed (omitted from export)")
	}
	if !engine.AllowsRarity("Rarity.Rare") {
		t.Error("declared rarity rejected")
	}
	if engine.AllowsRarity("Rarity.Cursed") {
		t.Error("undeclared rarity accepted")
	}
}

func TestValidateDesign(t *testing.T) {
	engine := testEngine(t)

	ok := &models.OutfitDesign{Rarity: "Rarity.Rare", BaseScale: 1.2, LootScale: 0.2, RefExt: ".img"}
	if err := engine.ValidateDesign(ok); err != nil {
		t.Errorf("valid design rejected: %v", err)
	}

	// Zero values mean "unset" and skip the bounds checks.
	unset := &models.OutfitDesign{}
	if err := engine.ValidateDesign(unset); err != nil {
		t.Errorf("unset fields should pass: %v", err)
	}

	badRarity := &models.OutfitDesign{Rarity: "Rarity.Cursed"}
	if err := engine.ValidateDesign(badRarity); err == nil {
		t.Error("undeclared rarity should fail")
	}

	badScale := &models.OutfitDesign{BaseScale: 5}
	err := engine.ValidateDesign(badScale)
	if err == nil {
		t.Error("out-of-range baseScale should fail")
	} else if !strings.Contains(err.Error(), "baseScale") {
		t.Errorf("error should name the field: %v", err)
	}

	badExt := &models.OutfitDesign{RefExt: ".png"}
	if err := engine.ValidateDesign(badExt); err == nil {
		t.Error("unsupported reference extension should fail")
	}
}
