package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testItemsJSON = `{
	"version": "1.0",
	"description": "Test items",
	"items": [
		{"id": "bullet", "size": "tiny", "stack": {"quantity": 1, "value": 2, "mergeable": true, "max_per_slot": 50}},
		{"id": "gold_coin", "size": "microscopic", "stack": {"quantity": 1, "value": 1, "mergeable": true}},
		{"id": "revolver", "name": "Old Revolver", "size": "small",
		 "color": {"foreground": "#c0c0c0", "background": "#000000"},
		 "equip": {"equipable": true, "slots": ["weapon"], "range": 6, "damage": 4, "modifiers": {"dexterity": 1}},
		 "use": {"loadable": true, "capacity": 6, "max_capacity": 6, "ammunition": "bullet"}},
		{"id": "healing_potion", "positioned": true,
		 "stack": {"quantity": 1, "value": 25, "mergeable": true, "max_per_slot": 5},
		 "use": {"disposable": true, "modifiers": {"health": 10}}},
		{"id": "goblin", "positioned": true, "dimensions": {"rows": 1, "cols": 1}}
	]
}`

const testItemsYAML = `
version: "1.0"
items:
  - id: bullet
    size: tiny
    stack:
      quantity: 1
      value: 2
      mergeable: true
      max_per_slot: 50
  - id: iron_helm
    color:
      foreground: "#808080"
    equip:
      equipable: true
      slots: [head]
      modifiers:
        defense: 2
`

const testPopulationJSON = `{
	"version": "1.0",
	"spawn_lists": [
		{"id": "cellar", "region": 2, "min_alive": 1, "max_alive": 3, "radius": 2,
		 "origin": {"row": 10, "col": 10}, "cooldown": 5,
		 "entries": [{"weight": 1, "template": "goblin"}]},
		{"id": "armory", "region": 1, "max_alive": 1,
		 "entries": [{"weight": 1, "template": "revolver"}, {"weight": 3, "template": "bullet"}]}
	],
	"containers": [
		{"id": "chest", "fixed": [{"template": "gold_coin", "quantity": 10}], "random_slots": 2,
		 "table": [{"weight": 1, "template": "healing_potion"}, {"weight": 1, "template": "bullet"}]}
	]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	loader := NewLoader()
	items, err := loader.ParseItems([]byte(testItemsJSON), FormatJSON)
	require.NoError(t, err)
	pop, err := loader.ParsePopulation([]byte(testPopulationJSON), FormatJSON)
	require.NoError(t, err)

	c := New()
	require.NoError(t, c.AddItems(items))
	require.NoError(t, c.AddPopulation(pop))
	return c
}
