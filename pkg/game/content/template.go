// Package content holds the room and item templates the generator draws
// from. Templates are loaded from CSV tables as key→value records; anything
// malformed degrades to a defined fallback rather than an error.
package content

import (
	"strconv"
	"strings"
)

// Record is one raw row from a content table, keyed by column name.
// Keys and values are already trimmed by the loader.
type Record map[string]string

// ActionSlots is the number of action slots a room template can define.
const ActionSlots = 5

// RoomTemplate is the catalog prototype for a cell's content. It is a pure
// value type: assigning one produces an independent copy, so a template
// handed to a trail entry can be mutated without touching the catalog.
type RoomTemplate struct {
	Name    string
	Type    string
	Color   string
	Flavor  string
	Inspect string // optional override for the "inspect" action

	// Weight is the template's share of the weighted pool. Zero means the
	// template is excluded from sampling.
	Weight int

	// MaxLoot caps the loot draw count. HasMaxLoot is false when the raw
	// value was absent or unparseable, in which case the generator
	// substitutes its configured default.
	MaxLoot    int
	HasMaxLoot bool

	Actions [ActionSlots]string
}

// ItemTemplate is the catalog prototype for a collectible item. The three
// tier names grade the item by rarity; blank tiers fall back downward.
type ItemTemplate struct {
	Name   string
	Weight int
	Tiers  [3]string
}

// RoomFromRecord builds a room template from a raw record.
func RoomFromRecord(rec Record) RoomTemplate {
	t := RoomTemplate{
		Name:    rec["name"],
		Type:    rec["type"],
		Color:   rec["color"],
		Flavor:  rec["flavor_text"],
		Inspect: rec["inspect_passed"],
		Weight:  parseWeight(rec["probability"]),
	}
	if v, err := strconv.Atoi(strings.TrimSpace(rec["max_loot"])); err == nil {
		t.MaxLoot = v
		t.HasMaxLoot = true
	}
	for i := 0; i < ActionSlots; i++ {
		t.Actions[i] = rec["action"+strconv.Itoa(i+1)]
	}
	return t
}

// ItemFromRecord builds an item template from a raw record.
func ItemFromRecord(rec Record) ItemTemplate {
	return ItemTemplate{
		Name:   rec["name"],
		Weight: parseWeight(rec["probability"]),
		Tiers:  [3]string{rec["tier0"], rec["tier1"], rec["tier2"]},
	}
}

// parseWeight turns a raw probability field into a pool weight. Missing,
// non-integer and non-positive values all yield 0 (excluded from sampling).
func parseWeight(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// TierName returns the item name for the given tier, walking down through
// lower tiers when the requested one is blank, then falling back to the
// template's bare name, then to a literal default. The result is never empty.
func (t ItemTemplate) TierName(tier int) string {
	if tier > 2 {
		tier = 2
	}
	if tier < 0 {
		tier = 0
	}
	for i := tier; i >= 0; i-- {
		if name := strings.TrimSpace(t.Tiers[i]); name != "" {
			return name
		}
	}
	if name := strings.TrimSpace(t.Name); name != "" {
		return name
	}
	return DefaultItemName
}
