// Package procgen draws room instances and loot from the content catalog.
// All randomness flows through an injected rand source so outcomes are
// reproducible under a fixed seed.
package procgen

import (
	"math/rand"

	"wanderer/pkg/game/config"
	"wanderer/pkg/game/content"
)

// Generator samples rooms and items from a catalog's weighted pools.
type Generator struct {
	catalog *content.Catalog
	cfg     *config.Config
	rng     *rand.Rand
}

// New creates a generator over the given catalog.
func New(catalog *content.Catalog, cfg *config.Config, rng *rand.Rand) *Generator {
	return &Generator{catalog: catalog, cfg: cfg, rng: rng}
}

// GenerateRoom uniformly samples one template from the weighted room pool
// and returns it by value, so the caller owns an independent copy. An empty
// pool (which the catalog's fallback chain normally prevents) yields a fixed
// default room.
func (g *Generator) GenerateRoom() content.RoomTemplate {
	pool := g.catalog.RoomPool()
	if len(pool) == 0 {
		return defaultRoom()
	}
	return pool[g.rng.Intn(len(pool))]
}

// GenerateItem uniformly samples one item template and resolves its name at
// the given tier. The tier is clamped to [0,2] and blank tier names fall
// back downward, so the result is never empty.
func (g *Generator) GenerateItem(tier int) string {
	pool := g.catalog.ItemPool()
	if len(pool) == 0 {
		return content.DefaultItemName
	}
	return pool[g.rng.Intn(len(pool))].TierName(tier)
}

// GenerateLoot rolls the loot list for a freshly drawn room. A max_loot of
// zero or less yields no loot; otherwise between 1 and
// min(max_loot, LootUpperCap) items are drawn, each at an independently
// rolled rarity tier.
func (g *Generator) GenerateLoot(room content.RoomTemplate) []string {
	maxLoot := g.cfg.DefaultMaxLoot
	if room.HasMaxLoot {
		maxLoot = room.MaxLoot
	}
	if maxLoot <= 0 {
		return nil
	}
	if maxLoot > g.cfg.LootUpperCap {
		maxLoot = g.cfg.LootUpperCap
	}

	count := 1 + g.rng.Intn(maxLoot)
	loot := make([]string, 0, count)
	for i := 0; i < count; i++ {
		loot = append(loot, g.GenerateItem(g.RollTier()))
	}
	return loot
}

// RollTier rolls a rarity tier with the configured split: tier 0 with
// probability RarityCommon, tier 1 with RarityUncommon, tier 2 with the
// remainder.
func (g *Generator) RollTier() int {
	r := g.rng.Float64()
	switch {
	case r < g.cfg.RarityCommon:
		return 0
	case r < g.cfg.RarityCommon+g.cfg.RarityUncommon:
		return 1
	default:
		return 2
	}
}

// Rand exposes the generator's random source for collaborators (the action
// resolver's search rolls) that must share the session's seed.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// defaultRoom is the fixed room handed out when the pool is somehow empty.
func defaultRoom() content.RoomTemplate {
	return content.RoomTemplate{
		Name:       "Empty Room",
		Type:       "room",
		Color:      "gray",
		Flavor:     "There doesn't seem to be anything here.",
		Weight:     1,
		MaxLoot:    3,
		HasMaxLoot: true,
		Actions:    [content.ActionSlots]string{"search", "take loot", "leave"},
	}
}
