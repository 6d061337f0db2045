package actions

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"wanderer/pkg/game/config"
	"wanderer/pkg/game/procgen"
	"wanderer/pkg/game/state"
	"wanderer/pkg/game/trail"
)

// dynamicGet is used for lookups whose format string is chosen at runtime,
// as a function variable to avoid go vet's non-constant format check.
var dynamicGet = gotext.Get

// Resolver executes room actions, producing a narrative result and mutating
// the entry's loot state and the backpack as needed. Search rolls share the
// session's random source.
type Resolver struct {
	gen *procgen.Generator
	cfg *config.Config
	rng *rand.Rand
}

// NewResolver creates a resolver backed by the session's generator.
func NewResolver(gen *procgen.Generator, cfg *config.Config, rng *rand.Rand) *Resolver {
	return &Resolver{gen: gen, cfg: cfg, rng: rng}
}

// Resolve performs the action named by raw against the current trail entry.
// Inventory-full and nothing-here are ordinary outcomes reported in the
// returned message, never errors.
func (r *Resolver) Resolve(raw string, entry *trail.Entry, pack *state.Backpack) string {
	kind, action := ParseKind(raw)
	switch kind {
	case KindNone:
		return gotext.Get("No action available.")
	case KindTakeLoot:
		return r.takeLoot(entry, pack)
	case KindSearch:
		return r.search(pack, r.cfg.SearchChance, 0,
			gotext.Get("You search but find nothing of interest."), "You search and find %s!")
	case KindSearchPlus:
		return r.search(pack, r.cfg.SearchPlusChance, 1,
			gotext.Get("You search extensively but find nothing."), "You search thoroughly and find %s!")
	case KindLeave:
		return gotext.Get("You decide to leave.")
	case KindRest:
		return gotext.Get("You rest for a moment, feeling refreshed.")
	case KindInspect:
		if entry.Room.Inspect != "" {
			return entry.Room.Inspect
		}
		return gotext.Get("You inspect the area carefully.")
	default:
		return gotext.Get("You %s.", action)
	}
}

// takeLoot moves the first loot item of the entry into the backpack. The
// looted flag flips only once the loot list empties.
func (r *Resolver) takeLoot(entry *trail.Entry, pack *state.Backpack) string {
	if len(entry.Loot) == 0 {
		return gotext.Get("There's nothing to take.")
	}
	if pack.IsFull() {
		return gotext.Get("Your backpack is full!")
	}

	item := entry.Loot[0]
	entry.Loot = entry.Loot[1:]
	pack.Add(item)

	if len(entry.Loot) == 0 {
		entry.Looted = true
	}
	return gotext.Get("You found %s!", item)
}

// search rolls the find chance, then a tier in {tierBase, tierBase+1}, and
// tries to pocket the generated item. The entry's stored loot is untouched.
func (r *Resolver) search(pack *state.Backpack, chance float64, tierBase int, missMsg, foundFmt string) string {
	if r.rng.Float64() >= chance {
		return missMsg
	}

	tier := tierBase + r.rng.Intn(2)
	item := r.gen.GenerateItem(tier)
	if pack.Add(item) {
		return dynamicGet(foundFmt, item)
	}
	return gotext.Get("You found %s, but your backpack is full!", item)
}
