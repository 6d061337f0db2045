package content

// DefaultItemName is the last-resort item name when a template has no
// usable tier names and no bare name.
const DefaultItemName = "Small Pebble"

// PoolSource says where a weighted pool's contents came from. The fallback
// chain is ordered: real weighted data, then the first raw record when no
// record carried a usable weight, then the built-in defaults when the table
// itself was empty.
type PoolSource int

const (
	PoolFromData PoolSource = iota
	PoolFromFirstRecord
	PoolBuiltinDefault
)

// String returns the pool source as a short label.
func (s PoolSource) String() string {
	switch s {
	case PoolFromData:
		return "data"
	case PoolFromFirstRecord:
		return "first-record"
	case PoolBuiltinDefault:
		return "builtin"
	default:
		return "unknown"
	}
}

// Catalog holds the parsed templates and the weighted pools built from them.
// Pools are flattened: a template with weight N appears N times, so uniform
// sampling over the pool is weighted sampling over the templates.
type Catalog struct {
	Rooms []RoomTemplate
	Items []ItemTemplate

	roomPool []RoomTemplate
	itemPool []ItemTemplate

	roomSource PoolSource
	itemSource PoolSource
}

// NewCatalog builds a catalog from raw room and item records, applying the
// fallback chain so that both pools are guaranteed non-empty.
func NewCatalog(roomRecords, itemRecords []Record) *Catalog {
	c := &Catalog{}

	rooms := roomRecords
	c.roomSource = PoolFromData
	if len(rooms) == 0 {
		rooms = builtinRoomRecords()
		c.roomSource = PoolBuiltinDefault
	}
	for _, rec := range rooms {
		c.Rooms = append(c.Rooms, RoomFromRecord(rec))
	}
	for _, t := range c.Rooms {
		for i := 0; i < t.Weight; i++ {
			c.roomPool = append(c.roomPool, t)
		}
	}
	if len(c.roomPool) == 0 {
		// Records existed but none carried a usable weight.
		c.roomPool = []RoomTemplate{c.Rooms[0]}
		if c.roomSource == PoolFromData {
			c.roomSource = PoolFromFirstRecord
		}
	}

	items := itemRecords
	c.itemSource = PoolFromData
	if len(items) == 0 {
		items = builtinItemRecords()
		c.itemSource = PoolBuiltinDefault
	}
	for _, rec := range items {
		c.Items = append(c.Items, ItemFromRecord(rec))
	}
	for _, t := range c.Items {
		for i := 0; i < t.Weight; i++ {
			c.itemPool = append(c.itemPool, t)
		}
	}
	if len(c.itemPool) == 0 {
		c.itemPool = []ItemTemplate{c.Items[0]}
		if c.itemSource == PoolFromData {
			c.itemSource = PoolFromFirstRecord
		}
	}

	return c
}

// RoomPool returns the weighted room pool. Never empty.
func (c *Catalog) RoomPool() []RoomTemplate {
	return c.roomPool
}

// ItemPool returns the weighted item pool. Never empty.
func (c *Catalog) ItemPool() []ItemTemplate {
	return c.itemPool
}

// RoomPoolSource returns where the room pool's contents came from.
func (c *Catalog) RoomPoolSource() PoolSource {
	return c.roomSource
}

// ItemPoolSource returns where the item pool's contents came from.
func (c *Catalog) ItemPoolSource() PoolSource {
	return c.itemSource
}

// builtinRoomRecords is the hard-coded room content used when no rooms table
// could be loaded at all.
func builtinRoomRecords() []Record {
	return []Record{
		{
			"type":        "room",
			"name":        "Empty Chamber",
			"color":       "gray",
			"probability": "10",
			"max_loot":    "3",
			"flavor_text": "A bare stone chamber with dusty corners.",
			"action1":     "search",
			"action2":     "take loot",
			"action3":     "leave",
		},
		{
			"type":        "treasure",
			"name":        "Treasure Room",
			"color":       "gold",
			"probability": "3",
			"max_loot":    "8",
			"flavor_text": "Golden light reflects off piles of treasure.",
			"action1":     "take loot",
			"action2":     "search+",
			"action3":     "leave",
		},
	}
}

// builtinItemRecords is the hard-coded item content used when no items table
// could be loaded at all.
func builtinItemRecords() []Record {
	return []Record{
		{
			"name":        "coin",
			"probability": "10",
			"tier0":       "copper coin",
			"tier1":       "silver coin",
			"tier2":       "gold coin",
		},
		{
			"name":        "gem",
			"probability": "5",
			"tier0":       "rough stone",
			"tier1":       "polished gem",
			"tier2":       "precious jewel",
		},
	}
}
