package content

import "testing"

func roomRec(name, prob string) Record {
	return Record{"name": name, "type": "room", "probability": prob}
}

func itemRec(name, prob string) Record {
	return Record{"name": name, "probability": prob}
}

func TestNewCatalog_WeightedPoolCounts(t *testing.T) {
	c := NewCatalog(
		[]Record{roomRec("Common", "3"), roomRec("Rare", "1")},
		[]Record{itemRec("coin", "2")},
	)

	if got := len(c.RoomPool()); got != 4 {
		t.Errorf("room pool size = %d, want 4 (weights 3+1)", got)
	}
	counts := map[string]int{}
	for _, tpl := range c.RoomPool() {
		counts[tpl.Name]++
	}
	if counts["Common"] != 3 || counts["Rare"] != 1 {
		t.Errorf("pool counts = %v, want Common:3 Rare:1", counts)
	}
	if c.RoomPoolSource() != PoolFromData {
		t.Errorf("room pool source = %v, want data", c.RoomPoolSource())
	}
}

func TestNewCatalog_ExcludesUnweightedTemplates(t *testing.T) {
	// Zero, non-integer and negative probabilities are all excluded.
	c := NewCatalog(
		[]Record{roomRec("Zero", "0"), roomRec("Garbage", "abc"), roomRec("Negative", "-2"), roomRec("Kept", "1")},
		[]Record{itemRec("junk", "0"), itemRec("kept", "1")},
	)

	for _, tpl := range c.RoomPool() {
		if tpl.Name != "Kept" {
			t.Errorf("room pool contains excluded template %q", tpl.Name)
		}
	}
	for _, tpl := range c.ItemPool() {
		if tpl.Name != "kept" {
			t.Errorf("item pool contains excluded template %q", tpl.Name)
		}
	}
}

func TestNewCatalog_FirstRecordFallback(t *testing.T) {
	// Records exist but none carries a usable weight: the pool must fall
	// back to exactly the first record.
	c := NewCatalog(
		[]Record{roomRec("First", "abc"), roomRec("Second", "0")},
		[]Record{itemRec("first", ""), itemRec("second", "x")},
	)

	if got := len(c.RoomPool()); got != 1 {
		t.Fatalf("room pool size = %d, want 1", got)
	}
	if c.RoomPool()[0].Name != "First" {
		t.Errorf("room pool fallback = %q, want First", c.RoomPool()[0].Name)
	}
	if c.RoomPoolSource() != PoolFromFirstRecord {
		t.Errorf("room pool source = %v, want first-record", c.RoomPoolSource())
	}
	if c.ItemPool()[0].Name != "first" {
		t.Errorf("item pool fallback = %q, want first", c.ItemPool()[0].Name)
	}
	if c.ItemPoolSource() != PoolFromFirstRecord {
		t.Errorf("item pool source = %v, want first-record", c.ItemPoolSource())
	}
}

func TestNewCatalog_BuiltinDefaultsOnEmptyTables(t *testing.T) {
	c := NewCatalog(nil, nil)

	if len(c.RoomPool()) == 0 || len(c.ItemPool()) == 0 {
		t.Fatal("builtin catalog must have non-empty pools")
	}
	if c.RoomPoolSource() != PoolBuiltinDefault {
		t.Errorf("room pool source = %v, want builtin", c.RoomPoolSource())
	}
	if c.ItemPoolSource() != PoolBuiltinDefault {
		t.Errorf("item pool source = %v, want builtin", c.ItemPoolSource())
	}
	// The builtin rooms must define usable action slots.
	found := false
	for _, tpl := range c.Rooms {
		if tpl.Actions[0] != "" {
			found = true
		}
	}
	if !found {
		t.Error("builtin rooms define no actions")
	}
}

func TestRoomFromRecord_MaxLootParsing(t *testing.T) {
	cases := []struct {
		raw  string
		want int
		has  bool
	}{
		{"8", 8, true},
		{"0", 0, true},
		{"-1", -1, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		tpl := RoomFromRecord(Record{"name": "r", "max_loot": tc.raw})
		if tpl.MaxLoot != tc.want || tpl.HasMaxLoot != tc.has {
			t.Errorf("max_loot %q: got (%d,%v), want (%d,%v)", tc.raw, tpl.MaxLoot, tpl.HasMaxLoot, tc.want, tc.has)
		}
	}
}

func TestTierName_FallbackChain(t *testing.T) {
	tpl := ItemTemplate{Name: "Z", Tiers: [3]string{"Y", "X", ""}}

	if got := tpl.TierName(2); got != "X" {
		t.Errorf("TierName(2) = %q, want X (tier2 blank, tier1 set)", got)
	}
	if got := tpl.TierName(0); got != "Y" {
		t.Errorf("TierName(0) = %q, want Y", got)
	}

	blank := ItemTemplate{Name: "Z"}
	for tier := 0; tier <= 2; tier++ {
		if got := blank.TierName(tier); got != "Z" {
			t.Errorf("all-blank tiers: TierName(%d) = %q, want Z", tier, got)
		}
	}

	empty := ItemTemplate{}
	if got := empty.TierName(1); got != DefaultItemName {
		t.Errorf("fully empty template: TierName(1) = %q, want %q", got, DefaultItemName)
	}

	// Out-of-range tiers clamp rather than panic.
	if got := tpl.TierName(9); got != "X" {
		t.Errorf("TierName(9) = %q, want X (clamped to 2)", got)
	}
	if got := tpl.TierName(-3); got != "Y" {
		t.Errorf("TierName(-3) = %q, want Y (clamped to 0)", got)
	}
}
