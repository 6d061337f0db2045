package state

import "testing"

func TestBackpack_AddUntilFull(t *testing.T) {
	b := NewBackpack(20)
	for i := 0; i < 20; i++ {
		if !b.Add("coin") {
			t.Fatalf("Add failed at item %d with capacity 20", i)
		}
	}
	if !b.IsFull() {
		t.Error("IsFull() = false at capacity")
	}
	if b.Add("gem") {
		t.Error("Add succeeded past capacity")
	}
	if b.Count() != 20 {
		t.Errorf("Count() = %d after rejected add, want 20", b.Count())
	}
	if b.CountOf("gem") != 0 {
		t.Error("rejected add mutated state")
	}
}

func TestBackpack_CapacityIsTotalNotDistinct(t *testing.T) {
	b := NewBackpack(3)
	b.Add("coin")
	b.Add("coin")
	b.Add("gem")
	if b.Add("feather") {
		t.Error("Add succeeded with 3 items held and capacity 3 (2 distinct names)")
	}
	if b.CountOf("coin") != 2 || b.CountOf("gem") != 1 {
		t.Errorf("counts coin=%d gem=%d, want 2/1", b.CountOf("coin"), b.CountOf("gem"))
	}
}

func TestBackpack_EachKeepsPickupOrder(t *testing.T) {
	b := NewBackpack(10)
	for _, name := range []string{"rope", "coin", "rope", "gem"} {
		b.Add(name)
	}
	var names []string
	b.Each(func(name string, count int) {
		names = append(names, name)
	})
	want := []string{"rope", "coin", "gem"}
	if len(names) != len(want) {
		t.Fatalf("Each visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Each order %v, want %v", names, want)
		}
	}
}

func TestBackpack_ZeroCapacityRejectsEverything(t *testing.T) {
	b := NewBackpack(0)
	if b.Add("coin") {
		t.Error("zero-capacity backpack accepted an item")
	}
}
