package state

// Backpack is the capacity-bounded multiset of item names the player
// carries. The capacity bounds the total item count, not the number of
// distinct names; there is no removal path.
type Backpack struct {
	capacity int
	counts   map[string]int
	order    []string // first-pickup order, for stable HUD listing
}

// NewBackpack creates an empty backpack with the given total capacity.
func NewBackpack(capacity int) *Backpack {
	return &Backpack{
		capacity: capacity,
		counts:   make(map[string]int),
	}
}

// Add puts one item into the backpack. Returns false, leaving the backpack
// unchanged, when it is already full.
func (b *Backpack) Add(name string) bool {
	if b.Count() >= b.capacity {
		return false
	}
	if b.counts[name] == 0 {
		b.order = append(b.order, name)
	}
	b.counts[name]++
	return true
}

// Count returns the total number of items held.
func (b *Backpack) Count() int {
	total := 0
	for _, n := range b.counts {
		total += n
	}
	return total
}

// Capacity returns the backpack's total capacity.
func (b *Backpack) Capacity() int {
	return b.capacity
}

// IsFull reports whether no more items fit.
func (b *Backpack) IsFull() bool {
	return b.Count() >= b.capacity
}

// CountOf returns how many of the named item are held.
func (b *Backpack) CountOf(name string) int {
	return b.counts[name]
}

// Each visits held item names with their counts, in first-pickup order.
func (b *Backpack) Each(fn func(name string, count int)) {
	for _, name := range b.order {
		fn(name, b.counts[name])
	}
}
