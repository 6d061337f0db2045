// Package trail keeps the ordered, capacity-bounded memory of visited
// cells. The head of the trail is the player's current cell; the tail is the
// oldest remembered one. Revisiting a remembered cell reorders it to the
// head without touching its content.
package trail

import (
	"github.com/zyedidia/generic/list"

	"wanderer/pkg/engine/world"
	"wanderer/pkg/game/content"
)

// Entry is one remembered cell: its position, a privately owned copy of the
// room template drawn for it, the loot still lying there, and whether the
// loot has been fully taken.
type Entry struct {
	Pos    world.Position
	Room   content.RoomTemplate
	Loot   []string
	Looted bool
}

// Trail is the bounded visit history. Entries are held in a doubly linked
// list for O(1) reordering and eviction, with a position index alongside;
// positions in the trail are always pairwise distinct.
type Trail struct {
	limit   int
	entries *list.List[*Entry]
	byPos   map[world.Position]*list.Node[*Entry]
}

// New creates an empty trail that remembers at most limit cells.
func New(limit int) *Trail {
	return &Trail{
		limit:   limit,
		entries: list.New[*Entry](),
		byPos:   make(map[world.Position]*list.Node[*Entry]),
	}
}

// Move makes pos the current cell. A remembered position is extracted and
// reinserted at the head with its content untouched; an unknown one gets a
// fresh entry from generate. If the trail then exceeds its limit, the single
// oldest entry is evicted. Returns the current entry and whether it was a
// revisit.
func (t *Trail) Move(pos world.Position, generate func(world.Position) *Entry) (*Entry, bool) {
	node, revisit := t.byPos[pos]
	if revisit {
		t.entries.Remove(node)
	} else {
		node = &list.Node[*Entry]{Value: generate(pos)}
		node.Value.Pos = pos
		t.byPos[pos] = node
	}
	t.entries.PushFrontNode(node)

	if len(t.byPos) > t.limit {
		oldest := t.entries.Back
		t.entries.Remove(oldest)
		delete(t.byPos, oldest.Value.Pos)
	}

	return node.Value, revisit
}

// Current returns the entry at the head of the trail, or nil when empty.
func (t *Trail) Current() *Entry {
	if t.entries.Front == nil {
		return nil
	}
	return t.entries.Front.Value
}

// At returns the remembered entry for pos, or nil if the trail has
// forgotten (or never seen) that position.
func (t *Trail) At(pos world.Position) *Entry {
	node, ok := t.byPos[pos]
	if !ok {
		return nil
	}
	return node.Value
}

// Len returns the number of remembered cells.
func (t *Trail) Len() int {
	return len(t.byPos)
}

// Limit returns the trail's capacity.
func (t *Trail) Limit() int {
	return t.limit
}

// Each walks the trail from the current cell to the oldest, calling fn with
// the entry's age (0 = current).
func (t *Trail) Each(fn func(age int, e *Entry)) {
	age := 0
	for node := t.entries.Front; node != nil; node = node.Next {
		fn(age, node.Value)
		age++
	}
}

// Positions returns the remembered positions ordered from current to oldest.
func (t *Trail) Positions() []world.Position {
	out := make([]world.Position, 0, len(t.byPos))
	t.Each(func(_ int, e *Entry) {
		out = append(out, e.Pos)
	})
	return out
}
