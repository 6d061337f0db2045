// Package actions interprets a room's free-text action slots against the
// current trail entry and the backpack. Known actions form a closed
// enumeration with a generic fallback, so dispatch is exhaustive instead of
// scattered string matching.
package actions

import "strings"

// Kind is the closed enumeration of known room actions.
type Kind int

const (
	// KindNone marks an empty or absent action slot.
	KindNone Kind = iota
	KindTakeLoot
	KindSearch
	KindSearchPlus
	KindLeave
	KindRest
	KindInspect
	// KindGeneric covers any other non-empty action text.
	KindGeneric
)

// String returns the kind's canonical action text.
func (k Kind) String() string {
	switch k {
	case KindTakeLoot:
		return "take loot"
	case KindSearch:
		return "search"
	case KindSearchPlus:
		return "search+"
	case KindLeave:
		return "leave"
	case KindRest:
		return "rest"
	case KindInspect:
		return "inspect"
	case KindGeneric:
		return "generic"
	default:
		return "none"
	}
}

// ParseKind normalizes raw action-slot text and maps it to a Kind. The
// normalized text is returned alongside for the generic fallback message.
func ParseKind(raw string) (Kind, string) {
	action := strings.ToLower(strings.TrimSpace(raw))
	switch action {
	case "":
		return KindNone, action
	case "take loot":
		return KindTakeLoot, action
	case "search":
		return KindSearch, action
	case "search+":
		return KindSearchPlus, action
	case "leave":
		return KindLeave, action
	case "rest":
		return KindRest, action
	case "inspect":
		return KindInspect, action
	default:
		return KindGeneric, action
	}
}
