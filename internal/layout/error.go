package layout

import (
	"fmt"
	"strings"

	"svlang/internal/types"
)

// LayoutErrKind classifies layout failures.
type LayoutErrKind uint8

const (
	// LayoutErrNotPacked marks a type with no packed representation
	// (unpacked arrays, strings, classes, events).
	LayoutErrNotPacked LayoutErrKind = iota + 1
	// LayoutErrRecursive marks a typedef cycle.
	LayoutErrRecursive
)

// LayoutError reports why a layout could not be computed.
type LayoutError struct {
	Kind  LayoutErrKind
	Type  types.TypeID
	Cycle []types.TypeID
}

func (e *LayoutError) Error() string {
	switch e.Kind {
	case LayoutErrRecursive:
		parts := make([]string, 0, len(e.Cycle))
		for _, id := range e.Cycle {
			parts = append(parts, fmt.Sprintf("#%d", id))
		}
		return "recursive packed type: " + strings.Join(parts, " -> ")
	default:
		return fmt.Sprintf("type #%d has no packed layout", e.Type)
	}
}
