// Package layout computes the packed bit layout of types: total bit
// width and, for packed structs and unions, the LSB offset of every
// field. Layouts are cached per engine and cyclic type graphs (via
// typedef chains) surface as errors instead of infinite recursion.
package layout

import (
	"svlang/internal/types"
)

// TypeLayout is the packed layout of one type.
type TypeLayout struct {
	// Bits is the total packed width.
	Bits int64

	// FieldOffsets holds, for packed structs/unions only, each field's
	// offset from bit 0 (the LSB) in declaration order. A packed
	// struct's first-declared field occupies the most significant bits
	// (IEEE 1800 §7.2.1); a packed union's fields all start at 0.
	FieldOffsets []int64
}

// LayoutEngine computes and caches packed layouts against one type
// interner.
type LayoutEngine struct {
	Types *types.Interner

	cache *cache
}

// New creates an engine for the given interner.
func New(typesIn *types.Interner) *LayoutEngine {
	return &LayoutEngine{Types: typesIn, cache: newCache()}
}

type layoutState struct {
	stack []types.TypeID
	index map[types.TypeID]int
}

func newLayoutState() *layoutState {
	return &layoutState{index: make(map[types.TypeID]int, 16)}
}

// LayoutOf computes and caches the layout of a type.
func (e *LayoutEngine) LayoutOf(t types.TypeID) (TypeLayout, error) {
	l, err := e.layoutOf(t, newLayoutState())
	if err != nil {
		return l, err
	}
	return l, nil
}

func (e *LayoutEngine) layoutOf(t types.TypeID, state *layoutState) (TypeLayout, *LayoutError) {
	if e == nil || e.Types == nil {
		return TypeLayout{}, &LayoutError{Kind: LayoutErrNotPacked, Type: t}
	}
	if e.cache == nil {
		e.cache = newCache()
	}
	canon := e.Types.Resolve(t)
	if cached, ok := e.cache.get(canon); ok {
		return cached.Layout, cached.Err
	}

	if idx, ok := state.index[canon]; ok {
		cycle := append([]types.TypeID(nil), state.stack[idx:]...)
		cycle = append(cycle, canon)
		err := &LayoutError{Kind: LayoutErrRecursive, Type: canon, Cycle: cycle}
		e.cache.put(canon, &cacheEntry{Err: err})
		return TypeLayout{}, err
	}

	state.index[canon] = len(state.stack)
	state.stack = append(state.stack, canon)
	l, err := e.computeLayout(canon, state)
	state.stack = state.stack[:len(state.stack)-1]
	delete(state.index, canon)

	e.cache.put(canon, &cacheEntry{Layout: l, Err: err})
	return l, err
}

// BitsOf returns just the packed width.
func (e *LayoutEngine) BitsOf(t types.TypeID) (int64, error) {
	l, err := e.LayoutOf(t)
	return l.Bits, err
}
