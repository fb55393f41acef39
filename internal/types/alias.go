package types

import (
	"fmt"

	"fortio.org/safecast"

	"svlang/internal/source"
)

// AliasInfo is a typedef's lazy pointer to its target type:
// a typedef can be declared (and referenced in later typedefs) before its
// target type is resolved, so Target starts as NoTypeID and is filled in
// once the binder resolves the declaration's syntax.
type AliasInfo struct {
	Name   string
	Decl   source.Span
	Target TypeID
}

// RegisterAlias allocates a fresh nominal typedef slot with its target
// left unresolved; call SetAliasTarget once the binder has resolved it.
func (in *Interner) RegisterAlias(name string, decl source.Span) TypeID {
	slot := in.appendAliasInfo(name, decl)
	return in.internRaw(Type{Kind: KindTypeAlias, Payload: slot})
}

// SetAliasTarget resolves a previously registered typedef's target type.
func (in *Interner) SetAliasTarget(id, target TypeID) {
	info := in.aliasInfo(id)
	if info == nil {
		return
	}
	info.Target = target
}

// AliasInfo returns the metadata for a typedef TypeID.
func (in *Interner) AliasInfo(id TypeID) (*AliasInfo, bool) {
	info := in.aliasInfo(id)
	if info == nil {
		return nil, false
	}
	return info, true
}

// Resolve walks past any chain of type aliases and returns the first
// non-alias type reached; it stops (returning the last alias seen) if the
// chain is unresolved or cyclic.
func (in *Interner) Resolve(id TypeID) TypeID {
	seen := map[TypeID]bool{}
	for {
		t, ok := in.Lookup(id)
		if !ok || t.Kind != KindTypeAlias {
			return id
		}
		if seen[id] {
			return id
		}
		seen[id] = true
		info := in.aliasInfo(id)
		if info == nil || info.Target == NoTypeID {
			return id
		}
		id = info.Target
	}
}

func (in *Interner) aliasInfo(id TypeID) *AliasInfo {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindTypeAlias || int(t.Payload) >= len(in.aliases) {
		return nil
	}
	return in.aliases[t.Payload]
}

func (in *Interner) appendAliasInfo(name string, decl source.Span) uint32 {
	in.aliases = append(in.aliases, &AliasInfo{Name: name, Decl: decl, Target: NoTypeID})
	slot, err := safecast.Conv[uint32](len(in.aliases) - 1)
	if err != nil {
		panic(fmt.Errorf("types: alias info table overflow: %w", err))
	}
	return slot
}
