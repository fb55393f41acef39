package types

import (
	"fmt"

	"fortio.org/safecast"

	"svlang/internal/source"
)

// VirtualInterfaceInfo names the interface definition a virtual-interface
// handle refers to, plus an optional modport restricting its view.
type VirtualInterfaceInfo struct {
	InterfaceName string
	ModportName   string // "" means the full interface view
	Decl          source.Span
}

// RegisterVirtualInterface allocates a fresh nominal virtual-interface
// type slot.
func (in *Interner) RegisterVirtualInterface(ifaceName, modportName string, decl source.Span) TypeID {
	return in.internRaw(Type{Kind: KindVirtualInterface, Payload: in.appendVIfaceInfo(VirtualInterfaceInfo{InterfaceName: ifaceName, ModportName: modportName, Decl: decl})})
}

// VirtualInterfaceInfo returns the metadata for a virtual-interface TypeID.
func (in *Interner) VirtualInterfaceInfo(id TypeID) (*VirtualInterfaceInfo, bool) {
	t, ok := in.Lookup(id)
	if !ok || t.Kind != KindVirtualInterface || int(t.Payload) >= len(in.vifaces) {
		return nil, false
	}
	return &in.vifaces[t.Payload], true
}

func (in *Interner) appendVIfaceInfo(info VirtualInterfaceInfo) uint32 {
	in.vifaces = append(in.vifaces, info)
	slot, err := safecast.Conv[uint32](len(in.vifaces) - 1)
	if err != nil {
		panic(fmt.Errorf("types: virtual interface info table overflow: %w", err))
	}
	return slot
}
