package ast

import "svlang/internal/source"

// Items owns the flat Item envelope arena plus one per-kind payload arena,
// keeping the envelope-plus-payload split so that each ItemKind
// dispatches to a densely packed, cache-friendly slice of its own shape.
type Items struct {
	Arena *Arena[Item]

	Modules    *Arena[ModuleDecl]
	Packages   *Arena[PackageDecl]
	Ports      *Arena[Port]
	Params     *Arena[ParamDecl]
	Nets       *Arena[NetDecl]
	Vars       *Arena[VarDecl]
	Typedefs   *Arena[TypedefDecl]
	Assigns    *Arena[ContinuousAssign]
	Procs      *Arena[ProceduralBlock]
	GenIfs     *Arena[GenerateIf]
	GenFors    *Arena[GenerateFor]
	Instances  *Arena[Instance]
	Subroutine *Arena[Subroutine]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Items{
		Arena:      NewArena[Item](capHint),
		Modules:    NewArena[ModuleDecl](capHint),
		Packages:   NewArena[PackageDecl](capHint),
		Ports:      NewArena[Port](capHint),
		Params:     NewArena[ParamDecl](capHint),
		Nets:       NewArena[NetDecl](capHint),
		Vars:       NewArena[VarDecl](capHint),
		Typedefs:   NewArena[TypedefDecl](capHint),
		Assigns:    NewArena[ContinuousAssign](capHint),
		Procs:      NewArena[ProceduralBlock](capHint),
		GenIfs:     NewArena[GenerateIf](capHint),
		GenFors:    NewArena[GenerateFor](capHint),
		Instances:  NewArena[Instance](capHint),
		Subroutine: NewArena[Subroutine](capHint),
	}
}

func (it *Items) Get(id ItemID) *Item { return it.Arena.Get(uint32(id)) }

func (it *Items) newItem(kind ItemKind, sp source.Span, name string, payload uint32) ItemID {
	return ItemID(it.Arena.Allocate(Item{Kind: kind, Span: sp, Name: name, Payload: payload}))
}

func (it *Items) NewModule(kind ItemKind, sp source.Span, d ModuleDecl) ItemID {
	return it.newItem(kind, sp, d.Name, it.Modules.Allocate(d))
}

func (it *Items) NewPackage(sp source.Span, d PackageDecl) ItemID {
	return it.newItem(ItemPackage, sp, d.Name, it.Packages.Allocate(d))
}

func (it *Items) NewPort(sp source.Span, p Port) ItemID {
	return it.newItem(ItemPort, sp, p.Name, it.Ports.Allocate(p))
}

func (it *Items) NewParam(sp source.Span, p ParamDecl) ItemID {
	return it.newItem(ItemParam, sp, p.Name, it.Params.Allocate(p))
}

func (it *Items) NewNet(sp source.Span, n NetDecl) ItemID {
	name := ""
	if len(n.Names) > 0 {
		name = n.Names[0]
	}
	return it.newItem(ItemNet, sp, name, it.Nets.Allocate(n))
}

func (it *Items) NewVar(sp source.Span, v VarDecl) ItemID {
	name := ""
	if len(v.Names) > 0 {
		name = v.Names[0]
	}
	return it.newItem(ItemVar, sp, name, it.Vars.Allocate(v))
}

func (it *Items) NewTypedef(sp source.Span, t TypedefDecl) ItemID {
	return it.newItem(ItemTypedef, sp, t.Name, it.Typedefs.Allocate(t))
}

func (it *Items) NewAssign(sp source.Span, a ContinuousAssign) ItemID {
	return it.newItem(ItemContinuousAssign, sp, "", it.Assigns.Allocate(a))
}

func (it *Items) NewProc(sp source.Span, p ProceduralBlock) ItemID {
	return it.newItem(ItemProceduralBlock, sp, "", it.Procs.Allocate(p))
}

func (it *Items) NewGenerateIf(sp source.Span, g GenerateIf) ItemID {
	return it.newItem(ItemGenerateIf, sp, "", it.GenIfs.Allocate(g))
}

func (it *Items) NewGenerateFor(sp source.Span, g GenerateFor) ItemID {
	return it.newItem(ItemGenerateFor, sp, "", it.GenFors.Allocate(g))
}

func (it *Items) NewInstance(sp source.Span, inst Instance) ItemID {
	return it.newItem(ItemInstance, sp, inst.InstName, it.Instances.Allocate(inst))
}

func (it *Items) NewSubroutine(kind ItemKind, sp source.Span, s Subroutine) ItemID {
	return it.newItem(kind, sp, s.Name, it.Subroutine.Allocate(s))
}

// Module looks up the ModuleDecl payload of an ItemModule/ItemInterface/
// ItemProgram item; nil if id doesn't name one of those kinds.
func (it *Items) Module(id ItemID) *ModuleDecl {
	item := it.Get(id)
	if item == nil {
		return nil
	}
	switch item.Kind {
	case ItemModule, ItemInterface, ItemProgram:
		return it.Modules.Get(item.Payload)
	default:
		return nil
	}
}

// Package, Port, Param, Net, Var, Typedef, Assign, Proc, GenIf, GenFor,
// Instance, and Sub each look up one item's per-kind payload the same way
// Module does, for every other ItemKind.
func (it *Items) Package(id ItemID) *PackageDecl {
	if item := it.Get(id); item != nil && item.Kind == ItemPackage {
		return it.Packages.Get(item.Payload)
	}
	return nil
}

func (it *Items) Port(id ItemID) *Port {
	if item := it.Get(id); item != nil && item.Kind == ItemPort {
		return it.Ports.Get(item.Payload)
	}
	return nil
}

func (it *Items) Param(id ItemID) *ParamDecl {
	if item := it.Get(id); item != nil && item.Kind == ItemParam {
		return it.Params.Get(item.Payload)
	}
	return nil
}

func (it *Items) Net(id ItemID) *NetDecl {
	if item := it.Get(id); item != nil && item.Kind == ItemNet {
		return it.Nets.Get(item.Payload)
	}
	return nil
}

func (it *Items) Var(id ItemID) *VarDecl {
	if item := it.Get(id); item != nil && item.Kind == ItemVar {
		return it.Vars.Get(item.Payload)
	}
	return nil
}

func (it *Items) Typedef(id ItemID) *TypedefDecl {
	if item := it.Get(id); item != nil && item.Kind == ItemTypedef {
		return it.Typedefs.Get(item.Payload)
	}
	return nil
}

func (it *Items) Assign(id ItemID) *ContinuousAssign {
	if item := it.Get(id); item != nil && item.Kind == ItemContinuousAssign {
		return it.Assigns.Get(item.Payload)
	}
	return nil
}

func (it *Items) Proc(id ItemID) *ProceduralBlock {
	if item := it.Get(id); item != nil && item.Kind == ItemProceduralBlock {
		return it.Procs.Get(item.Payload)
	}
	return nil
}

func (it *Items) GenIf(id ItemID) *GenerateIf {
	if item := it.Get(id); item != nil && item.Kind == ItemGenerateIf {
		return it.GenIfs.Get(item.Payload)
	}
	return nil
}

func (it *Items) GenFor(id ItemID) *GenerateFor {
	if item := it.Get(id); item != nil && item.Kind == ItemGenerateFor {
		return it.GenFors.Get(item.Payload)
	}
	return nil
}

func (it *Items) Instance(id ItemID) *Instance {
	if item := it.Get(id); item != nil && item.Kind == ItemInstance {
		return it.Instances.Get(item.Payload)
	}
	return nil
}

func (it *Items) Sub(id ItemID) *Subroutine {
	if item := it.Get(id); item != nil && (item.Kind == ItemFunction || item.Kind == ItemTask) {
		return it.Subroutine.Get(item.Payload)
	}
	return nil
}
