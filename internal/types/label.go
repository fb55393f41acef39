package types

import (
	"fmt"
	"strings"
)

// Label returns a user-facing SystemVerilog-like spelling of a TypeID, for
// diagnostics and serialization. It never panics on a malformed TypeID.
func Label(in *Interner, id TypeID) string {
	return labelDepth(in, id, 0)
}

func labelDepth(in *Interner, id TypeID, depth int) string {
	if id == NoTypeID || in == nil || depth > 8 {
		return "?"
	}
	t, ok := in.Lookup(id)
	if !ok {
		return "?"
	}
	switch t.Kind {
	case KindIntegral:
		return labelIntegral(t)
	case KindFloating:
		return FloatingSubKind(t.SubKind).String()
	case KindPackedArray:
		return fmt.Sprintf("%s[%d:%d]", labelDepth(in, t.Elem, depth+1), t.Left, t.Right)
	case KindFixedUnpackedArray:
		return fmt.Sprintf("%s[%d]", labelDepth(in, t.Elem, depth+1), t.Size)
	case KindDynamicArray:
		return labelDepth(in, t.Elem, depth+1) + "[]"
	case KindQueue:
		if t.MaxBound < 0 {
			return labelDepth(in, t.Elem, depth+1) + "[$]"
		}
		return fmt.Sprintf("%s[$:%d]", labelDepth(in, t.Elem, depth+1), t.MaxBound)
	case KindAssociativeArray:
		if t.IndexType == NoTypeID {
			return labelDepth(in, t.Elem, depth+1) + "[*]"
		}
		return fmt.Sprintf("%s[%s]", labelDepth(in, t.Elem, depth+1), labelDepth(in, t.IndexType, depth+1))
	case KindPackedStruct, KindUnpackedStruct:
		return labelStructLike(in, id, "struct")
	case KindPackedUnion, KindUnpackedUnion:
		return labelStructLike(in, id, "union")
	case KindEnum:
		if info, ok := in.EnumInfo(id); ok && info.Name != "" {
			return info.Name
		}
		return "enum"
	case KindVoid:
		return "void"
	case KindNull:
		return "null"
	case KindCHandle:
		return "chandle"
	case KindString:
		return "string"
	case KindEvent:
		return "event"
	case KindUnbounded:
		return "$"
	case KindTypeRef:
		return "type"
	case KindUntyped:
		return "<untyped>"
	case KindSequence:
		return "sequence"
	case KindProperty:
		return "property"
	case KindError:
		return "<error>"
	case KindClass:
		if info, ok := in.ClassInfo(id); ok && info.Name != "" {
			return info.Name
		}
		return "class"
	case KindVirtualInterface:
		if info, ok := in.VirtualInterfaceInfo(id); ok {
			if info.ModportName != "" {
				return "virtual " + info.InterfaceName + "." + info.ModportName
			}
			return "virtual " + info.InterfaceName
		}
		return "virtual interface"
	case KindTypeAlias:
		if info, ok := in.AliasInfo(id); ok {
			if info.Target != NoTypeID {
				return labelDepth(in, info.Target, depth+1)
			}
			return info.Name
		}
		return "?"
	default:
		return "?"
	}
}

func labelIntegral(t Type) string {
	name := IntegralSubKind(t.SubKind).String()
	width, signed, fourState := canonicalAttrs(IntegralSubKind(t.SubKind))
	if t.Width == width && t.Signed == signed && t.FourState == fourState {
		return name
	}
	suffix := ""
	if t.Signed {
		suffix = " signed"
	}
	return fmt.Sprintf("%s [%d:0]%s", name, t.Width-1, suffix)
}

func labelStructLike(in *Interner, id TypeID, keyword string) string {
	info, ok := in.StructInfo(id)
	if !ok {
		return keyword
	}
	if info.Name != "" {
		return info.Name
	}
	fields := make([]string, len(info.Fields))
	for i, f := range info.Fields {
		fields[i] = labelDepth(in, f.Type, 1) + " " + f.Name
	}
	return keyword + " {" + strings.Join(fields, "; ") + "}"
}
