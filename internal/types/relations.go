package types

// The four relations below mirror IEEE 1800 §6.22 exactly: each is
// defined in terms of the one before it, from strictest (IsMatching) to
// loosest (IsCastCompatible). Callers that only know "is this assignment
// legal" should call IsAssignmentCompatible directly rather than manually
// OR-ing the weaker relations together.

// IsMatching is structural identity (IEEE 1800 §6.22.1). Structural
// (non-nominal) shapes are already hash-consed by Intern, and nominal
// shapes (struct/union/enum/class/virtual-interface/alias) only share a
// TypeID if they came from the same declaration, so matching reduces to
// TypeID equality once both sides are dealiased.
func (in *Interner) IsMatching(a, b TypeID) bool {
	return in.Resolve(a) == in.Resolve(b)
}

// IsEquivalent implements the "equivalent" relation: matching, or one of
// the three documented structural relaxations.
func (in *Interner) IsEquivalent(a, b TypeID) bool {
	if in.IsMatching(a, b) {
		return true
	}
	a, b = in.Resolve(a), in.Resolve(b)
	ta, ok1 := in.Lookup(a)
	tb, ok2 := in.Lookup(b)
	if !ok1 || !ok2 {
		return false
	}

	if ta.Kind == KindIntegral && tb.Kind == KindIntegral {
		return ta.Signed == tb.Signed && ta.FourState == tb.FourState && ta.Width == tb.Width
	}

	if ta.Kind == KindFixedUnpackedArray && tb.Kind == KindFixedUnpackedArray {
		return ta.Size == tb.Size && in.IsEquivalent(ta.Elem, tb.Elem)
	}

	if ta.Kind != tb.Kind {
		return false
	}
	switch ta.Kind {
	case KindDynamicArray, KindQueue:
		return in.IsEquivalent(ta.Elem, tb.Elem)
	case KindAssociativeArray:
		if !in.IsEquivalent(ta.Elem, tb.Elem) {
			return false
		}
		if ta.IndexType == NoTypeID || tb.IndexType == NoTypeID {
			return ta.IndexType == tb.IndexType
		}
		return in.IsEquivalent(ta.IndexType, tb.IndexType)
	default:
		return false
	}
}

// IsAssignmentCompatible implements the "assignment compatible" relation.
func (in *Interner) IsAssignmentCompatible(target, source TypeID) bool {
	if in.IsEquivalent(target, source) {
		return true
	}
	rt, rs := in.Resolve(target), in.Resolve(source)
	tt, ok1 := in.Lookup(rt)
	ts, ok2 := in.Lookup(rs)
	if !ok1 || !ok2 {
		return false
	}

	if isNumeric(tt.Kind) && isNumeric(ts.Kind) {
		return true
	}

	if tt.Kind == KindFixedUnpackedArray && ts.Kind == KindFixedUnpackedArray {
		return in.IsAssignmentCompatible(tt.Elem, ts.Elem)
	}
	if tt.Kind == KindDynamicArray && (ts.Kind == KindDynamicArray || ts.Kind == KindFixedUnpackedArray) {
		return in.IsAssignmentCompatible(tt.Elem, ts.Elem)
	}

	if tt.Kind == KindClass && ts.Kind == KindClass {
		// upcast: assigning a derived-class value to a base-class handle,
		// or a class implementing an interface-class to that interface.
		if in.IsClassDescendant(rs, rt) {
			return true
		}
		if sinfo, ok := in.ClassInfo(rs); ok {
			for _, iface := range sinfo.Interfaces {
				if in.Resolve(iface) == rt {
					return true
				}
			}
		}
	}

	if ts.Kind == KindNull {
		switch tt.Kind {
		case KindCHandle, KindEvent, KindClass, KindVirtualInterface:
			return true
		}
	}
	return false
}

// IsCastCompatible implements the "cast compatible" relation, the loosest
// of the four — what an explicit `$cast`/static cast may legally attempt.
func (in *Interner) IsCastCompatible(target, source TypeID) bool {
	if in.IsAssignmentCompatible(target, source) {
		return true
	}
	rt, rs := in.Resolve(target), in.Resolve(source)
	tt, ok1 := in.Lookup(rt)
	ts, ok2 := in.Lookup(rs)
	if !ok1 || !ok2 {
		return false
	}

	if tt.Kind == KindEnum && isNumeric(ts.Kind) {
		return true
	}
	if ts.Kind == KindEnum && isNumeric(tt.Kind) {
		return true
	}
	if tt.Kind == KindString && ts.Kind == KindIntegral {
		return true
	}
	if ts.Kind == KindString && tt.Kind == KindIntegral {
		return true
	}
	return false
}

func isNumeric(k Kind) bool {
	return k == KindIntegral || k == KindFloating
}
