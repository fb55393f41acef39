// Package serialize emits the elaborated model as a tree of name/value
// pairs: every symbol serializes its kind, name, type,
// location, and kind-specific detail; integer constants serialize as
// {width, signed, four_state, bits}. The tree encodes to JSON or to
// msgpack through the same builder.
package serialize

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"svlang/internal/compilation"
	"svlang/internal/consteval"
	"svlang/internal/layout"
	"svlang/internal/source"
	"svlang/internal/svint"
	"svlang/internal/symbols"
	"svlang/internal/types"
)

// Serializer walks one compilation's symbol table into a generic tree.
type Serializer struct {
	comp    *compilation.Compilation
	layouts *layout.LayoutEngine
	// EvaluateParams folds parameter/localparam initializers into
	// constant values in the output.
	EvaluateParams bool
}

func New(comp *compilation.Compilation) *Serializer {
	return &Serializer{
		comp:           comp,
		layouts:        layout.New(comp.Types),
		EvaluateParams: true,
	}
}

// Tree builds the whole elaborated model rooted at $unit.
func (s *Serializer) Tree() map[string]any {
	return map[string]any{
		"kind":    "CompilationUnit",
		"members": s.scopeMembers(s.comp.Table.Unit),
	}
}

// WriteJSON encodes the tree as indented JSON.
func (s *Serializer) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Tree())
}

// WriteMsgpack encodes the tree in msgpack framing for tool-to-tool
// hand-off without JSON round-trip cost.
func (s *Serializer) WriteMsgpack(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(s.Tree())
}

func (s *Serializer) scopeMembers(scope symbols.ScopeID) []any {
	sc := s.comp.Table.Scopes.Get(scope)
	if sc == nil {
		return nil
	}
	out := make([]any, 0, len(sc.Symbols))
	for _, id := range sc.Symbols {
		if node := s.symbol(id); node != nil {
			out = append(out, node)
		}
	}
	return out
}

func (s *Serializer) symbol(id symbols.SymbolID) map[string]any {
	sym := s.comp.Table.Symbols.Get(id)
	if sym == nil {
		return nil
	}
	name, _ := s.comp.Strings.Lookup(sym.Name)
	node := map[string]any{
		"kind": sym.Kind.String(),
		"name": name,
	}
	if sym.Type.IsValid() {
		node["type"] = types.Label(s.comp.Types, sym.Type)
	}
	if !sym.Span.Empty() || sym.Span.File != 0 {
		node["location"] = map[string]any{
			"file":  s.fileName(sym.Span.File),
			"start": sym.Span.Start,
			"end":   sym.Span.End,
		}
	}
	switch sym.Kind {
	case symbols.KindParameter, symbols.KindLocalParam:
		node["local"] = sym.Kind == symbols.KindLocalParam
		if s.EvaluateParams {
			if init, ok := s.comp.Binder.Inits[id]; ok {
				if v := s.comp.Eval.Eval(init); !v.IsError() {
					node["value"] = Constant(v)
				}
			}
		}
	case symbols.KindTypedef:
		if l, err := s.layouts.LayoutOf(sym.Type); err == nil {
			ln := map[string]any{"bits": l.Bits}
			if len(l.FieldOffsets) > 0 {
				ln["field_offsets"] = l.FieldOffsets
			}
			node["layout"] = ln
		}
	case symbols.KindSubroutine:
		if sym.Type.IsValid() {
			node["returnType"] = types.Label(s.comp.Types, sym.Type)
		}
		if sym.Body.IsValid() {
			args := make([]any, 0, 4)
			body := s.comp.Table.Scopes.Get(sym.Body)
			if body != nil {
				for _, pid := range body.Symbols {
					p := s.comp.Table.Symbols.Get(pid)
					if p == nil || !p.Flags.Has(symbols.FlagPort) {
						continue
					}
					pname, _ := s.comp.Strings.Lookup(p.Name)
					args = append(args, map[string]any{
						"name": pname,
						"type": types.Label(s.comp.Types, p.Type),
					})
				}
			}
			node["arguments"] = args
		}
	case symbols.KindModule, symbols.KindInterface, symbols.KindProgram,
		symbols.KindPackage, symbols.KindInstance, symbols.KindBlock,
		symbols.KindGenerateBlock:
		if sym.Body.IsValid() && sym.Kind != symbols.KindInstance {
			node["members"] = s.scopeMembers(sym.Body)
		}
		if sym.Kind == symbols.KindInstance && sym.Body.IsValid() {
			if def := s.moduleNameOf(sym.Body); def != "" {
				node["definition"] = def
			}
		}
	}
	return node
}

func (s *Serializer) moduleNameOf(scope symbols.ScopeID) string {
	sc := s.comp.Table.Scopes.Get(scope)
	if sc == nil || !sc.Owner.Item.IsValid() {
		return ""
	}
	if it := s.comp.Arenas.Items.Get(sc.Owner.Item); it != nil {
		return it.Name
	}
	return ""
}

func (s *Serializer) fileName(id source.FileID) string {
	if f := s.comp.Manager.Get(id); f != nil {
		return f.Path
	}
	return ""
}

// Constant renders a ConstantValue as a name/value node. Integers carry
// the four-state digit string alongside width/signedness so the encoding
// is lossless for X/Z bits.
func Constant(v consteval.Value) map[string]any {
	switch v.Kind {
	case consteval.VInt:
		return IntConstant(v.Int)
	case consteval.VReal:
		return map[string]any{"kind": "real", "value": v.Real}
	case consteval.VShortReal:
		return map[string]any{"kind": "shortreal", "value": v.Real}
	case consteval.VString:
		return map[string]any{"kind": "string", "value": v.Str}
	case consteval.VNull:
		return map[string]any{"kind": "null"}
	case consteval.VArray, consteval.VQueue, consteval.VStruct:
		elems := make([]any, 0, len(v.Elems))
		for _, e := range v.Elems {
			elems = append(elems, Constant(e))
		}
		return map[string]any{"kind": "array", "elements": elems}
	default:
		return map[string]any{"kind": "error"}
	}
}

// IntConstant is the §6.4 integer shape: {width, signed, four_state, bits}.
func IntConstant(v svint.SVInt) map[string]any {
	return map[string]any{
		"width":      v.Width,
		"signed":     v.Signed,
		"four_state": v.IsUnknown(),
		"bits":       v.Digits(),
	}
}
