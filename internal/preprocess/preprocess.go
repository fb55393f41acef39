// Package preprocess expands SystemVerilog compiler directives into a flat
// token stream for internal/parser to consume. It sits directly on top of
// internal/lexer, which only recognizes directive syntax and hands it back
// as TriviaDirective; this package is what actually interprets `define,
// `ifdef/`ifndef/`elsif/`else/`endif, `include, and the remaining
// bookkeeping directives (`line, `timescale, `default_nettype,
// `celldefine/`endcelldefine, `resetall, `pragma, `unconnected_drive).
package preprocess

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"svlang/internal/diag"
	"svlang/internal/lexer"
	"svlang/internal/source"
	"svlang/internal/token"
)

// Options configures a Preprocessor.
type Options struct {
	Manager  *source.Manager
	Reporter diag.Reporter
	Version  token.LanguageVersion
	// MaxIncludeDepth caps `include nesting; zero uses the Manager's own
	// default (1024).
	MaxIncludeDepth int
	// MaxMacroDepth caps nested macro expansion frames; zero means the
	// default of 32.
	MaxMacroDepth int
}

// frame is one lexer pushed onto the include/macro-expansion stack.
type frame struct {
	lx         *lexer.Lexer
	file       *source.File
	macroName  string // non-empty when this frame is a macro expansion
	pending    *token.Token
	leadingIdx int
}

// Preprocessor drives a stack of internal/lexer.Lexer instances, flattening
// `include and macro expansion into one token stream while applying
// `ifdef/`ifndef conditional compilation. The parser never sees a
// TriviaDirective whose Name this package recognizes.
type Preprocessor struct {
	opts   Options
	mgr    *source.Manager
	stack  []frame
	macros *Table
	cond   condStack

	// expanding guards against a macro re-entering its own expansion; it
	// counts active expansion frames per macro name across the stack.
	expanding map[string]int

	DefaultNetType string
	Timescale      string
	Celldefine     bool

	condEOFReported bool

	look *token.Token
}

// New creates a Preprocessor reading from root. opts.Manager must be the
// same *source.Manager that produced root, since `include and macro
// expansion allocate further buffers from it.
func New(root *source.File, opts Options) *Preprocessor {
	p := &Preprocessor{
		opts:           opts,
		mgr:            opts.Manager,
		macros:         NewTable(),
		expanding:      make(map[string]int),
		DefaultNetType: "wire",
	}
	p.pushFrame(root, "")
	p.definePredefined()
	return p
}

// Macros exposes the live macro table, mainly so a driver can pre-seed
// `+define+NAME=VALUE command-line macros before the first Next() call.
func (p *Preprocessor) Macros() *Table { return p.macros }

func (p *Preprocessor) definePredefined() {
	p.macros.Define(&Macro{Name: "SYSTEM_VERILOG"})
}

func (p *Preprocessor) pushFrame(f *source.File, macroName string) {
	p.stack = append(p.stack, frame{
		lx:        lexer.New(f, lexer.Options{Reporter: p.opts.Reporter, Version: p.opts.Version}),
		file:      f,
		macroName: macroName,
	})
}

func (p *Preprocessor) top() *frame {
	if len(p.stack) == 0 {
		return nil
	}
	return &p.stack[len(p.stack)-1]
}

func (p *Preprocessor) popFrame() {
	fr := p.stack[len(p.stack)-1]
	if fr.macroName != "" {
		p.expanding[fr.macroName]--
		if p.expanding[fr.macroName] <= 0 {
			delete(p.expanding, fr.macroName)
		}
	}
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *Preprocessor) err(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
}

// Next returns the next preprocessed token. Directive trivia is consumed
// and acted on, text in a false `ifdef/`ifndef branch is skipped, and
// macro invocations are expanded and re-lexed transparently through a
// nested lexer frame.
func (p *Preprocessor) Next() token.Token {
	if p.look != nil {
		t := *p.look
		p.look = nil
		return t
	}
	return p.next()
}

// Peek returns the next token without consuming it.
func (p *Preprocessor) Peek() token.Token {
	if p.look == nil {
		t := p.next()
		p.look = &t
	}
	return *p.look
}

// EmptySpan returns a zero-length span at the current read position of
// the innermost active frame, for use as a placeholder before any real
// token has been consumed.
func (p *Preprocessor) EmptySpan() source.Span {
	if fr := p.top(); fr != nil && fr.file != nil {
		return source.Span{File: fr.file.ID}
	}
	return source.Span{}
}

func (p *Preprocessor) next() token.Token {
outer:
	for {
		fr := p.top()
		if fr == nil {
			return token.Token{Kind: token.EOF}
		}

		if fr.pending == nil {
			t := fr.lx.Next()
			fr.pending = &t
			fr.leadingIdx = 0
		}

		for fr.leadingIdx < len(fr.pending.Leading) {
			tr := fr.pending.Leading[fr.leadingIdx]
			fr.leadingIdx++
			if tr.Kind != token.TriviaDirective || tr.Directive == nil {
				continue
			}
			if directiveKeywords[tr.Directive.Name] {
				if p.dispatch(tr) {
					continue outer
				}
				continue
			}
			if !p.cond.active() {
				continue
			}
			if p.expandMacro(tr) {
				continue outer
			}
		}

		if fr.pending.Kind == token.EOF {
			if len(p.stack) == 1 {
				if p.cond.depth() > 0 && !p.condEOFReported {
					p.condEOFReported = true
					p.err(diag.PreUnterminatedCondition, fr.pending.Span, "`ifdef/`ifndef left open at end of input")
				}
				return *fr.pending
			}
			p.popFrame()
			continue outer
		}

		if !p.cond.active() {
			fr.pending = nil
			continue outer
		}

		result := *fr.pending
		result.Leading = dropDirectiveTrivia(fr.pending.Leading)
		fr.pending = nil
		return result
	}
}

func dropDirectiveTrivia(in []token.Trivia) []token.Trivia {
	out := make([]token.Trivia, 0, len(in))
	for _, t := range in {
		if t.Kind == token.TriviaDirective {
			continue
		}
		out = append(out, t)
	}
	return out
}

// dispatch interprets one known preprocessor keyword directive, returning
// true if it pushed a new frame onto the stack (so the caller must re-read
// p.top() rather than keep using its now possibly-stale frame pointer).
func (p *Preprocessor) dispatch(tr token.Trivia) bool {
	d := tr.Directive
	switch d.Name {
	case "define":
		if !p.cond.active() {
			return false
		}
		m, ok := parseDefine(d.Payload)
		if !ok {
			p.err(diag.PreBadDirectiveArgs, tr.Span, "malformed `define directive")
			return false
		}
		m.DefSpan = tr.Span
		if p.macros.Define(m) {
			p.err(diag.PreMacroRedefined, tr.Span, fmt.Sprintf("macro `%s` redefined with a different body", m.Name))
		}
	case "undef":
		if p.cond.active() {
			p.macros.Undef(strings.TrimSpace(d.Payload))
		}
	case "undefineall":
		if p.cond.active() {
			p.macros.UndefAll()
		}
	case "ifdef":
		p.cond.pushIf(p.macros.Defined(strings.TrimSpace(d.Payload)))
	case "ifndef":
		p.cond.pushIf(!p.macros.Defined(strings.TrimSpace(d.Payload)))
	case "elsif":
		if !p.cond.elsif(p.macros.Defined(strings.TrimSpace(d.Payload))) {
			p.err(diag.PreUnexpectedElse, tr.Span, "`elsif with no matching `ifdef/`ifndef")
		}
	case "else":
		if !p.cond.els() {
			p.err(diag.PreUnexpectedElse, tr.Span, "`else with no matching `ifdef/`ifndef")
		}
	case "endif":
		if !p.cond.endif() {
			p.err(diag.PreUnexpectedEndif, tr.Span, "`endif with no matching `ifdef/`ifndef")
		}
	case "include":
		if !p.cond.active() {
			return false
		}
		return p.doInclude(tr)
	case "line":
		if p.cond.active() {
			p.doLineDirective(tr)
		}
	case "error":
		if p.cond.active() {
			p.err(diag.PreErrorDirective, tr.Span, strings.TrimSpace(d.Payload))
		}
	case "timescale":
		if p.cond.active() {
			p.Timescale = strings.TrimSpace(d.Payload)
		}
	case "default_nettype":
		if p.cond.active() {
			p.DefaultNetType = strings.TrimSpace(d.Payload)
		}
	case "celldefine":
		p.Celldefine = true
	case "endcelldefine":
		p.Celldefine = false
	case "resetall":
		p.macros.UndefAll()
		p.cond = condStack{}
		p.DefaultNetType = "wire"
	case "pragma", "unconnected_drive", "nounconnected_drive":
		// Accepted; these have no effect on token expansion.
	}
	return false
}

func (p *Preprocessor) doInclude(tr token.Trivia) bool {
	payload := strings.TrimSpace(tr.Directive.Payload)
	isSystem := len(payload) >= 2 && payload[0] == '<' && payload[len(payload)-1] == '>'
	isUser := len(payload) >= 2 && payload[0] == '"' && payload[len(payload)-1] == '"'
	if !isSystem && !isUser {
		p.err(diag.PreBadInclude, tr.Span, "malformed `include argument")
		return false
	}
	path := payload[1 : len(payload)-1]

	if p.includeDepth() >= p.maxIncludeDepth() {
		p.err(diag.PreIncludeCycle, tr.Span, "`include nesting too deep (possible cycle)")
		return false
	}

	loc := source.LocationOf(tr.Span)
	buf := p.mgr.ReadHeader(path, loc, isSystem)
	if !buf.Valid() {
		p.err(diag.PreIncludeNotFound, tr.Span, fmt.Sprintf("cannot find include file `%s`", path))
		return false
	}
	p.pushFrame(p.mgr.Get(buf.ID), "")
	return true
}

func (p *Preprocessor) includeDepth() int {
	depth := 0
	for _, fr := range p.stack {
		if fr.macroName == "" {
			depth++
		}
	}
	return depth - 1
}

func (p *Preprocessor) maxIncludeDepth() int {
	if p.opts.MaxIncludeDepth > 0 {
		return p.opts.MaxIncludeDepth
	}
	if p.mgr != nil {
		return p.mgr.IncludeDepthLimit()
	}
	return 1024
}

// expandMacro expands one macro-invocation directive trivia, returning
// true if a new frame was pushed.
func (p *Preprocessor) expandMacro(tr token.Trivia) bool {
	d := tr.Directive
	name := d.Name

	switch name {
	case "__LINE__":
		return p.pushExpansionText(tr, strconv.Itoa(lineOf(p.top().file, tr.Span.Start)), name)
	case "__FILE__":
		path := ""
		if f := p.top().file; f != nil {
			path = f.Path
		}
		return p.pushExpansionText(tr, strconv.Quote(path), name)
	}

	m, ok := p.macros.Lookup(name)
	if !ok {
		p.err(diag.PreUndefinedMacro, tr.Span, fmt.Sprintf("use of undefined macro `%s`", name))
		return false
	}
	if p.expanding[name] > 0 {
		p.err(diag.PreSelfRecursiveMacro, tr.Span, fmt.Sprintf("macro `%s` is self-recursive", name))
		return false
	}
	if p.macroDepth() >= p.maxMacroDepth() {
		p.err(diag.PreSelfRecursiveMacro, tr.Span, fmt.Sprintf("macro expansion nests deeper than %d", p.maxMacroDepth()))
		return false
	}

	var body string
	if m.FnLike {
		trimmed := strings.TrimLeft(d.Payload, " \t")
		if trimmed == "" || trimmed[0] != '(' {
			p.err(diag.PreMacroArgCount, tr.Span, fmt.Sprintf("function-like macro `%s` used without an argument list", name))
			return false
		}
		end := matchParens(trimmed)
		if end < 0 {
			p.err(diag.PreBadDirectiveArgs, tr.Span, fmt.Sprintf("unbalanced parentheses in `%s` invocation", name))
			return false
		}
		args := splitArgs(trimmed[1 : end-1])
		trailing := trimmed[end:]

		params := m.Params
		if m.Variadic && len(params) > 0 {
			fixed := params[:len(params)-1]
			if len(args) > len(fixed) {
				rest := strings.Join(args[len(fixed):], ", ")
				args = append(append([]string{}, args[:len(fixed)]...), rest)
			}
		}
		if !m.Variadic && len(args) != len(params) {
			p.err(diag.PreMacroArgCount, tr.Span, fmt.Sprintf("macro `%s` expects %d argument(s), got %d", name, len(params), len(args)))
		}
		body = substitute(m.Body, params, args) + trailing
	} else {
		// An object-like macro's Payload is whatever trailing text shared
		// the invocation's physical line; re-append it so code following
		// the macro on that line (e.g. "assign x = `WIDTH - 1;") isn't
		// lost, since the lexer already folded it into this trivia.
		body = m.Body + d.Payload
	}

	return p.pushExpansionText(tr, body, name)
}

func (p *Preprocessor) pushExpansionText(tr token.Trivia, text string, name string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	loc := source.LocationOf(tr.Span)
	rng := source.NewRange(loc, source.EndLocationOf(tr.Span))
	newLoc := p.mgr.CreateExpansionLoc(loc, rng, []byte(text), name, false)
	f := p.mgr.Get(newLoc.Buffer())
	p.expanding[name]++
	p.pushFrame(f, name)
	return true
}

// doLineDirective parses `line <number> "<file>" <level> and installs the
// remap on the source manager, so subsequent line-number queries for this
// buffer report the overridden position.
func (p *Preprocessor) doLineDirective(tr token.Trivia) {
	fields := strings.Fields(tr.Directive.Payload)
	if len(fields) < 2 {
		p.err(diag.PreBadDirectiveArgs, tr.Span, "malformed `line directive")
		return
	}
	num, err := strconv.Atoi(fields[0])
	if err != nil || num < 1 {
		p.err(diag.PreBadDirectiveArgs, tr.Span, "`line number must be a positive integer")
		return
	}
	name, err := strconv.Unquote(fields[1])
	if err != nil {
		p.err(diag.PreBadDirectiveArgs, tr.Span, "`line file name must be a quoted string")
		return
	}
	level := 0
	if len(fields) > 2 {
		if level, err = strconv.Atoi(fields[2]); err != nil || level < 0 || level > 2 {
			p.err(diag.PreBadDirectiveArgs, tr.Span, "`line level must be 0, 1, or 2")
			return
		}
	}
	p.mgr.AddLineDirective(source.LocationOf(tr.Span), num, name, level)
}

// macroDepth counts the active macro-expansion frames on the stack.
func (p *Preprocessor) macroDepth() int {
	n := 0
	for i := range p.stack {
		if p.stack[i].macroName != "" {
			n++
		}
	}
	return n
}

func (p *Preprocessor) maxMacroDepth() int {
	if p.opts.MaxMacroDepth > 0 {
		return p.opts.MaxMacroDepth
	}
	return 32
}

func lineOf(f *source.File, offset uint32) int {
	if f == nil {
		return 0
	}
	n := sort.Search(len(f.LineIdx), func(i int) bool { return f.LineIdx[i] >= offset })
	return n + 1
}
