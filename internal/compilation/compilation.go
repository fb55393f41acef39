// Package compilation ties the pipeline together: it owns the arenas,
// interned types, symbol table, binder, and constant evaluator for one
// compilation, and orchestrates lexing, preprocessing, parsing, and
// two-phase elaboration over a set of source files sharing one
// source.Manager.
package compilation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"svlang/internal/ast"
	"svlang/internal/binder"
	"svlang/internal/consteval"
	"svlang/internal/diag"
	"svlang/internal/observ"
	"svlang/internal/parser"
	"svlang/internal/preprocess"
	"svlang/internal/source"
	"svlang/internal/symbols"
	"svlang/internal/token"
	"svlang/internal/trace"
	"svlang/internal/types"
)

// Compilation is the root container: every
// buffer, arena node, symbol, type, bound tree, and diagnostic lives
// exactly as long as it does. It exposes a single-threaded view for
// elaboration and binding; only file loading fans out.
type Compilation struct {
	Opts Options

	Manager *source.Manager
	Strings *source.Interner
	Arenas  *ast.Builder
	Types   *types.Interner
	Table   *symbols.Table
	Binder  *binder.Binder
	Eval    *consteval.Evaluator

	Bag      *diag.Bag
	Reporter diag.Reporter
	Timer    *observ.Timer
	Tracer   trace.Tracer

	Files []ast.FileID

	// preprocessor state snapshot from the most recent unit parsed
	DefaultNetType string
	Timescale      string
}

// New builds an empty compilation. mgr may be nil (a fresh private
// manager) or shared across compilations and threads.
func New(opts Options, mgr *source.Manager) *Compilation {
	opts = opts.withDefaults()
	if mgr == nil {
		mgr = source.NewManager()
	}
	for _, dir := range opts.IncludeDirsUser {
		mgr.AddUserIncludeDir(dir)
	}
	for _, dir := range opts.IncludeDirsSystem {
		mgr.AddSystemIncludeDir(dir)
	}
	mgr.SetIncludeDepthLimit(opts.MaxIncludeDepth)

	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}
	strings := source.NewInterner()
	arenas := ast.NewBuilder(ast.Hints{})
	table := symbols.NewTable(symbols.Hints{}, strings, reporter)
	ty := types.NewInterner()

	b := binder.New(arenas.Files, arenas.Items, arenas.Exprs, arenas.Stmts, arenas.Types, table, ty, strings, reporter)
	b.AllowHierarchicalInConst = opts.AllowHierarchicalInConst

	ev := consteval.New(b, reporter, consteval.Options{MaxDepth: opts.MaxConstexprDepth})
	b.ConstFolder = consteval.Folder(ev)

	c := &Compilation{
		Opts:           opts,
		Manager:        mgr,
		Strings:        strings,
		Arenas:         arenas,
		Types:          ty,
		Table:          table,
		Binder:         b,
		Eval:           ev,
		Bag:            bag,
		Reporter:       reporter,
		Timer:          observ.NewTimer(),
		Tracer:         trace.Nop,
		DefaultNetType: opts.DefaultNetType,
		Timescale:      opts.DefaultTimescale,
	}
	return c
}

// AddText parses an in-memory compilation unit (a named buffer) and
// eagerly populates scopes with its design elements; per-symbol
// elaboration stays lazy.
func (c *Compilation) AddText(path string, text string) ast.FileID {
	if path == "" {
		path = fmt.Sprintf("<unnamed%d>", len(c.Files))
	}
	buf := c.Manager.AddVirtual(path, []byte(text))
	return c.parseBuffer(buf)
}

// AddFile reads one file through the shared manager and parses it.
func (c *Compilation) AddFile(path string) (ast.FileID, error) {
	sb, err := c.Manager.ReadSource(path)
	if err != nil {
		return ast.NoFileID, err
	}
	if !sb.Valid() {
		return ast.NoFileID, fmt.Errorf("compilation: cannot read %q", path)
	}
	return c.parseBuffer(sb.ID), nil
}

// AddFiles loads paths concurrently (the manager's readers-writer lock
// makes the loads safe), then parses each in order. Parsing stays
// sequential: it mutates the shared arenas and symbol table, which the
// concurrency model keeps single-threaded per compilation.
func (c *Compilation) AddFiles(ctx context.Context, paths []string) error {
	idx := c.Timer.Begin("load")
	g, _ := errgroup.WithContext(ctx)
	ids := make([]source.BufferID, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			sb, err := c.Manager.ReadSource(path)
			if err != nil {
				return err
			}
			if !sb.Valid() {
				return fmt.Errorf("compilation: cannot read %q", path)
			}
			ids[i] = sb.ID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.Timer.End(idx, "failed")
		return err
	}
	c.Timer.End(idx, fmt.Sprintf("%d files", len(paths)))

	for _, id := range ids {
		c.parseBuffer(id)
	}
	return nil
}

func (c *Compilation) parseBuffer(id source.BufferID) ast.FileID {
	file := c.Manager.Get(id)
	if file == nil {
		return ast.NoFileID
	}
	idx := c.Timer.Begin("parse")
	span := trace.Begin(c.Tracer, trace.ScopePass, "parse:"+file.Path, 0)

	pp := preprocess.New(file, preprocess.Options{
		Manager:         c.Manager,
		Reporter:        c.Reporter,
		Version:         c.Opts.LanguageVersion,
		MaxIncludeDepth: c.Opts.MaxIncludeDepth,
		MaxMacroDepth:   c.Opts.MaxMacroDepth,
	})
	for _, m := range c.Opts.PredefinedMacros {
		pp.Macros().Define(&preprocess.Macro{Name: m.Name, Body: m.Body})
	}
	result := parser.ParseFile(c.Manager, pp, c.Arenas, parser.Options{Reporter: c.Reporter})

	// Snapshot the directive-driven semantic state at end of unit.
	if pp.DefaultNetType != "" {
		c.DefaultNetType = pp.DefaultNetType
	}
	if pp.Timescale != "" {
		c.Timescale = pp.Timescale
	}

	if result.File.IsValid() {
		c.Files = append(c.Files, result.File)
		c.Binder.BindFile(result.File)
	}
	span.End("")
	c.Timer.End(idx, file.Path)
	return result.File
}

// Root returns the compilation unit ($unit) scope.
func (c *Compilation) Root() symbols.ScopeID { return c.Table.Unit }

// Diagnostics returns the accumulated diagnostic bag; sorted by source
// location when sorted is true.
func (c *Compilation) Diagnostics(sorted bool) *diag.Bag {
	if sorted {
		c.Bag.Sort()
	}
	return c.Bag
}

// Version reports the language version this compilation targets.
func (c *Compilation) Version() token.LanguageVersion {
	if c.Opts.LanguageVersion == 0 {
		return token.Latest
	}
	return c.Opts.LanguageVersion
}
