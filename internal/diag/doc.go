// Package diag defines the core diagnostic model shared by all pipeline phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the lexer, preprocessor, parser, binder, and constant
//     evaluator.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, CLI integration, or
// interactive behaviour. Rendering responsibilities live in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – enum (Info, Warning, Error, Fatal) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string
//     form, numbered by pipeline phase: lexical 1000s, preprocessor 1500s,
//     syntax 2000s, semantic 3000s, constant evaluation 4000s.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fixes – optional structured edits a tool may apply.
//
// Notes should be used sparingly: each note must add new context (e.g. "value
// declared here") rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage: construct a
// ReportBuilder via NewReportBuilder (or the helpers ReportError /
// ReportWarning / ReportInfo) and chain WithNote before calling Emit. When no
// metadata is needed, phases may call Reporter.Report(...) directly.
// diag.BagReporter aggregates into a Bag, which supports sorting,
// deduplication, and a hard cap; DedupReporter filters duplicates at the
// emission boundary instead.
//
// Keep the data model deterministic: diagnostics are emitted in insertion
// order within one compilation (the public API sorts by location only on
// request), and tests serialise bags via the golden helpers.
package diag
