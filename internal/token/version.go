package token

// LanguageVersion selects which standard revision's keyword set is active.
// Keyword recognition is versioned so identifiers legal in an earlier
// revision (e.g. a user variable named "interface" under Verilog-1995) keep
// lexing as Ident when an older version is requested.
type LanguageVersion uint8

const (
	// The zero value is intentionally unassigned so a zero-valued
	// LanguageVersion (e.g. an unset Options.Version) is distinguishable
	// from an explicit request for the oldest supported revision.
	_ LanguageVersion = iota
	V1995
	V2001
	V2005
	V2009
	V2012
	V2017
	V2023
)

// Latest is the default version new compilations target.
const Latest = V2023
