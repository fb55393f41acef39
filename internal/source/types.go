package source

import "fmt"

// BufferID identifies one buffer (file, macro expansion, or in-memory text)
// inside a SourceManager. IDs are allocated densely starting at 1 and are
// never reused; 0 is reserved for "no buffer".
type BufferID uint32

// FileFlags encodes metadata recorded about a buffer at read time.
type FileFlags uint8

const (
	FileVirtual        FileFlags = 1 << iota // supplied from memory, not disk
	FileHadBOM                               // UTF-8 BOM stripped on read
	FileNormalizedCRLF                       // CRLF sequences normalized to LF
)

// Span is a half-open byte range [Start, End) within one buffer. It is the
// range type threaded through tokens, CST nodes, and diagnostics.
type Span struct {
	File  BufferID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool { return s.Start == s.End }
func (s Span) Len() uint32 { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span enclosing both s and other. Spans from
// different buffers cannot be merged; s is returned unchanged in that case.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

func (s Span) ShiftLeft(n uint32) Span {
	return Span{File: s.File, Start: s.Start - n, End: s.End - n}
}

func (s Span) ShiftRight(n uint32) Span {
	return Span{File: s.File, Start: s.Start + n, End: s.End + n}
}

// Start returns a zero-length span at s's start offset.
func (s Span) StartLoc() Span { return Span{File: s.File, Start: s.Start, End: s.Start} }

// --- packed cross-buffer SourceLocation -----------------------------------
//
// Span is cheap and buffer-local, which is all token and CST storage needs.
// SourceLocation is the single-word, cross-buffer form the SourceManager
// uses internally to order locations that may live in different buffers
// (a file versus one of its macro expansions) without consulting the
// manager. The packing mirrors the layout used by comparable C++ front
// ends: 28 bits of buffer ID, 36 bits of byte offset, fit into one uint64.

const (
	bufferIDBits = 28
	offsetBits   = 36
	bufferIDMask = (uint64(1) << bufferIDBits) - 1
	offsetMask   = (uint64(1) << offsetBits) - 1
)

// SourceLocation packs a BufferID and byte offset into one machine word.
type SourceLocation uint64

// NoLocation is the reserved all-ones bit pattern meaning "nowhere". It can
// never collide with a real location since buffer IDs start at 1.
const NoLocation SourceLocation = SourceLocation(bufferIDMask<<offsetBits | offsetMask)

// MakeLocation packs a buffer ID and byte offset. The offset is truncated
// to offsetBits.
func MakeLocation(buf BufferID, offset uint64) SourceLocation {
	return SourceLocation((uint64(buf)&bufferIDMask)<<offsetBits | (offset & offsetMask))
}

// LocationOf returns the packed location for a span's start offset.
func LocationOf(s Span) SourceLocation {
	return MakeLocation(s.File, uint64(s.Start))
}

// EndLocationOf returns the packed location for a span's end offset.
func EndLocationOf(s Span) SourceLocation {
	return MakeLocation(s.File, uint64(s.End))
}

func (l SourceLocation) Buffer() BufferID { return BufferID((uint64(l) >> offsetBits) & bufferIDMask) }
func (l SourceLocation) Offset() uint64   { return uint64(l) & offsetMask }
func (l SourceLocation) Valid() bool      { return l != NoLocation }

// SourceRange is an ordered pair of packed locations, used where two
// endpoints may not share a buffer (an expansion range spanning into its
// originating macro argument, for instance).
type SourceRange struct {
	Start SourceLocation
	End   SourceLocation
}

func NewRange(start, end SourceLocation) SourceRange { return SourceRange{Start: start, End: end} }

// LineCol is a 1-based human-readable position within a source file.
type LineCol struct {
	Line uint32
	Col  uint32
}
