package source

import (
	"crypto/sha256"
	"os"
	"path/filepath"
)

// FileSet is Manager under its original name: the lexer, parser, symbol
// table, and diagnostic renderers all address buffers through this
// narrower file-oriented view rather than the full SourceManager contract
// (ReadHeader, CreateExpansionLoc, line directives) that the preprocessor
// and compilation layers use directly on *Manager.
type FileSet = Manager

// FileID is BufferID under the name those packages use.
type FileID = BufferID

// File is a read-only snapshot of one buffer's content and metadata,
// shaped for the lexer/parser/diagnostic call sites that index straight
// into Content and LineIdx rather than going through Manager's query
// methods.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// GetLine returns the 1-based line's text, or "" if it doesn't exist.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case int(lineNum-2) < len(f.LineIdx):
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}
	if int(lineNum-1) < len(f.LineIdx) {
		end = f.LineIdx[lineNum-1]
	} else {
		end = uint32(len(f.Content))
	}
	if int(start) >= len(f.Content) {
		return ""
	}
	if int(end) > len(f.Content) {
		end = uint32(len(f.Content))
	}
	return string(f.Content[start:end])
}

// NewFileSet creates an empty FileSet with the default include bookkeeping.
func NewFileSet() *FileSet { return NewManager() }

// NewFileSetWithBase creates a FileSet with a base directory for resolving
// relative paths passed to Add.
func NewFileSetWithBase(baseDir string) *FileSet {
	m := NewManager()
	m.baseDir = baseDir
	return m
}

func (m *Manager) SetBaseDir(dir string) { m.baseDir = dir }

func (m *Manager) BaseDir() string {
	if m.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return m.baseDir
}

// Add stores already-loaded bytes as a new buffer, unconditionally
// allocating a fresh FileID even if the same path was added before.
func (m *Manager) Add(path string, content []byte, flags FileFlags) FileID {
	canon := normalizePath(path)
	e := &bufferEntry{
		origin:       OriginFile,
		name:         canon,
		content:      content,
		flags:        flags,
		includedFrom: NoLocation,
	}
	buf := m.appendEntry(e)
	m.mu.Lock()
	m.byPath[canon] = buf.ID
	m.mu.Unlock()
	return buf.ID
}

// AddVirtual adds a virtual (in-memory) buffer under the FileVirtual flag.
func (m *Manager) AddVirtual(name string, content []byte) FileID {
	return m.Add(name, content, FileVirtual)
}

// Get returns the File snapshot for id. Content is computed lazily and
// cheaply since it aliases the entry's immutable byte slice.
func (m *Manager) Get(id FileID) *File {
	e := m.entry(id)
	if e == nil {
		return nil
	}
	return &File{
		ID:      id,
		Path:    e.name,
		Content: e.content,
		LineIdx: e.lines(),
		Hash:    sha256.Sum256(e.content),
		Flags:   e.flags,
	}
}

// FormatPath renders the file's path per mode ("absolute", "relative",
// "basename", or "auto" — short/relative paths pass through, long absolute
// ones collapse to their basename). baseDir is only consulted for
// "relative"; an empty baseDir falls back to the working directory.
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path
	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := filepath.Rel(baseDir, f.Path); err == nil {
			return filepath.ToSlash(rel)
		}
		return f.Path
	case "basename":
		return filepath.Base(f.Path)
	case "auto":
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return filepath.Base(f.Path)
	default:
		return f.Path
	}
}

// GetByPath looks up a previously loaded buffer by canonical path.
func (m *Manager) GetByPath(path string) (*File, bool) {
	m.mu.RLock()
	id, ok := m.byPath[normalizePath(path)]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return m.Get(id), true
}

// GetLatest returns the most recently assigned FileID for a canonical
// path.
func (m *Manager) GetLatest(path string) (FileID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byPath[normalizePath(path)]
	return id, ok
}
