package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
)

// Manager is the buffer and location authority for a compilation. It is
// safe for concurrent use: a single RWMutex protects the buffer vector
// and the path cache, and each buffer's line-offset table is computed
// once under its own sync.Once. The include directory lists and the
// include depth limit are set without taking the lock. Buffer content, once appended, is never
// mutated, so readers holding a *bufferEntry pointer never need the lock.
type Manager struct {
	mu sync.RWMutex

	buffers []*bufferEntry      // index 0 unused; BufferID 0 means "no buffer"
	byPath  map[string]BufferID // canonical path -> buffer, for ReadSource dedup

	systemDirs []string
	userDirs   []string
	virtualSeq int
	includeCap int // recursion depth bound for `include, default 1024
	baseDir    string
}

// NewManager creates an empty manager with the default include recursion
// bound.
func NewManager() *Manager {
	return &Manager{
		buffers:    make([]*bufferEntry, 1), // reserve index 0
		byPath:     make(map[string]BufferID),
		includeCap: 1024,
	}
}

// AddSystemIncludeDir / AddUserIncludeDir register search directories
// consulted by ReadHeader, in the order added.
func (m *Manager) AddSystemIncludeDir(dir string) { m.systemDirs = append(m.systemDirs, dir) }
func (m *Manager) AddUserIncludeDir(dir string)   { m.userDirs = append(m.userDirs, dir) }

// SetIncludeDepthLimit overrides the default `include recursion bound.
func (m *Manager) SetIncludeDepthLimit(n int) { m.includeCap = n }
func (m *Manager) IncludeDepthLimit() int     { return m.includeCap }

func (m *Manager) allocID() BufferID {
	id, err := safecast.Conv[uint32](len(m.buffers))
	if err != nil {
		panic(fmt.Errorf("buffer count overflow: %w", err))
	}
	return BufferID(id)
}

func (m *Manager) appendEntry(e *bufferEntry) SourceBuffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.id = m.allocID()
	m.buffers = append(m.buffers, e)
	return SourceBuffer{ID: e.id, Name: e.name, Data: e.content}
}

func (m *Manager) entry(id BufferID) *bufferEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id == 0 || int(id) >= len(m.buffers) {
		return nil
	}
	return m.buffers[id]
}

// ReadSource canonicalizes path, returns the existing buffer if already
// loaded, and otherwise reads the file, normalizes BOM/CRLF, and caches it
// by canonical path. The zero SourceBuffer is returned on any read error.
func (m *Manager) ReadSource(path string) (SourceBuffer, error) {
	canon := normalizePath(path)

	m.mu.RLock()
	if id, ok := m.byPath[canon]; ok {
		e := m.buffers[id]
		m.mu.RUnlock()
		return SourceBuffer{ID: e.id, Name: e.name, Data: e.content}, nil
	}
	m.mu.RUnlock()

	// #nosec G304 -- path is supplied by the compilation driver
	raw, err := os.ReadFile(path)
	if err != nil {
		return SourceBuffer{}, err
	}
	content, hadBOM := removeBOM(raw)
	content, hadCRLF := normalizeCRLF(content)
	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}

	m.mu.Lock()
	// Re-check under the write lock: another goroutine may have loaded the
	// same path while we were reading the file.
	if id, ok := m.byPath[canon]; ok {
		e := m.buffers[id]
		m.mu.Unlock()
		return SourceBuffer{ID: e.id, Name: e.name, Data: e.content}, nil
	}
	e := &bufferEntry{
		origin:       OriginFile,
		name:         canon,
		content:      content,
		flags:        flags,
		includedFrom: NoLocation,
	}
	e.id = m.allocID()
	m.buffers = append(m.buffers, e)
	m.byPath[canon] = e.id
	m.mu.Unlock()

	return SourceBuffer{ID: e.id, Name: e.name, Data: e.content}, nil
}

// ReadHeader searches for an `include target and reads it, recording
// includedFrom for provenance queries. System includes search only
// systemDirs; user includes search the including file's directory, then
// userDirs. Returns the zero SourceBuffer if no candidate is found or
// readable.
func (m *Manager) ReadHeader(path string, includedFrom SourceLocation, isSystem bool) SourceBuffer {
	var candidates []string
	if isSystem {
		for _, d := range m.systemDirs {
			candidates = append(candidates, filepath.Join(d, path))
		}
	} else {
		if includedFrom.Valid() {
			if parent := m.entry(includedFrom.Buffer()); parent != nil && parent.origin == OriginFile {
				candidates = append(candidates, filepath.Join(filepath.Dir(parent.name), path))
			}
		}
		for _, d := range m.userDirs {
			candidates = append(candidates, filepath.Join(d, path))
		}
	}

	for _, c := range candidates {
		if buf, err := m.ReadSource(c); err == nil && buf.Valid() {
			m.mu.Lock()
			m.buffers[buf.ID].includedFrom = includedFrom
			m.mu.Unlock()
			return buf
		}
	}

	// Fall back to registered in-memory buffers, by candidate path and by
	// the bare include path itself.
	for _, c := range append(candidates, normalizePath(path)) {
		m.mu.Lock()
		id, ok := m.byPath[normalizePath(c)]
		if ok {
			e := m.buffers[id]
			e.includedFrom = includedFrom
			m.mu.Unlock()
			return SourceBuffer{ID: id, Name: e.name, Data: e.content}
		}
		m.mu.Unlock()
	}
	return SourceBuffer{}
}

// AssignText creates a named in-memory buffer. If path is empty a synthetic
// name ("<virtual-N>") is generated. Content is normalized the same way
// ReadSource normalizes disk content.
func (m *Manager) AssignText(path string, text []byte, includedFrom SourceLocation) SourceBuffer {
	content, hadBOM := removeBOM(text)
	content, hadCRLF := normalizeCRLF(content)
	flags := FileVirtual
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}

	m.mu.Lock()
	name := path
	if name == "" {
		m.virtualSeq++
		name = fmt.Sprintf("<virtual-%d>", m.virtualSeq)
	} else {
		name = normalizePath(name)
	}
	m.mu.Unlock()

	e := &bufferEntry{
		origin:       OriginFile,
		name:         name,
		content:      content,
		flags:        flags,
		includedFrom: includedFrom,
	}
	buf := m.appendEntry(e)
	if path != "" {
		m.mu.Lock()
		m.byPath[name] = e.id
		m.mu.Unlock()
	}
	return buf
}

// CreateExpansionLoc allocates an expansion buffer standing in for one
// macro invocation's replacement text (or one substituted argument).
// expansionRange is the range in the original buffer that the expansion
// replaces; offsets assigned within the new buffer's content track
// position inside the macro body/argument text supplied by the caller.
func (m *Manager) CreateExpansionLoc(original SourceLocation, expansionRange SourceRange, body []byte, macroName string, isArg bool) SourceLocation {
	origin := OriginMacroBody
	if isArg {
		origin = OriginMacroArg
	}
	e := &bufferEntry{
		origin:       origin,
		name:         macroName,
		content:      body,
		expandedFrom: original,
		expansionEnd: expansionRange.End,
		macroName:    macroName,
	}
	buf := m.appendEntry(e)
	return MakeLocation(buf.ID, 0)
}
