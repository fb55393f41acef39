package source

// Resolve converts a Span into start/end line/column positions within its
// buffer. Used by diagnostic rendering, which works in Span terms rather
// than packed SourceLocations.
func (m *Manager) Resolve(span Span) (start, end LineCol) {
	e := m.entry(span.File)
	if e == nil {
		return LineCol{}, LineCol{}
	}
	return toLineCol(e.lines(), span.Start), toLineCol(e.lines(), span.End)
}

// GetLine returns the 1-based line's text from a buffer, or "" if the
// line does not exist.
func (m *Manager) GetLine(buf BufferID, lineNum uint32) string {
	e := m.entry(buf)
	if e == nil || lineNum == 0 {
		return ""
	}
	idx := e.lines()
	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case int(lineNum-2) < len(idx):
		start = idx[lineNum-2] + 1
	default:
		return ""
	}
	if int(lineNum-1) < len(idx) {
		end = idx[lineNum-1]
	} else {
		end = uint32(len(e.content))
	}
	if int(start) >= len(e.content) {
		return ""
	}
	if int(end) > len(e.content) {
		end = uint32(len(e.content))
	}
	return string(e.content[start:end])
}

// Name returns a buffer's canonical or synthetic name.
func (m *Manager) Name(buf BufferID) string {
	e := m.entry(buf)
	if e == nil {
		return ""
	}
	return e.name
}

// Content returns a buffer's full byte content.
func (m *Manager) Content(buf BufferID) []byte {
	e := m.entry(buf)
	if e == nil {
		return nil
	}
	return e.content
}
