package source

import "sort"

// AddLineDirective installs a `line directive remap for the buffer loc
// addresses. Directives are kept sorted by raw in-file line number; a
// directive at the same raw line replaces any earlier one there.
//
// level mirrors the standard's optional `line level argument (0/1/2); it is
// recorded for completeness but does not affect the remap arithmetic.
func (m *Manager) AddLineDirective(loc SourceLocation, lineNum int, newName string, level int) {
	e := m.entry(loc.Buffer())
	if e == nil || e.origin != OriginFile {
		return
	}
	raw := e.rawLineNumber(uint32(loc.Offset()))

	m.mu.Lock()
	defer m.mu.Unlock()
	d := lineDirective{rawLine: raw, newLine: lineNum, name: newName}
	i := sort.Search(len(e.lineDirs), func(i int) bool { return e.lineDirs[i].rawLine >= raw })
	switch {
	case i < len(e.lineDirs) && e.lineDirs[i].rawLine == raw:
		e.lineDirs[i] = d
	default:
		e.lineDirs = append(e.lineDirs, lineDirective{})
		copy(e.lineDirs[i+1:], e.lineDirs[i:])
		e.lineDirs[i] = d
	}
	_ = level
}

// remapLine finds the nearest preceding directive for a raw line number
// and applies: new_line = directive.newLine + (rawLine - directive.rawLine) - 1.
// With no preceding directive the raw line number is returned unchanged.
func remapLine(dirs []lineDirective, rawLine int) int {
	if len(dirs) == 0 {
		return rawLine
	}
	// Last directive with rawLine <= the queried line.
	i := sort.Search(len(dirs), func(i int) bool { return dirs[i].rawLine > rawLine }) - 1
	if i < 0 {
		return rawLine
	}
	d := dirs[i]
	return d.newLine + (rawLine - d.rawLine) - 1
}

// CurrentFileName returns the name asserted by the most recent preceding
// `line directive in loc's buffer, or the buffer's own name if none apply.
func (m *Manager) CurrentFileName(loc SourceLocation) string {
	e := m.entry(loc.Buffer())
	if e == nil {
		return ""
	}
	raw := e.rawLineNumber(uint32(loc.Offset()))
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := sort.Search(len(e.lineDirs), func(i int) bool { return e.lineDirs[i].rawLine > raw }) - 1
	if i < 0 {
		return e.name
	}
	return e.lineDirs[i].name
}
