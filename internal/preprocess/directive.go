package preprocess

import "strings"

// directiveKeywords is the set of backtick-names the lexer hands over as
// TriviaDirective that the preprocessor itself interprets. Anything else
// is a macro invocation (or, for an undefined name, an error).
var directiveKeywords = map[string]bool{
	"define":              true,
	"undef":               true,
	"undefineall":         true,
	"ifdef":               true,
	"ifndef":              true,
	"elsif":               true,
	"else":                true,
	"endif":               true,
	"include":             true,
	"error":               true,
	"line":                true,
	"timescale":           true,
	"default_nettype":     true,
	"celldefine":          true,
	"endcelldefine":       true,
	"resetall":            true,
	"pragma":              true,
	"unconnected_drive":   true,
	"nounconnected_drive": true,
}

// parseDefine splits a `define directive's payload into the macro name,
// an optional parenthesized parameter list, and the replacement body.
// Default parameter values ("name = default") are recognized only enough
// to be dropped; they are not implemented as a substitution default.
func parseDefine(payload string) (*Macro, bool) {
	i := 0
	for i < len(payload) && (payload[i] == ' ' || payload[i] == '\t') {
		i++
	}
	start := i
	for i < len(payload) && isIdentCont(payload[i]) {
		i++
	}
	if start == i {
		return nil, false
	}
	m := &Macro{Name: payload[start:i]}

	if i < len(payload) && payload[i] == '(' {
		end := matchParens(payload[i:])
		if end < 0 {
			return nil, false
		}
		paramList := payload[i+1 : i+end-1]
		i += end
		for _, p := range splitArgs(paramList) {
			if p == "" {
				continue
			}
			if p == "..." {
				m.Variadic = true
				m.Params = append(m.Params, "__VA_ARGS__")
				continue
			}
			if eq := strings.IndexByte(p, '='); eq >= 0 {
				p = strings.TrimSpace(p[:eq])
			}
			m.Params = append(m.Params, p)
		}
		m.FnLike = true
	}

	for i < len(payload) && (payload[i] == ' ' || payload[i] == '\t') {
		i++
	}
	m.Body = payload[i:]
	return m, true
}
