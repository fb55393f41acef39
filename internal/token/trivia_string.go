package token

// String returns the Go identifier name of the TriviaKind, for diagnostics
// and debug output.
func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "TriviaSpace"
	case TriviaNewline:
		return "TriviaNewline"
	case TriviaLineComment:
		return "TriviaLineComment"
	case TriviaBlockComment:
		return "TriviaBlockComment"
	case TriviaDirective:
		return "TriviaDirective"
	case TriviaDisabledText:
		return "TriviaDisabledText"
	default:
		return "Unknown"
	}
}
