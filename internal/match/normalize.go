package match

import (
	"strings"
	"unicode"
)

// qualifierSep starts the printer qualifier of system preset names,
// as in "Bambu PLA Basic @BBL X1C".
const qualifierSep = "@"

// NormalizeName folds a preset name for fuzzy matching: the name is
// lowercased, split into tokens on punctuation and spaces, and the tokens
// are joined without separators.
func NormalizeName(s string) string {
	return strings.Join(Tokens(s), "")
}

// NormalizeBaseName is NormalizeName applied after dropping the printer
// qualifier.
func NormalizeBaseName(s string) string {
	return NormalizeName(StripQualifier(s))
}

// StripQualifier returns s without its "@printer" qualifier.
func StripQualifier(s string) string {
	if i := strings.Index(s, qualifierSep); i >= 0 {
		return strings.TrimSpace(s[:i])
	}

	return s
}

// Tokens splits a preset name into lowercase tokens.
//   - "Bambu PLA Basic" -> ["bambu", "pla", "basic"]
//   - "Generic-PETG_HF" -> ["generic", "petg", "hf"]
//   - "PLA+ (0.4)"      -> ["pla", "0", "4"]
func Tokens(s string) []string {
	fields := strings.FieldsFunc(s, isSeparator)

	tokens := fields[:0]
	for _, f := range fields {
		f = strings.ToLower(strings.TrimFunc(f, isNoise))
		if f != "" {
			tokens = append(tokens, f)
		}
	}

	return tokens
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', '/', '(', ')', '[', ']':
		return true
	default:
		return unicode.IsSpace(r)
	}
}

func isNoise(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
