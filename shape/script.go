package shape

import "github.com/go-text/typesetting/language"

// Script is an ISO 15924 script code.
type Script = language.Script

// Scripts used by the run segmenter.
const (
	Common    = language.Common
	Inherited = language.Inherited
	Latin     = language.Latin
	Arabic    = language.Arabic
)

// ScriptOf returns the Unicode script of r.
func ScriptOf(r rune) Script {
	return language.LookupScript(r)
}

// IsNeutral reports whether s takes the script of surrounding text.
func IsNeutral(s Script) bool {
	return s == language.Common || s == language.Inherited || s == language.Unknown
}

// IsDigit reports whether r is an ASCII digit. Digits form their own
// runs so fonts for the surrounding script are not required to cover them.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
