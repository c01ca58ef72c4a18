package naming

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HasVersionPrefix reports whether name matches ^[vV]1[A-Z].
func HasVersionPrefix(name string) bool {
	if len(name) < 3 {
		return false
	}
	return (name[0] == 'v' || name[0] == 'V') && name[1] == '1' && name[2] >= 'A' && name[2] <= 'Z'
}

// StripVersionPrefix removes the version prefix and keeps the remainder
// PascalCase: "v1Foo" -> "Foo", "V1Foo" -> "Foo".
// Stacked prefixes are removed until the result no longer matches, so the
// output of StripVersionPrefix never satisfies HasVersionPrefix.
// Names without the prefix are returned unchanged.
func StripVersionPrefix(name string) string {
	if !HasVersionPrefix(name) {
		return name
	}
	for HasVersionPrefix(name) {
		name = name[2:]
	}
	return upperFirst(name)
}

// Normalize returns the stripped name and whether it differs from name.
func Normalize(name string) (string, bool) {
	stripped := StripVersionPrefix(name)
	return stripped, stripped != name
}

// upperFirst upper-cases the first rune. Casers are stateful, so one is
// created per call.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}
