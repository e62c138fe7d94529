package conllu

import "strings"

// StripEmphasis removes matched leading/trailing asterisk pairs from s and
// reports whether any pair was found. "*dog*" and "**dog**" both yield
// ("dog", true); an unmatched asterisk is left alone.
//
// Emphasis is a pre-parse concern: layout measures the stripped text, so the
// markers never affect column widths.
func StripEmphasis(s string) Text {
	bold := false
	for len(s) >= 2 && strings.HasPrefix(s, "*") && strings.HasSuffix(s, "*") {
		s = s[1 : len(s)-1]
		bold = true
	}
	return Text{Value: s, Bold: bold}
}
