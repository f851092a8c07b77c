package enctable

import (
	"golang.org/x/text/encoding/ianaindex"
)

// IconvFinding reports an iconv identifier the IANA charset registry does not
// know about. iconv accepts many vendor names outside the registry, so these
// are hints for a human reviewer rather than errors.
type IconvFinding struct {
	Name      string
	IconvName string
	Line      int
}

// CheckIconv looks every iconv identifier up in the IANA charset registry and
// returns the ones that cannot be resolved.
func CheckIconv(tokens []LanguageToken) []IconvFinding {
	var findings []IconvFinding
	for _, token := range tokens {
		if !token.HasIconv() {
			continue
		}
		// A registered charset without a Go implementation yields (nil, nil);
		// only unknown names return an error.
		if _, err := ianaindex.IANA.Encoding(token.IconvName); err != nil {
			findings = append(findings, IconvFinding{
				Name:      token.Name,
				IconvName: token.IconvName,
				Line:      token.Line,
			})
		}
	}
	return findings
}
