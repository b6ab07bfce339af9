package util

import (
	"regexp"
	"strings"
)

var (
	reParen       = regexp.MustCompile(`\(.*?\)`)
	rePunct       = regexp.MustCompile(`[\.,&']`)
	reLegalSuffix = regexp.MustCompile(`\b(inc|incorporated|corp|corporation|llc|ltd|limited)\b`)
	reSpaces      = regexp.MustCompile(`\s+`)
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// NormalizeCompany canonicalizes a company name for loose whitelist
// comparison: "Acme, Inc. (formerly AcmeSoft)" and "ACME INC" both come out
// as "acme". Never used for display.
func NormalizeCompany(name string) string {
	s := strings.ToLower(name)
	s = reParen.ReplaceAllString(s, "")
	s = rePunct.ReplaceAllString(s, " ")
	s = reLegalSuffix.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
