package scrape

import (
	"strings"

	"jobradar-engine/internal/scrape/util"
)

// Seniority signals that satisfy the new-grad gate.
var newGradTerms = []string{
	"new grad",
	"new college grad",
	"university grad",
	"graduate",
	"entry level",
	"engineer i",
	"software engineer i",
	"swe i",
	"sde i",
	"junior",
}

// Default software-role signals, used when no include terms are configured.
// Substring containment on purpose; "sre" matching inside an unrelated word
// is an accepted imprecision.
var defaultIncludeTerms = []string{
	"software engineer",
	"swe",
	"sde",
	"developer",
	"backend",
	"front end",
	"frontend",
	"full stack",
	"platform engineer",
	"site reliability",
	"sre",
	"devops",
	"data engineer",
	"ml engineer",
	"android engineer",
	"ios engineer",
	"security engineer",
	"firmware engineer",
}

// TitleMatchesRules classifies a job title. Excludes win over everything,
// then the new-grad gate, then at least one include term (configured or
// default) must appear.
func TitleMatchesRules(title string, includeTerms, excludeTerms []string, requireNewGrad bool) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return false
	}
	for _, bad := range excludeTerms {
		if bad != "" && strings.Contains(t, bad) {
			return false
		}
	}
	if requireNewGrad && !containsAny(t, newGradTerms) {
		return false
	}
	terms := includeTerms
	if len(terms) == 0 {
		terms = defaultIncludeTerms
	}
	return containsAny(t, terms)
}

// CompanyInWhitelist reports whether company matches the whitelist. An empty
// whitelist keeps everything. Matching is on normalized names, substring in
// either direction, so "Google" matches both "Google LLC" and
// "Alphabet Google Inc".
func CompanyInWhitelist(company string, whitelist []string) bool {
	if len(whitelist) == 0 {
		return true
	}
	normC := util.NormalizeCompany(company)
	for _, w := range whitelist {
		normW := util.NormalizeCompany(w)
		if normW == "" {
			continue
		}
		if strings.Contains(normC, normW) || strings.Contains(normW, normC) {
			return true
		}
	}
	return false
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
