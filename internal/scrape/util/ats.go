package util

import (
	"net/url"
	"strings"
)

// Hosted applicant-tracking systems. Links into these are already canonical
// apply URLs, so the orchestrator skips redirect resolution for them by
// default.
var atsHosts = []string{
	"greenhouse.io",
	"lever.co",
	"myworkdayjobs.com",
	"jobvite.com",
	"ashbyhq.com",
	"taleo.net",
	"boards.greenhouse.io",
	"smartrecruiters.com",
	"workable.com",
	"icims.com",
	"eightfold.ai",
	"bamboohr.com",
	"jobs.lever.co",
	"boards.eu.greenhouse.io",
}

// IsATSLink reports whether raw points at a known ATS host. Classification
// depends only on the host; malformed and non-http(s) URLs are not ATS links.
func IsATSLink(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Host)
	for _, h := range atsHosts {
		if strings.Contains(host, h) {
			return true
		}
	}
	return false
}
