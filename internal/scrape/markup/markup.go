// Package markup extracts fields from single-cell HTML fragments found in
// Markdown pipe tables. Inputs are short and shape-constrained, so these are
// deliberately regex scans, not a DOM parse.
package markup

import (
	"regexp"
	"strings"
)

var (
	reTag       = regexp.MustCompile(`<[^>]+>`)
	reHref      = regexp.MustCompile(`href="([^"]+)"`)
	reStrong    = regexp.MustCompile(`<strong>(.*?)</strong>`)
	reAnchorTxt = regexp.MustCompile(`>([^<]+)</a>`)
)

// StripTags removes all <...> tags and trims whitespace.
func StripTags(html string) string {
	return strings.TrimSpace(reTag.ReplaceAllString(html, ""))
}

// FirstHref returns the first href="..." attribute value, untrimmed of any
// query junk and unvalidated. Empty string when the fragment has none.
func FirstHref(html string) string {
	m := reHref.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// AnchorText returns the visible label of a link cell: <strong> content,
// else the inner text of the anchor, else everything left after StripTags.
// Empty string when nothing visible remains.
func AnchorText(html string) string {
	if m := reStrong.FindStringSubmatch(html); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reAnchorTxt.FindStringSubmatch(html); m != nil {
		return strings.TrimSpace(m[1])
	}
	return StripTags(html)
}
