// Package markdown extracts job records from community-maintained GitHub
// listing documents. Two dialects coexist, often in the same file: plain
// bullet link lines and pipe tables whose cells embed HTML anchors.
package markdown

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"jobradar-engine/internal/domain"
	"jobradar-engine/internal/scrape/markup"
)

const rawURLFormat = "https://raw.githubusercontent.com/%s/%s/%s"

// Bullet dialect: - [Company](https://...)
var reBullet = regexp.MustCompile(`- \[(.*?)\]\((https?://.*?)\)`)

type Fetcher struct {
	hc   *http.Client
	base string // overrides the raw.githubusercontent host, for tests
}

func New() *Fetcher {
	return &Fetcher{hc: &http.Client{Timeout: 25 * time.Second}}
}

// NewWithBase points raw fetches at an alternate host, e.g. a local server.
func NewWithBase(hc *http.Client, base string) *Fetcher {
	return &Fetcher{hc: hc, base: base}
}

// Fetch downloads repo/path from the first default branch that answers 200
// with a non-empty body and parses it. Fetch failure is not fatal to a run:
// it logs a warning and returns an empty slice.
func (f *Fetcher) Fetch(repo, path string) []domain.Job {
	text, ok := f.download(repo, path)
	if !ok {
		return nil
	}
	return Parse(text, repo, path)
}

func (f *Fetcher) download(repo, path string) (string, bool) {
	lastStatus := 0
	for _, branch := range []string{"main", "master"} {
		u := fmt.Sprintf(f.rawFormat(), repo, branch, path)
		res, err := f.hc.Get(u)
		if err != nil {
			log.Printf("[warn] fetch %s/%s (%s): %v", repo, path, branch, err)
			continue
		}
		body, err := io.ReadAll(res.Body)
		res.Body.Close()
		lastStatus = res.StatusCode
		if err != nil || res.StatusCode != http.StatusOK || len(body) == 0 {
			continue
		}
		return string(body), true
	}
	if lastStatus != 0 {
		log.Printf("[warn] fetch %s/%s failed: HTTP %d", repo, path, lastStatus)
	} else {
		log.Printf("[warn] fetch %s/%s failed: no response", repo, path)
	}
	return "", false
}

func (f *Fetcher) rawFormat() string {
	if f.base != "" {
		return f.base + "/%s/%s/%s"
	}
	return rawURLFormat
}

// Parse runs both dialect passes over text and deduplicates by exact URL
// within this document only. Every record's Source is "{repo}/{path}".
func Parse(text, repo, path string) []domain.Job {
	source := repo + "/" + path
	seen := map[string]bool{}
	var jobs []domain.Job

	for _, m := range reBullet.FindAllStringSubmatch(text, -1) {
		company := strings.TrimSpace(m[1])
		link := strings.TrimSpace(m[2])
		if seen[link] {
			continue
		}
		seen[link] = true
		jobs = append(jobs, domain.Job{
			Company:  company,
			Title:    company, // bullet lines carry no separate title
			Location: "",
			URL:      link,
			Source:   source,
		})
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if !strings.HasPrefix(line, "|") || !strings.Contains(line, "href=") {
			continue
		}
		if j, ok := parseTableRow(line, source); ok {
			if seen[j.URL] {
				continue
			}
			seen[j.URL] = true
			jobs = append(jobs, j)
		}
	}

	return jobs
}

// parseTableRow extracts a record from one pipe-table line. Columns are
// strictly positional: | Company | Position | Location | Salary | Posting |
// Age |, with edge pipes producing empty cells at 0 and the end. Rows with
// fewer than 6 cells are header separators or malformed and are skipped.
func parseTableRow(line, source string) (domain.Job, bool) {
	cells := strings.Split(line, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if len(cells) < 6 {
		return domain.Job{}, false
	}

	companyCell := cells[1]
	titleCell := cells[2]
	locationCell := cells[3]
	postingCell := cells[5]

	applyURL := markup.FirstHref(postingCell)
	if applyURL == "" {
		// Some tables hang the apply link off the position or company cell.
		for _, cell := range []string{titleCell, companyCell} {
			if applyURL = markup.FirstHref(cell); applyURL != "" {
				break
			}
		}
	}
	if applyURL == "" {
		return domain.Job{}, false
	}

	company := markup.AnchorText(companyCell)
	if company == "" {
		company = markup.StripTags(companyCell)
	}
	title := markup.StripTags(titleCell)
	if title == "" {
		title = company
	}

	return domain.Job{
		Company:  strings.TrimSpace(company),
		Title:    strings.TrimSpace(title),
		Location: strings.TrimSpace(markup.StripTags(locationCell)),
		URL:      strings.TrimSpace(applyURL),
		Source:   source,
		// the Age column isn't a parseable timestamp; Posted stays nil
	}, true
}
