// Package linkedin extracts job records from the guest search-results
// endpoint, one structured card per posting.
package linkedin

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobradar-engine/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

const (
	searchBase  = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"
	jobViewBase = "https://www.linkedin.com/jobs/view/"
)

const Source = "linkedin/search"

type Query struct {
	Keywords string
	Location string
}

type Scraper struct {
	hc        *http.Client
	base      string
	UserAgent string
	Pages     int
	Timespan  string // f_TPR filter token, e.g. r604800 = last 7 days
}

func New(userAgent string, pages int, timespan string) *Scraper {
	if pages < 1 {
		pages = 1
	}
	return &Scraper{
		hc:        &http.Client{Timeout: 10 * time.Second},
		UserAgent: userAgent,
		Pages:     pages,
		Timespan:  timespan,
	}
}

// NewWithBase points searches at an alternate endpoint, for tests.
func NewWithBase(hc *http.Client, base string, userAgent string, pages int, timespan string) *Scraper {
	s := New(userAgent, pages, timespan)
	s.hc = hc
	s.base = base
	return s
}

// Search walks result pages for one keywords/location query and returns the
// parsed cards, deduplicated by URL across pages. A failed page is logged
// and skipped; it never aborts the query.
func (s *Scraper) Search(q Query) []domain.Job {
	base := s.base
	if base == "" {
		base = searchBase
	}

	var all []domain.Job
	for i := 0; i < s.Pages; i++ {
		pageURL := fmt.Sprintf("%s?keywords=%s&location=%s&f_TPR=%s&start=%d",
			base, url.QueryEscape(q.Keywords), url.QueryEscape(q.Location), url.QueryEscape(s.Timespan), 25*i)

		doc, ok := s.getPage(pageURL)
		if !ok {
			continue
		}
		all = append(all, ParseCards(doc)...)
	}

	seen := map[string]bool{}
	unique := make([]domain.Job, 0, len(all))
	for _, j := range all {
		if seen[j.URL] {
			continue
		}
		seen[j.URL] = true
		unique = append(unique, j)
	}
	return unique
}

func (s *Scraper) getPage(pageURL string) (*goquery.Document, bool) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		log.Printf("[warn] linkedin request error for %s: %v", pageURL, err)
		return nil, false
	}
	req.Header.Set("User-Agent", s.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")

	res, err := s.hc.Do(req)
	if err != nil {
		log.Printf("[warn] linkedin request error for %s: %v", pageURL, err)
		return nil, false
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Printf("[warn] linkedin fetch failed: HTTP %d for %s", res.StatusCode, pageURL)
		return nil, false
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		log.Printf("[warn] linkedin parse error for %s: %v", pageURL, err)
		return nil, false
	}
	return doc, true
}

// ParseCards walks the result-info containers of one page. A card without a
// derivable posting id yields nothing: without the id there is no URL to
// construct.
func ParseCards(doc *goquery.Document) []domain.Job {
	var jobs []domain.Job
	doc.Find("div.base-search-card__info").Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find("h3").First().Text())
		company := strings.TrimSpace(card.Find("a.hidden-nested-link").First().Text())
		company = strings.ReplaceAll(company, "\n", " ")
		location := strings.TrimSpace(card.Find("span.job-search-card__location").First().Text())

		urn, _ := card.Parent().Attr("data-entity-urn")
		id := postingID(urn)
		if id == "" {
			return
		}

		var posted *string
		if dt, ok := card.Find("time.job-search-card__listdate--new").First().Attr("datetime"); ok {
			posted = &dt
		} else if dt, ok := card.Find("time.job-search-card__listdate").First().Attr("datetime"); ok {
			posted = &dt
		}

		if title == "" {
			title = company
		}
		jobs = append(jobs, domain.Job{
			Company:  company,
			Title:    title,
			Location: location,
			URL:      jobViewBase + id + "/",
			Source:   Source,
			Posted:   posted,
		})
	})
	return jobs
}

// postingID pulls the numeric job id out of an entity URN like
// "urn:li:jobPosting:4012345678".
func postingID(urn string) string {
	if urn == "" {
		return ""
	}
	return urn[strings.LastIndex(urn, ":")+1:]
}
