package scrape

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobradar-engine/internal/config"
	"jobradar-engine/internal/domain"
	"jobradar-engine/internal/notify"
	"jobradar-engine/internal/scrape/linkedin"
	"jobradar-engine/internal/scrape/markdown"
	"jobradar-engine/internal/scrape/resolve"
	"jobradar-engine/internal/scrape/util"
)

// Store is what the pipeline needs from persistence.
type Store interface {
	ExistsByURL(ctx context.Context, url string) (bool, error)
	InsertJob(ctx context.Context, j domain.Job) (int64, error)
}

type Options struct {
	DryRun         bool
	ResolveLinks   bool // follow redirects for apply links before the sink
	ResolveAll     bool // resolve ATS-hosted links too, not just unknown hosts
	ResolveLimit   int  // cap on resolutions per source, bounds request volume
	ResolveTimeout time.Duration
	ResolveWorkers int
}

// Runner sequences one ingestion pass: extract, optionally resolve, filter,
// deduplicate against storage, persist, notify. Sources run sequentially;
// the only concurrent phase is redirect resolution.
type Runner struct {
	Cfg    config.Config
	Opts   Options
	Store  Store
	Notify notify.Notifier

	// extraction and resolution seams, swappable in tests
	fetchMarkdown func(repo, path string) []domain.Job
	searchCards   func(q linkedin.Query) []domain.Job
	resolveURLs   func(ctx context.Context, urls []string, workers int) []string
	resolver      *resolve.Resolver
}

func NewRunner(cfg config.Config, opts Options, st Store, n notify.Notifier) *Runner {
	md := markdown.New()
	li := linkedin.New(cfg.LinkedIn.UserAgent, cfg.LinkedIn.Pages, cfg.LinkedIn.Timespan)
	return &Runner{
		Cfg:           cfg,
		Opts:          opts,
		Store:         st,
		Notify:        n,
		fetchMarkdown: md.Fetch,
		searchCards:   li.Search,
		resolver:      resolve.New(opts.ResolveTimeout),
	}
}

// Run performs one full pass over all configured sources and returns the
// number of newly persisted jobs. Fetch, parse, resolution and notification
// failures are all local; only the surrounding process setup can fail a run.
func (r *Runner) Run(ctx context.Context) (added int, err error) {
	for _, src := range r.Cfg.Sources {
		jobs := r.fetchMarkdown(src.Repo, src.Path)
		if r.Opts.ResolveLinks && len(jobs) > 0 {
			r.resolveJobs(ctx, jobs)
		}
		if r.Opts.DryRun {
			printJobs(jobs)
			continue
		}
		added += r.sink(ctx, jobs)
	}

	if r.Cfg.LinkedIn.Enabled {
		added += r.runSearch(ctx)
	}

	return added, nil
}

// resolveJobs rewrites apply URLs in place with their redirect targets. By
// default only non-ATS links are resolved (ATS URLs are already canonical);
// ResolveAll widens that, ResolveLimit caps the total either way.
func (r *Runner) resolveJobs(ctx context.Context, jobs []domain.Job) {
	limit := r.Opts.ResolveLimit
	if limit < 0 {
		limit = 0
	}

	var indices []int
	for i, j := range jobs {
		if r.Opts.ResolveAll || !util.IsATSLink(j.URL) {
			indices = append(indices, i)
		}
		if len(indices) >= limit {
			break
		}
	}
	if len(indices) == 0 {
		return
	}

	urls := make([]string, len(indices))
	for k, idx := range indices {
		urls[k] = jobs[idx].URL
	}

	resolveURLs := r.resolveURLs
	if resolveURLs == nil {
		resolveURLs = r.resolver.All
	}
	resolved := resolveURLs(ctx, urls, r.Opts.ResolveWorkers)
	for k, idx := range indices {
		jobs[idx].URL = resolved[k]
	}
}

func (r *Runner) runSearch(ctx context.Context) (added int) {
	queries := r.Cfg.LinkedIn.Queries
	if len(queries) == 0 {
		queries = config.Default().LinkedIn.Queries
	}

	var jobs []domain.Job
	for _, q := range queries {
		jobs = append(jobs, r.searchCards(linkedin.Query{
			Keywords: q.Keywords,
			Location: q.Location,
		})...)
	}

	if white := r.Cfg.Whitelist(); len(white) > 0 {
		before := len(jobs)
		kept := jobs[:0]
		for _, j := range jobs {
			if CompanyInWhitelist(j.Company, white) {
				kept = append(kept, j)
			}
		}
		jobs = kept
		if r.Opts.DryRun {
			fmt.Printf("[info] LinkedIn whitelist applied: kept %d/%d\n", len(jobs), before)
		}
	}

	before := len(jobs)
	kept := jobs[:0]
	for _, j := range jobs {
		if TitleMatchesRules(j.Title, r.Cfg.LinkedIn.TitleInclude, r.Cfg.LinkedIn.TitleExclude, r.Cfg.LinkedIn.RequireNewGrad) {
			kept = append(kept, j)
		}
	}
	jobs = kept
	if r.Opts.DryRun {
		fmt.Printf("[info] LinkedIn title filter applied: kept %d/%d\n", len(jobs), before)
		printJobs(jobs)
		return 0
	}

	return r.sink(ctx, jobs)
}

// sink is the terminal step: existence check, insert, notify. A storage
// failure skips the record; a notification failure is invisible.
func (r *Runner) sink(ctx context.Context, jobs []domain.Job) (added int) {
	for _, j := range jobs {
		exists, err := r.Store.ExistsByURL(ctx, j.URL)
		if err != nil {
			log.Printf("[store] exists check error url=%q: %v", j.URL, err)
			continue
		}
		if exists {
			continue
		}
		if _, err := r.Store.InsertJob(ctx, j); err != nil {
			log.Printf("[store] insert error url=%q: %v", j.URL, err)
			continue
		}
		added++
		_ = r.Notify.Send(ctx, fmt.Sprintf("New job: %s @ %s\n%s", j.Title, j.Company, j.URL))
	}
	return added
}

// printJobs is the dry-run sink; capped so a huge source stays readable.
func printJobs(jobs []domain.Job) {
	for i, j := range jobs {
		if i >= 25 {
			break
		}
		fmt.Printf("%s | %s | %s | %s | source=%s\n", j.Company, j.Title, j.Location, j.URL, j.Source)
	}
}
