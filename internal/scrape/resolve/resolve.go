// Package resolve follows HTTP redirect chains to find the final landing URL
// of an apply link. Resolution is best-effort: a link that cannot be resolved
// comes back unchanged.
package resolve

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

type Resolver struct {
	Timeout time.Duration
	limiter *HostLimiter
}

func New(timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	return &Resolver{
		Timeout: timeout,
		limiter: NewHostLimiter(8, 4),
	}
}

// FinalURL follows redirects for raw and returns the landing URL. HEAD first;
// some providers answer HEAD with 405/4xx, so a failed or rejected HEAD falls
// back to a streamed GET. Both failing returns raw itself, never an error.
func (r *Resolver) FinalURL(ctx context.Context, raw string) string {
	_ = r.limiter.WaitURL(ctx, raw)

	hc := &http.Client{Timeout: r.Timeout}

	if req, err := http.NewRequestWithContext(ctx, http.MethodHead, raw, nil); err == nil {
		if res, err := hc.Do(req); err == nil {
			res.Body.Close()
			if res.StatusCode < 400 && res.Request != nil && res.Request.URL != nil {
				return res.Request.URL.String()
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return raw
	}
	res, err := hc.Do(req)
	if err != nil {
		return raw
	}
	// Only the final URL matters; never buffer the body.
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 1))
	if res.Request != nil && res.Request.URL != nil {
		return res.Request.URL.String()
	}
	return raw
}

// All resolves each URL concurrently with at most workers in flight and
// returns a slice of equal length where slot i holds the resolution of
// urls[i]. Each task writes only its own slot, so completion order is
// immaterial and no locking is needed.
func (r *Resolver) All(ctx context.Context, urls []string, workers int) []string {
	out := make([]string, len(urls))
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			out[i] = r.FinalURL(ctx, u)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
