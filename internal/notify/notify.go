// Package notify sends best-effort plain-text notifications about newly
// ingested jobs. Transports are tried in preference order; every failure is
// swallowed so notification can never abort an ingestion run.
package notify

import "context"

type Notifier interface {
	Send(ctx context.Context, message string) error
}

// Chain tries each transport in order and stops at the first success.
// Overall failure is not reported to the caller.
type Chain struct {
	Transports []Notifier
}

func (c *Chain) Send(ctx context.Context, message string) error {
	for _, t := range c.Transports {
		if t == nil {
			continue
		}
		if err := t.Send(ctx, message); err == nil {
			return nil
		}
	}
	return nil
}

// Noop discards every message; used in dry runs.
type Noop struct{}

func (Noop) Send(context.Context, string) error { return nil }
