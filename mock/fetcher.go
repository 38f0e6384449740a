// Package mock provides mock implementations of newsharvest interfaces.
package mock

import (
	"context"

	"newsharvest"
)

var _ newsharvest.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newsharvest.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ newsharvest.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of newsharvest.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
