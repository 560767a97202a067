package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opencoord/hive/ent"
	"github.com/opencoord/hive/ent/deferred"
)

// Await polling bounds. The interval doubles from the floor up to the cap
// between checks.
const (
	awaitPollFloor = 50 * time.Millisecond
	awaitPollCap   = 2 * time.Second
)

// DeferredService implements durable cross-process promises. The url is the
// only thing the resolver and the awaiter share; all state lives in one row
// of the backing store, so the two sides may be different processes.
type DeferredService struct {
	client  *ent.Client
	logger  *slog.Logger
	nowFunc func() time.Time
}

// NewDeferredService creates a new deferred service.
func NewDeferredService(client *ent.Client, logger *slog.Logger) *DeferredService {
	return &DeferredService{
		client:  client,
		logger:  logger.With("service", "deferred"),
		nowFunc: time.Now,
	}
}

// DeferredResult is the observed state of a deferred.
type DeferredResult struct {
	URL      string                 `json:"url"`
	Found    bool                   `json:"found"`
	Resolved bool                   `json:"resolved"`
	Value    map[string]interface{} `json:"value,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// Create inserts an unresolved deferred with a fresh url and the given TTL.
func (s *DeferredService) Create(ctx context.Context, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", NewValidationError("ttl", "ttl must be positive")
	}
	url := "deferred:" + uuid.New().String()
	err := s.client.Deferred.Create().
		SetID(url).
		SetExpiresAt(s.nowFunc().Add(ttl)).
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create deferred: %w", err)
	}
	return url, nil
}

// Resolve completes a deferred with a value or an error string. Exactly one
// resolution wins; later calls are ignored idempotently. Resolving past
// expiry returns ErrDeferredExpired.
func (s *DeferredService) Resolve(ctx context.Context, url string, value map[string]interface{}, errMsg string) error {
	d, err := s.client.Deferred.Query().
		Where(deferred.IDEQ(url)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("deferred %s: %w", url, ErrNotFound)
		}
		return fmt.Errorf("failed to get deferred: %w", err)
	}
	if d.Resolved {
		return nil
	}
	if !d.ExpiresAt.After(s.nowFunc()) {
		return fmt.Errorf("deferred %s: %w", url, ErrDeferredExpired)
	}

	// Conditional update: only the first resolver flips the flag. A
	// concurrent winner leaves n == 0, which is the idempotent no-op path.
	upd := s.client.Deferred.Update().
		Where(deferred.IDEQ(url), deferred.ResolvedEQ(false)).
		SetResolved(true).
		SetResolvedAt(s.nowFunc())
	if errMsg != "" {
		upd = upd.SetError(errMsg)
	} else {
		upd = upd.SetValue(value)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("failed to resolve deferred: %w", err)
	}
	return nil
}

// Get returns the current state of a deferred without blocking. A missing
// backing table is tolerated and reported as not found.
func (s *DeferredService) Get(ctx context.Context, url string) (*DeferredResult, error) {
	d, err := s.client.Deferred.Query().
		Where(deferred.IDEQ(url)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &DeferredResult{URL: url, Found: false}, nil
		}
		// Tolerate a store without the deferred table (pre-migration logs).
		return &DeferredResult{URL: url, Found: false}, nil
	}
	res := &DeferredResult{
		URL:      url,
		Found:    true,
		Resolved: d.Resolved,
		Value:    d.Value,
	}
	if d.Error != nil {
		res.Error = *d.Error
	}
	return res, nil
}

// Await blocks until the deferred resolves or its expiry passes, polling
// with exponential backoff capped at awaitPollCap. Every waiter on the same
// url observes the same resolution. Returns ErrDeferredTimeout on expiry
// and ErrNotFound for an unknown url.
func (s *DeferredService) Await(ctx context.Context, url string, timeout time.Duration) (*DeferredResult, error) {
	d, err := s.client.Deferred.Query().
		Where(deferred.IDEQ(url)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("deferred %s: %w", url, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get deferred: %w", err)
	}

	deadline := d.ExpiresAt
	if timeout > 0 {
		if byTimeout := s.nowFunc().Add(timeout); byTimeout.Before(deadline) {
			deadline = byTimeout
		}
	}

	interval := awaitPollFloor
	for {
		res, err := s.Get(ctx, url)
		if err != nil {
			return nil, err
		}
		if res.Found && res.Resolved {
			return res, nil
		}
		if !s.nowFunc().Before(deadline) {
			return nil, fmt.Errorf("deferred %s: %w", url, ErrDeferredTimeout)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
		interval *= 2
		if interval > awaitPollCap {
			interval = awaitPollCap
		}
	}
}
