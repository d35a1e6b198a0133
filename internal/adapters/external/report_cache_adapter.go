package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"weatherbot.app/internal/ports"
	"weatherbot.app/pkg/errors"
)

// ReportCacheAdapter bridges the byte-level CacheProvider to the text-level ReportCache
type ReportCacheAdapter struct {
	cacheProvider ports.CacheProvider
	clock         ports.Clock
}

type cachedReport struct {
	Text     string    `json:"text"`
	StoredAt time.Time `json:"stored_at"`
}

// NewReportCacheAdapter creates a report cache on top of a generic cache provider
func NewReportCacheAdapter(cacheProvider ports.CacheProvider, clock ports.Clock) *ReportCacheAdapter {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &ReportCacheAdapter{
		cacheProvider: cacheProvider,
		clock:         clock,
	}
}

// Get retrieves formatted weather text
func (a *ReportCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	data, err := a.cacheProvider.Get(ctx, key)
	if err != nil {
		return "", err
	}

	var report cachedReport
	if err := json.Unmarshal(data, &report); err != nil {
		return "", a.discard(ctx, key, errors.NewCacheError("failed to deserialize cached report", err))
	}
	if report.Text == "" {
		return "", a.discard(ctx, key, errors.NewNotFoundError("cached report is empty"))
	}

	return report.Text, nil
}

// discard deletes an unusable entry so the next resolution can overwrite it
func (a *ReportCacheAdapter) discard(ctx context.Context, key string, cause error) error {
	if err := a.cacheProvider.Delete(ctx, key); err != nil {
		return errors.NewCacheError("failed to delete unusable cached report", stderrors.Join(cause, err))
	}
	return cause
}

// Set stores formatted weather text, overwriting any previous value for the key
func (a *ReportCacheAdapter) Set(ctx context.Context, key string, text string, ttl time.Duration) error {
	if text == "" {
		return errors.NewValidationError("report text cannot be empty")
	}

	data, err := json.Marshal(cachedReport{Text: text, StoredAt: a.clock.Now()})
	if err != nil {
		return errors.NewCacheError("failed to serialize report", err)
	}

	return a.cacheProvider.Set(ctx, key, data, ttl)
}
