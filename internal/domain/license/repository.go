package license

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dlviewer/dlviewer/internal/platform/cache"
	"github.com/dlviewer/dlviewer/internal/platform/metrics"
)

// SourceNone marks an empty snapshot produced when every source failed.
const SourceNone = "none"

// ErrNoRecords is returned by a source that answered but had nothing to give.
var ErrNoRecords = errors.New("source returned no records")

// Source produces a full record set.
type Source interface {
	Name() string
	FetchLicenses(ctx context.Context) ([]License, error)
}

// Snapshot is a cached record set.
type Snapshot = cache.Snapshot[[]License]

// Repository serves the current record set from a TTL cache, reloading from
// the primary source and then the fallback file when the entry is stale.
type Repository struct {
	primary  Source
	fallback Source
	cache    *cache.TTL[[]License]
	logger   zerolog.Logger
	metrics  *metrics.Metrics
}

// NewRepository wires the cache. Either source may be nil. A nil clock
// defaults to time.Now.
func NewRepository(primary, fallback Source, timeout time.Duration, now func() time.Time, logger zerolog.Logger) *Repository {
	return &Repository{
		primary:  primary,
		fallback: fallback,
		cache:    cache.NewTTL[[]License](timeout, now),
		logger:   logger.With().Str("component", "license_repository").Logger(),
	}
}

func (r *Repository) SetMetrics(m *metrics.Metrics) { r.metrics = m }

// PrimaryName returns the name of the primary source, or "" when none is wired.
func (r *Repository) PrimaryName() string {
	if r.primary == nil {
		return ""
	}
	return r.primary.Name()
}

// Licenses returns the current record set. Unless force is set, a fresh cache
// entry is returned without I/O. force invalidates the entry first. When no
// source yields records, an empty, uncached snapshot is returned.
//
// The load is shared by concurrent callers and is detached from ctx
// cancellation, so one caller going away does not fail it for the rest.
func (r *Repository) Licenses(ctx context.Context, force bool) Snapshot {
	if force {
		r.cache.Invalidate()
	} else if snap, ok := r.cache.Fresh(); ok {
		r.metrics.CacheHit()
		r.logger.Debug().Int("count", len(snap.Value)).Msg("using cached data")
		return snap
	}
	r.metrics.CacheMiss()

	loadCtx := context.WithoutCancel(ctx)
	snap, err := r.cache.Load(func() (Snapshot, error) {
		return r.load(loadCtx)
	})
	if err != nil {
		r.logger.Warn().Err(err).Msg("no record source available; serving empty set")
		return Snapshot{Value: []License{}, Source: SourceNone}
	}
	return snap
}

// LastFetched returns the time of the current entry, if any.
func (r *Repository) LastFetched() (time.Time, bool) {
	snap, ok := r.cache.Peek()
	if !ok {
		return time.Time{}, false
	}
	return snap.FetchedAt, true
}

func (r *Repository) load(ctx context.Context) (Snapshot, error) {
	var errs []error
	for _, src := range []Source{r.primary, r.fallback} {
		if src == nil {
			continue
		}
		records, err := r.fetch(ctx, src)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// interrupted, not failed: leave the cache empty
			return Snapshot{}, fmt.Errorf("%s: %w", src.Name(), err)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		snap := r.cache.Set(records, src.Name())
		r.metrics.SetCachedRecords(len(records))
		r.logger.Info().Str("source", src.Name()).Int("count", len(records)).Msg("record set loaded")
		return snap, nil
	}
	if len(errs) == 0 {
		return Snapshot{}, errors.New("no record source configured")
	}
	return Snapshot{}, errors.Join(errs...)
}

func (r *Repository) fetch(ctx context.Context, src Source) ([]License, error) {
	records, err := src.FetchLicenses(ctx)
	switch {
	case err != nil:
		r.metrics.SourceLoad(src.Name(), "error")
		r.logger.Warn().Err(err).Str("source", src.Name()).Msg("record source failed")
		return nil, err
	case len(records) == 0:
		r.metrics.SourceLoad(src.Name(), "empty")
		return nil, ErrNoRecords
	}
	r.metrics.SourceLoad(src.Name(), "ok")
	return records, nil
}
