package license

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no record carries the requested id.
var ErrNotFound = errors.New("license not found")

// ListResult is one filtered view of the current snapshot.
type ListResult struct {
	Licenses  []License
	Total     int
	FetchedAt time.Time
	Source    string
}

// Service answers queries against the cached snapshot.
type Service struct {
	repo *Repository
	now  func() time.Time
}

// NewService builds the query service. A nil clock defaults to time.Now; the
// clock determines "today" for status filtering and stats.
func NewService(repo *Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

// Today is the current date at UTC midnight.
func (s *Service) Today() time.Time {
	return Day(s.now())
}

// Now is the service clock.
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) List(ctx context.Context, p Params) ListResult {
	snap := s.repo.Licenses(ctx, false)
	return ListResult{
		Licenses:  Filter(snap.Value, p, s.Today()),
		Total:     len(snap.Value),
		FetchedAt: snap.FetchedAt,
		Source:    snap.Source,
	}
}

func (s *Service) Get(ctx context.Context, id int) (License, error) {
	snap := s.repo.Licenses(ctx, false)
	rec, ok := FindByID(snap.Value, id)
	if !ok {
		return License{}, ErrNotFound
	}
	return rec, nil
}

// Refresh bypasses the cache and reloads from the sources.
func (s *Service) Refresh(ctx context.Context) Snapshot {
	return s.repo.Licenses(ctx, true)
}

func (s *Service) Stats(ctx context.Context) Stats {
	snap := s.repo.Licenses(ctx, false)
	return Aggregate(snap.Value, s.Today())
}
