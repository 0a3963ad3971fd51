// internal/domain/homeworkscreen/homeworkscreen.go

// Package homeworkscreen orchestrates the assignment management screen:
// it owns the loaded assignment set, the active filter criteria, and the
// visible list derived from them, and it runs every mutation through draft
// validation before anything touches the network.
package homeworkscreen

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dalemusser/classboard/internal/domain/homeworkdraft"
	"github.com/dalemusser/classboard/internal/domain/homeworkfilter"
	"github.com/dalemusser/classboard/internal/domain/models"
	"go.uber.org/zap"
)

// Repository is the remote assignment store the screen works against.
// *upstream.Client satisfies it.
type Repository interface {
	ListHomework(ctx context.Context) ([]models.Homework, error)
	ListHomeworkRange(ctx context.Context, from, to models.DateOnly) ([]models.Homework, error)
	CreateHomework(ctx context.Context, draft models.HomeworkDraft) (models.Homework, error)
	UpdateHomework(ctx context.Context, id string, draft models.HomeworkDraft) (models.Homework, error)
	DeleteHomework(ctx context.Context, id string) error
}

// Screen holds the state behind the assignment management view. All methods
// are safe for concurrent use.
type Screen struct {
	repo Repository
	log  *zap.Logger

	mu       sync.Mutex
	all      []models.Homework
	visible  []models.Homework
	criteria homeworkfilter.Criteria

	// rangeSeq orders remote range queries so a slow early response can
	// never overwrite the result of a later one.
	rangeSeq atomic.Uint64
}

// New builds a Screen over repo. Call Load before reading.
func New(repo Repository, logger *zap.Logger) *Screen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Screen{repo: repo, log: logger}
}

// Load fetches the full assignment set and re-derives the visible list
// under the current criteria.
func (s *Screen) Load(ctx context.Context) error {
	list, err := s.repo.ListHomework(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = list
	s.deriveLocked()
	return nil
}

// SetCriteria replaces the filter criteria and re-derives the visible list.
// When both ends of the date range are set, the visible list comes from a
// remote range query instead of local filtering, and its result is shown
// verbatim. A response that arrives after a newer range query has been
// issued is discarded.
func (s *Screen) SetCriteria(ctx context.Context, c homeworkfilter.Criteria) error {
	s.mu.Lock()
	s.criteria = c
	if !c.HasDateRange() {
		s.deriveLocked()
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	seq := s.rangeSeq.Add(1)
	list, err := s.repo.ListHomeworkRange(ctx, c.From, c.To)
	if err != nil {
		return err
	}
	if seq != s.rangeSeq.Load() {
		s.log.Debug("discarding stale range response",
			zap.Uint64("seq", seq),
			zap.Uint64("latest", s.rangeSeq.Load()))
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = list
	return nil
}

// deriveLocked recomputes visible from all under the current criteria.
// Callers hold s.mu. Ranged criteria never reach here; SetCriteria routes
// them to the remote query instead.
func (s *Screen) deriveLocked() {
	s.visible = homeworkfilter.Apply(s.all, s.criteria)
}

// Visible returns the assignments the view should display.
func (s *Screen) Visible() []models.Homework {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Homework, len(s.visible))
	copy(out, s.visible)
	return out
}

// All returns the full loaded set, independent of filtering.
func (s *Screen) All() []models.Homework {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Homework, len(s.all))
	copy(out, s.all)
	return out
}

// Criteria returns the active filter criteria.
func (s *Screen) Criteria() homeworkfilter.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// Stats computes the dashboard counters over the full set, regardless of
// any active filter.
func (s *Screen) Stats() homeworkfilter.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return homeworkfilter.Summarize(s.all, models.Today())
}

// Create validates draft, submits it, and reloads the full set before
// returning. A validation failure is reported as *homeworkdraft.ValidationError
// without any network traffic.
func (s *Screen) Create(ctx context.Context, draft models.HomeworkDraft) (models.Homework, error) {
	if errs := homeworkdraft.Validate(draft); len(errs) != 0 {
		return models.Homework{}, &homeworkdraft.ValidationError{Fields: errs}
	}
	created, err := s.repo.CreateHomework(ctx, draft)
	if err != nil {
		return models.Homework{}, err
	}
	if err := s.Load(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// Update validates draft, applies it to the assignment identified by id,
// and reloads the full set before returning.
func (s *Screen) Update(ctx context.Context, id string, draft models.HomeworkDraft) (models.Homework, error) {
	if errs := homeworkdraft.Validate(draft); len(errs) != 0 {
		return models.Homework{}, &homeworkdraft.ValidationError{Fields: errs}
	}
	updated, err := s.repo.UpdateHomework(ctx, id, draft)
	if err != nil {
		return models.Homework{}, err
	}
	if err := s.Load(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// Delete removes the assignment identified by id and reloads the full set
// before returning.
func (s *Screen) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteHomework(ctx, id); err != nil {
		return err
	}
	return s.Load(ctx)
}
