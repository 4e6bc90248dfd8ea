package noteservice

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/starford/nn/internal/apperr"
	"github.com/starford/nn/internal/models"
	"github.com/starford/nn/internal/scanner"
	"github.com/starford/nn/internal/storage"
)

// Service coordinates repository operations and content scans.
type Service struct {
	store  storage.Provider
	logger *slog.Logger
}

// NewService creates a new note service.
func NewService(store storage.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// EnsureNote returns the path of the note for date, creating it with the
// default heading if it does not exist yet.
func (s *Service) EnsureNote(_ context.Context, date string) (string, bool, error) {
	path := s.store.Path(date)
	created, err := s.store.Create(path)
	if err != nil {
		return "", false, err
	}
	if created {
		s.logger.Debug("note created", slog.String("path", path))
	}
	return path, created, nil
}

// DeleteNote removes the note for date. It reports false, with no error,
// when there was no such note.
func (s *Service) DeleteNote(_ context.Context, date string) (bool, error) {
	if err := s.store.Delete(date); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	s.logger.Debug("note deleted", slog.String("date", date))
	return true, nil
}

// ListNotes returns the path of every entry in the notes directory.
func (s *Service) ListNotes(_ context.Context) ([]string, error) {
	return s.store.Entries()
}

// Search returns every readable note whose content contains query.
func (s *Service) Search(ctx context.Context, query string) ([]models.Note, error) {
	var out []models.Note
	err := s.scan(ctx, func(path string, data []byte) {
		if scanner.Contains(data, query) {
			out = append(out, models.Note{Path: path, Content: string(data)})
		}
	})
	return out, err
}

// Tags returns the distinct tags used across all readable notes, sorted.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	err := s.scan(ctx, func(_ string, data []byte) {
		for _, t := range scanner.Tags(data) {
			seen[t] = struct{}{}
		}
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}

// scan calls fn for every entry that can be read as text. Entries that
// cannot be read, or are not UTF-8, are skipped.
func (s *Service) scan(ctx context.Context, fn func(path string, data []byte)) error {
	paths, err := s.store.Entries()
	if err != nil {
		return err
	}
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := s.store.Read(p)
		if err != nil {
			s.logger.Debug("scan: skipped", slog.String("path", p), slog.String("error", err.Error()))
			continue
		}
		if !scanner.IsText(data) {
			s.logger.Debug("scan: skipped non-text", slog.String("path", p))
			continue
		}
		fn(p, data)
	}
	return nil
}
