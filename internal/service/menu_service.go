package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domainerrors "skolmaten/internal/errors"
	"skolmaten/internal/isoweek"
	"skolmaten/internal/logging"
	"skolmaten/internal/model"
	"skolmaten/internal/repository"
)

const yearCacheTTL = 5 * time.Minute

// Cache is the part of cache.Client the menu needs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
}

// MenuService exposes the weekly menu.
type MenuService interface {
	SetEntry(ctx context.Context, year, week, weekday int, text string) error
	GetEntry(ctx context.Context, year, week, weekday int) (string, error)
	GetWeek(ctx context.Context, year, week int) (*model.WeekView, error)
	GetYear(ctx context.Context, year int) ([]model.WeekView, error)
	Import(ctx context.Context, entries []model.MenuEntry) (int, error)
	CurrentWeek(now time.Time) (year, week int)
	NormalizeWeek(year, week int) (int, int)
}

type menuService struct {
	menu     repository.MenuRepository
	comments repository.CommentRepository
	cache    Cache
	log      logging.Logger
}

// NewMenuService builds a MenuService. A nil *cache.Client is a valid cache
// that never hits.
func NewMenuService(menu repository.MenuRepository, comments repository.CommentRepository, cache Cache, log logging.Logger) MenuService {
	return &menuService{
		menu:     menu,
		comments: comments,
		cache:    cache,
		log:      log.With("component", "menu"),
	}
}

// Year views are cached under a versioned key. Writers bump the version
// after committing, so a reader that loaded rows before the write stores its
// result under a version nobody reads again.
func yearVersionKey(year int) string {
	return fmt.Sprintf("menu:year:%d:version", year)
}

func yearCacheKey(year int, version string) string {
	return fmt.Sprintf("menu:year:%d:v%s", year, version)
}

func (s *menuService) yearVersion(ctx context.Context, year int) string {
	if v, _ := s.cache.Get(ctx, yearVersionKey(year)); len(v) > 0 {
		return string(v)
	}
	return "0"
}

// retireYears invalidates the cached views of years. Call it after the write
// has committed.
func (s *menuService) retireYears(ctx context.Context, years ...int) {
	for _, year := range years {
		old := yearCacheKey(year, s.yearVersion(ctx, year))
		_, _ = s.cache.Incr(ctx, yearVersionKey(year))
		_ = s.cache.Delete(ctx, old)
	}
}

// validateWeek checks a (year, week) key.
func validateWeek(year, week int) error {
	if !isoweek.ValidYear(year) {
		return domainerrors.ErrInvalidYear
	}
	if !isoweek.ValidWeek(year, week) {
		return domainerrors.ErrInvalidWeek
	}
	return nil
}

// validateDay checks a (year, week, weekday) key.
func validateDay(year, week, weekday int) error {
	if err := validateWeek(year, week); err != nil {
		return err
	}
	if !model.ValidWeekday(weekday) {
		return domainerrors.ErrInvalidWeekday
	}
	return nil
}

// SetEntry stores text for one day in a single atomic upsert. An empty text
// clears the day.
func (s *menuService) SetEntry(ctx context.Context, year, week, weekday int, text string) error {
	if err := validateDay(year, week, weekday); err != nil {
		return err
	}
	if err := s.menu.UpsertDay(ctx, year, week, weekday, text); err != nil {
		return storageError("upsert menu entry", err)
	}
	s.retireYears(ctx, year)
	return nil
}

// GetEntry returns "" for days nobody has written.
func (s *menuService) GetEntry(ctx context.Context, year, week, weekday int) (string, error) {
	if err := validateDay(year, week, weekday); err != nil {
		return "", err
	}
	row, err := s.findWeek(ctx, year, week)
	if err != nil {
		return "", err
	}
	return row.Days()[weekday-1], nil
}

// GetWeek returns the five days of a week with their dates and comment counts.
func (s *menuService) GetWeek(ctx context.Context, year, week int) (*model.WeekView, error) {
	if err := validateWeek(year, week); err != nil {
		return nil, err
	}
	row, err := s.findWeek(ctx, year, week)
	if err != nil {
		return nil, err
	}
	counts, err := s.comments.CountForWeek(ctx, year, week)
	if err != nil {
		return nil, storageError("count comments", err)
	}

	view := buildWeekView(year, week, row.Days())
	for i := range view.Days {
		view.Days[i].Comments = counts[i+1]
	}
	return &view, nil
}

// GetYear returns every ISO week of year in order, including unwritten ones.
func (s *menuService) GetYear(ctx context.Context, year int) ([]model.WeekView, error) {
	if !isoweek.ValidYear(year) {
		return nil, domainerrors.ErrInvalidYear
	}

	// the version is read before the rows so a concurrent write retires it
	key := yearCacheKey(year, s.yearVersion(ctx, year))
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.WeekView
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.menu.FindYear(ctx, year)
	if err != nil {
		return nil, storageError("load year", err)
	}
	byWeek := make(map[int][5]string, len(rows))
	for i := range rows {
		byWeek[rows[i].Week] = rows[i].Days()
	}

	weeks := make([]model.WeekView, isoweek.WeeksInYear(year))
	for i := range weeks {
		weeks[i] = buildWeekView(year, i+1, byWeek[i+1])
	}

	if payload, err := json.Marshal(weeks); err == nil {
		_ = s.cache.Set(ctx, key, payload, yearCacheTTL)
	}
	return weeks, nil
}

// Import validates every entry before writing any, then applies them in one
// transaction.
func (s *menuService) Import(ctx context.Context, entries []model.MenuEntry) (int, error) {
	years := make(map[int]struct{})
	for _, e := range entries {
		if err := validateDay(e.Year, e.Week, e.Weekday); err != nil {
			return 0, fmt.Errorf("year %d week %d day %d: %w", e.Year, e.Week, e.Weekday, err)
		}
		years[e.Year] = struct{}{}
	}

	err := s.menu.WithTransaction(ctx, func(ctx context.Context, repo repository.MenuRepository) error {
		for _, e := range entries {
			if err := repo.UpsertDay(ctx, e.Year, e.Week, e.Weekday, e.Text); err != nil {
				return storageError("import menu entry", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	touched := make([]int, 0, len(years))
	for year := range years {
		touched = append(touched, year)
	}
	s.retireYears(ctx, touched...)

	s.log.Info(ctx, "menu imported", "entries", len(entries), "years", len(years))
	return len(entries), nil
}

func (s *menuService) CurrentWeek(now time.Time) (int, int) {
	return isoweek.Current(now)
}

func (s *menuService) NormalizeWeek(year, week int) (int, int) {
	return isoweek.Normalize(year, week)
}

// findWeek treats a missing row as an empty week.
func (s *menuService) findWeek(ctx context.Context, year, week int) (*model.MenuWeek, error) {
	row, err := s.menu.Find(ctx, year, week)
	if err != nil {
		if isNotFound(err) {
			return &model.MenuWeek{Year: year, Week: week}, nil
		}
		return nil, storageError("load week", err)
	}
	return row, nil
}

func buildWeekView(year, week int, days [5]string) model.WeekView {
	view := model.WeekView{
		Year: year,
		Week: week,
		Date: isoweek.Monday(year, week),
	}
	for i, text := range days {
		view.Days[i] = model.DayView{
			Weekday: i + 1,
			Date:    isoweek.Date(year, week, i+1),
			Text:    text,
		}
	}
	return view
}
