package core

import (
	"context"
	"time"

	"agora/internal/config"
	"agora/internal/domain"
	"agora/internal/pagination"
	"agora/internal/service"
)

const (
	WarningsPerPage = 5
	WarningsOrphans = 2
)

func (s *AppService) GetWarnings(ctx context.Context, profileID int64, page int) (service.WarningsPage, error) {
	count, err := s.DB.CountWarnings(ctx, profileID)
	if err != nil {
		return service.WarningsPage{}, err
	}
	p, err := pagination.Paginate(count, page, WarningsPerPage, WarningsOrphans)
	if err != nil {
		return service.WarningsPage{}, errNotFound(err)
	}

	warnings, err := s.DB.ListWarnings(ctx, profileID, p.Limit(), p.Offset())
	if err != nil {
		return service.WarningsPage{}, err
	}

	level, err := s.warningLevel(ctx, profileID)
	if err != nil {
		return service.WarningsPage{}, err
	}

	annotateWarnings(warnings, level, p.StartIndex)

	view := service.WarningsPage{
		Warnings: warnings,
		Page:     p,
		Level:    s.Config.WarningLevels[level],
		Progress: warningProgress(level, len(s.Config.WarningLevels)),
	}
	// Reconcile the configured level object with the freshly computed ordinal.
	if level > 0 {
		view.Level.Level = level
	}
	return view, nil
}

func (s *AppService) warningLevel(ctx context.Context, profileID int64) (int, error) {
	given, err := s.DB.ListOpenWarningTimes(ctx, profileID)
	if err != nil {
		return 0, err
	}
	return levelFromWarnings(given, s.Config.WarningLevels, time.Now()), nil
}

// levelFromWarnings replays the user's non-canceled warnings oldest first.
// Each warning lifts the user one level, capped at the top of the ladder,
// unless the level it would lift them to has a length the warning has
// outlived. A zero length never expires.
func levelFromWarnings(given []time.Time, levels []config.WarningLevel, now time.Time) int {
	top := len(levels) - 1
	if top < 1 {
		return 0
	}

	level := 0
	for _, at := range given {
		next := level + 1
		if next > top {
			next = top
		}
		length := levels[next].Length
		if length == 0 || now.Sub(at) < length {
			level = next
		}
	}
	return level
}

// annotateWarnings marks which warnings on the page still count toward the
// user's level. The N most recent non-canceled warnings are the active ones,
// where N is the level ordinal; the budget is consumed walking the page in
// most-recent-first order. Canceled warnings are always inactive and do not
// consume the budget.
func annotateWarnings(warnings []domain.Warning, level int, startIndex int64) {
	activeWarnings := int64(level) - startIndex + 1
	for i := range warnings {
		if warnings[i].IsCanceled {
			warnings[i].IsActive = false
		} else {
			warnings[i].IsActive = activeWarnings > 0
			activeWarnings--
		}
	}
}

// warningProgress is the whole-percent distance left to the top of the
// ladder; 100 when the ladder is trivial or the record is clean.
func warningProgress(level, levelCount int) int {
	levelsTotal := levelCount - 1
	if levelsTotal > 0 && level > 0 {
		return 100 - level*100/levelsTotal
	}
	return 100
}
