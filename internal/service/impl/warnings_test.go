package core

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"agora/internal/config"
	"agora/internal/domain"
)

func TestAnnotateWarnings(t *testing.T) {
	cases := []struct {
		name       string
		level      int
		startIndex int64
		canceled   []bool
		active     []bool
	}{
		{
			// A level three user looking at the first page: the three most
			// recent non-canceled warnings still count, the canceled one never
			// does.
			name:       "first page at level three",
			level:      3,
			startIndex: 1,
			canceled:   []bool{false, true, false, false, false},
			active:     []bool{true, false, true, true, false},
		},
		{
			name:       "later pages are past the active window",
			level:      3,
			startIndex: 6,
			canceled:   []bool{false, false, false},
			active:     []bool{false, false, false},
		},
		{
			name:       "clean record",
			level:      0,
			startIndex: 1,
			canceled:   []bool{true},
			active:     []bool{false},
		},
		{
			name:       "level one keeps only the most recent",
			level:      1,
			startIndex: 1,
			canceled:   []bool{false, false},
			active:     []bool{true, false},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			warnings := make([]domain.Warning, len(c.canceled))
			for i, canceled := range c.canceled {
				warnings[i] = domain.Warning{IsCanceled: canceled}
			}

			annotateWarnings(warnings, c.level, c.startIndex)

			active := make([]bool, len(warnings))
			for i, w := range warnings {
				active[i] = w.IsActive
			}
			if diff := cmp.Diff(c.active, active); diff != "" {
				t.Errorf("active flags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWarningProgress(t *testing.T) {
	cases := []struct {
		level      int
		levelCount int
		progress   int
	}{
		{0, 4, 100},
		{1, 4, 67},
		{2, 4, 34},
		{3, 4, 0},
		{2, 1, 100},
	}

	for _, c := range cases {
		if got := warningProgress(c.level, c.levelCount); got != c.progress {
			t.Errorf("warningProgress(%d, %d) = %d, expected %d", c.level, c.levelCount, got, c.progress)
		}
	}
}

func TestLevelFromWarnings(t *testing.T) {
	now := time.Now()
	fresh := now.Add(-time.Hour)
	stale := now.Add(-30 * 24 * time.Hour)
	ladder := []config.WarningLevel{
		{Level: 0, Name: "No warnings"},
		{Level: 1, Name: "Watched", Length: 14 * 24 * time.Hour},
		{Level: 2, Name: "Moderated", Length: 14 * 24 * time.Hour},
		{Level: 3, Name: "Silenced"},
	}

	cases := []struct {
		name  string
		given []time.Time
		level int
	}{
		{"no warnings", nil, 0},
		{"two fresh warnings", []time.Time{fresh, fresh}, 2},
		{"a single stale warning wears off", []time.Time{stale}, 0},
		{"worn-off warnings do not pile up", []time.Time{stale, stale, stale}, 0},
		{"stale then fresh counts only the fresh one", []time.Time{stale, fresh}, 1},
		{"the top of the ladder never wears off", []time.Time{fresh, fresh, stale}, 3},
		{"extra warnings cap at the top", []time.Time{fresh, fresh, fresh, fresh}, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := levelFromWarnings(c.given, ladder, now); got != c.level {
				t.Errorf("expected level %d, got %d", c.level, got)
			}
		})
	}
}

func seedWarningRow(t *testing.T, userID int64, reason string, canceled bool) {
	t.Helper()
	_, err := sdb.Exec(
		`INSERT INTO warnings(user_id, reason, given_by, given_on, is_canceled)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, reason, "moderator", time.Now(), canceled)
	if err != nil {
		t.Fatalf("failed to seed warning: %s", err)
	}
}

func TestGetWarnings(t *testing.T) {
	u := signUp(t, "troublemaker")
	seedWarningRow(t, u.ID, "first", false)
	seedWarningRow(t, u.ID, "second", true)
	seedWarningRow(t, u.ID, "third", false)

	page, err := svc.GetWarnings(ctx, u.ID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if page.Level.Level != 2 || page.Level.Name != "Moderated" {
		t.Errorf("expected level 2 Moderated, got %d %q", page.Level.Level, page.Level.Name)
	}
	if page.Progress != 34 {
		t.Errorf("expected progress 34, got %d", page.Progress)
	}
	if len(page.Warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d", len(page.Warnings))
	}

	active := []bool{}
	for _, w := range page.Warnings {
		active = append(active, w.IsActive)
	}
	if diff := cmp.Diff([]bool{true, false, true}, active); diff != "" {
		t.Errorf("active flags mismatch (-want +got):\n%s", diff)
	}
	if page.Warnings[0].Reason != "third" {
		t.Errorf("expected the most recent warning first, got %q", page.Warnings[0].Reason)
	}
}

func TestGetWarningsLevelCap(t *testing.T) {
	u := signUp(t, "incorrigible")
	for _, reason := range []string{"one", "two", "three", "four", "five"} {
		seedWarningRow(t, u.ID, reason, false)
	}

	page, err := svc.GetWarnings(ctx, u.ID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if page.Level.Level != 3 || page.Level.Name != "Silenced" {
		t.Errorf("expected the level to cap at 3 Silenced, got %d %q", page.Level.Level, page.Level.Name)
	}
	if page.Progress != 0 {
		t.Errorf("expected progress 0 at the top of the ladder, got %d", page.Progress)
	}
}

func TestGetWarningsCleanRecord(t *testing.T) {
	u := signUp(t, "saint")

	page, err := svc.GetWarnings(ctx, u.ID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if page.Level.Level != 0 || page.Level.Name != "No warnings" {
		t.Errorf("expected level 0, got %d %q", page.Level.Level, page.Level.Name)
	}
	if page.Progress != 100 {
		t.Errorf("expected progress 100, got %d", page.Progress)
	}
	if len(page.Warnings) != 0 {
		t.Errorf("expected no warnings, got %d", len(page.Warnings))
	}
}
