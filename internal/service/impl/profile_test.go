package core

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"

	"agora/internal/acl"
	"agora/internal/db"
	"agora/internal/domain"
)

func TestGetProfileSlugBinding(t *testing.T) {
	u := signUp(t, "Maria Silva")
	if u.Slug != "maria-silva" {
		t.Fatalf("expected slug maria-silva, got %q", u.Slug)
	}

	profile, err := svc.GetProfile(ctx, u.ID, "maria-silva", acl.Guest())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if profile.ID != u.ID {
		t.Errorf("expected profile of user %d, got %d", u.ID, profile.ID)
	}

	// A stale or hand-edited slug is a broken link, not a redirect.
	_, err = svc.GetProfile(ctx, u.ID, "maria", acl.Guest())
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %s for a stale slug, got %s", db.ErrNotFound, err)
	}

	_, err = svc.GetProfile(ctx, 99999, "maria-silva", acl.Guest())
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %s for a missing user, got %s", db.ErrNotFound, err)
	}
}

func TestGetNameHistoryDiff(t *testing.T) {
	u := signUp(t, "Bobby")
	_, err := sdb.Exec(
		`INSERT INTO namechanges(user_id, old_username, new_username, changed_by, changed_on)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, "Bob", "Bobby", "moderator", time.Now())
	if err != nil {
		t.Fatalf("failed to seed name change: %s", err)
	}

	page, err := svc.GetNameHistory(ctx, u.ID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(page.Changes) != 1 {
		t.Fatalf("expected 1 name change, got %d", len(page.Changes))
	}

	want := []domain.NameDiff{
		{Op: domain.NameKept, Text: "Bob"},
		{Op: domain.NameInserted, Text: "by"},
	}
	if diff := cmp.Diff(want, page.Changes[0].Changes); diff != "" {
		t.Errorf("diff segments mismatch (-want +got):\n%s", diff)
	}
}

func TestNameDiffDeletion(t *testing.T) {
	s := &AppService{DMP: diffmatchpatch.New()}

	want := []domain.NameDiff{
		{Op: domain.NameKept, Text: "Ann"},
		{Op: domain.NameDeleted, Text: "ette"},
	}
	if diff := cmp.Diff(want, s.nameDiff("Annette", "Ann")); diff != "" {
		t.Errorf("diff segments mismatch (-want +got):\n%s", diff)
	}
}

func TestListFollowersOrphans(t *testing.T) {
	target := signUp(t, "Popular")
	// Thirteen followers fit a single page because the two trailing rows are
	// absorbed instead of orphaned.
	for i := 0; i < 13; i++ {
		follower := signUp(t, "Fan"+string(rune('A'+i)))
		if _, err := DB.ToggleFollow(ctx, follower.ID, target.ID); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}

	page, err := svc.ListFollowers(ctx, target.ID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if page.Page.NumPages != 1 {
		t.Errorf("expected a single page, got %d", page.Page.NumPages)
	}
	if len(page.Users) != 13 {
		t.Errorf("expected all 13 followers on the page, got %d", len(page.Users))
	}

	_, err = svc.ListFollowers(ctx, target.ID, 2)
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected %s past the last page, got %s", db.ErrNotFound, err)
	}
}
