package online

import (
	"testing"
	"time"

	"agora/internal/acl"
	"agora/internal/domain"
)

func TestState(t *testing.T) {
	now := time.Now()
	cutoff := 15 * time.Minute

	active := domain.User{ID: 1, LastClick: now.Add(-time.Minute)}
	idle := domain.User{ID: 2, LastClick: now.Add(-time.Hour)}
	hidden := domain.User{ID: 3, LastClick: now.Add(-time.Minute), HiddenPresence: true}
	staff := domain.User{ID: 4, Moderator: true}

	cases := []struct {
		name     string
		profile  domain.User
		viewer   acl.ViewerContext
		isOnline bool
		isHidden bool
	}{
		{"recent click is online", active, acl.Guest(), true, false},
		{"old click is offline", idle, acl.Guest(), false, false},
		{"hidden presence looks offline to guests", hidden, acl.Guest(), false, true},
		{"hidden presence looks offline to members", hidden, acl.ForUser(&active), false, true},
		{"users see their own hidden presence", hidden, acl.ForUser(&hidden), true, true},
		{"staff see hidden presence", hidden, acl.ForUser(&staff), true, true},
		{"never clicked is offline", domain.User{ID: 5}, acl.Guest(), false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := State(c.profile, c.viewer, cutoff, now)
			if s.IsOnline != c.isOnline {
				t.Errorf("expected IsOnline %v, got %v", c.isOnline, s.IsOnline)
			}
			if s.IsHidden != c.isHidden {
				t.Errorf("expected IsHidden %v, got %v", c.isHidden, s.IsHidden)
			}
		})
	}
}
