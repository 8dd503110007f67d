// Package online summarizes a user's presence relative to the viewer's
// permissions, so templates never have to reason about hidden activity.
package online

import (
	"time"

	"agora/internal/acl"
	"agora/internal/domain"
)

type Summary struct {
	// IsOnline is true when the user clicked recently and the viewer is
	// allowed to know that.
	IsOnline bool
	// IsHidden marks presence the viewer can see only through the "see
	// hidden presence" permission.
	IsHidden  bool
	LastClick time.Time
}

// State computes the presence summary of a profile for the given viewer.
// Users hiding their activity appear offline unless the viewer can see
// hidden presence, or is the user themselves.
func State(profile domain.User, viewer acl.ViewerContext, cutoff time.Duration, now time.Time) Summary {
	s := Summary{LastClick: profile.LastClick}

	online := !profile.LastClick.IsZero() && now.Sub(profile.LastClick) <= cutoff
	if !profile.HiddenPresence {
		s.IsOnline = online
		return s
	}

	s.IsHidden = true
	if viewer.IsSelf(profile.ID) || viewer.Perms.CanSeeHiddenPresence {
		s.IsOnline = online
	}
	return s
}
