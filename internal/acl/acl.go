// Package acl computes the permission set a viewer acts under. The set is
// attached to an immutable ViewerContext that handlers thread through
// explicitly instead of decorating domain entities.
package acl

import "agora/internal/domain"

type PermissionSet struct {
	CanFollow            bool
	CanBlock             bool
	CanSeeUserEmails     bool
	CanSeeWarnings       bool
	CanSeeNameHistory    bool
	CanSeeBanDetails     bool
	CanSeeHiddenPresence bool
}

// ViewerContext carries the identity and permissions of the requesting user.
// User is nil for guests.
type ViewerContext struct {
	User  *domain.User
	Perms PermissionSet
}

func (v ViewerContext) IsAuthenticated() bool {
	return v.User != nil
}

// IsSelf reports whether the viewer is looking at their own profile.
func (v ViewerContext) IsSelf(userID int64) bool {
	return v.User != nil && v.User.ID == userID
}

// Guest is the permission context of an unauthenticated request. Guests can
// browse public profile pages but hold none of the member permissions.
func Guest() ViewerContext {
	return ViewerContext{}
}

// ForUser derives the permission set of an authenticated user from their
// roles. Members can follow and block; moderation staff additionally see
// emails, warnings, name history, ban details and hidden presence.
func ForUser(u *domain.User) ViewerContext {
	perms := PermissionSet{
		CanFollow: true,
		CanBlock:  true,
	}
	if u.Moderator || u.Admin {
		perms.CanSeeUserEmails = true
		perms.CanSeeWarnings = true
		perms.CanSeeNameHistory = true
		perms.CanSeeBanDetails = true
		perms.CanSeeHiddenPresence = true
	}
	return ViewerContext{User: u, Perms: perms}
}
