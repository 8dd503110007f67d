package domain

import "time"

type User struct {
	ID       int64
	Username string
	// Slug is the canonical, URL-safe form of the username. Profile links embed
	// both the id and the slug; a link with a stale slug is treated as broken.
	Slug  string
	Email string
	Title string
	// Followers and Following are denormalized counters kept equal to the
	// cardinality of the follow edges pointing at and away from this user.
	Followers int64
	Following int64
	// AvatarDigest addresses the user's avatar in the avatar store; empty if
	// the user never uploaded one.
	AvatarDigest string
	JoinedOn     time.Time
	LastClick    time.Time
	// HiddenPresence hides the user's online state from viewers without the
	// "see hidden presence" permission.
	HiddenPresence bool
	Admin          bool
	Moderator      bool
}

// ProfileView is a user profile resolved for a specific viewer. The
// viewer-relative flags are computed once, before any page handler runs,
// and are never written back onto the User.
type ProfileView struct {
	User
	// IsFollowed is true when the viewer is authenticated, allowed to follow
	// and already follows this user.
	IsFollowed bool
	// IsBlocked is the analogous flag for blocking.
	IsBlocked bool
}

type Account struct {
	UserID   int64
	Username string
	Slug     string
	Password string
	Admin    bool
}
