package service

import (
	"context"

	"agora/internal/acl"
	"agora/internal/config"
	"agora/internal/domain"
	"agora/internal/pagination"
)

type UsersPage struct {
	Users []domain.User
	Page  pagination.Page
}

type PostsPage struct {
	Posts []domain.Post
	Page  pagination.Page
}

type ThreadsPage struct {
	Threads []domain.Thread
	Page    pagination.Page
}

type NameHistoryPage struct {
	Changes []domain.NameChange
	Page    pagination.Page
}

type WarningsPage struct {
	Warnings []domain.Warning
	Page     pagination.Page
	// Level is the user's current warning level, reconciled with the freshly
	// computed ordinal.
	Level config.WarningLevel
	// Progress is the whole-percent distance from the top of the warning
	// ladder; 100 means a clean record.
	Progress int
}

type Profiles interface {
	// GetProfile resolves a profile by id, verifies the link's slug against
	// the canonical one and computes the viewer-relative follow/block flags.
	// A slug mismatch fails with db.ErrNotFound, never a redirect.
	GetProfile(ctx context.Context, id int64, slug string, viewer acl.ViewerContext) (domain.ProfileView, error)

	ListPosts(ctx context.Context, profileID int64, page int) (PostsPage, error)
	ListThreads(ctx context.Context, profileID int64, page int) (ThreadsPage, error)
	ListFollowers(ctx context.Context, profileID int64, page int) (UsersPage, error)
	ListFollows(ctx context.Context, profileID int64, page int) (UsersPage, error)
	GetNameHistory(ctx context.Context, profileID int64, page int) (NameHistoryPage, error)
	GetWarnings(ctx context.Context, profileID int64, page int) (WarningsPage, error)
	// GetUserBan fails with db.ErrNotFound when the user has no active ban;
	// the ban page never renders empty.
	GetUserBan(ctx context.Context, profileID int64) (domain.Ban, error)
}
