package core

import (
	"context"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"agora/internal/acl"
	"agora/internal/domain"
	"agora/internal/pagination"
	"agora/internal/service"
	"agora/internal/validate"
)

const (
	// Page shapes of the profile listings: size plus how many trailing rows
	// the last page may absorb.
	FollowersPerPage   = 12
	FollowersOrphans   = 2
	NameHistoryPerPage = 12
	NameHistoryOrphans = 4
	PostsPerPage       = 12
	PostsOrphans       = 2
)

func (s *AppService) GetProfile(ctx context.Context, id int64, slug string, viewer acl.ViewerContext) (domain.ProfileView, error) {
	u, err := s.DB.GetUserByID(ctx, id)
	if err != nil {
		return domain.ProfileView{}, err
	}

	// A stale slug means the link is broken; it is not silently corrected.
	if err := validate.Slug(u.Slug, slug); err != nil {
		return domain.ProfileView{}, errNotFound(err)
	}

	view := domain.ProfileView{User: u}
	if !viewer.IsAuthenticated() {
		return view, nil
	}

	if viewer.Perms.CanFollow {
		view.IsFollowed, err = s.DB.IsFollowing(ctx, viewer.User.ID, u.ID)
		if err != nil {
			return domain.ProfileView{}, err
		}
	}
	if viewer.Perms.CanBlock {
		view.IsBlocked, err = s.DB.IsBlocking(ctx, viewer.User.ID, u.ID)
		if err != nil {
			return domain.ProfileView{}, err
		}
	}
	return view, nil
}

func (s *AppService) ListPosts(ctx context.Context, profileID int64, page int) (service.PostsPage, error) {
	count, err := s.DB.CountPostsBy(ctx, profileID)
	if err != nil {
		return service.PostsPage{}, err
	}
	p, err := pagination.Paginate(count, page, PostsPerPage, PostsOrphans)
	if err != nil {
		return service.PostsPage{}, errNotFound(err)
	}
	posts, err := s.DB.ListPostsBy(ctx, profileID, p.Limit(), p.Offset())
	return service.PostsPage{Posts: posts, Page: p}, err
}

func (s *AppService) ListThreads(ctx context.Context, profileID int64, page int) (service.ThreadsPage, error) {
	count, err := s.DB.CountThreadsBy(ctx, profileID)
	if err != nil {
		return service.ThreadsPage{}, err
	}
	p, err := pagination.Paginate(count, page, PostsPerPage, PostsOrphans)
	if err != nil {
		return service.ThreadsPage{}, errNotFound(err)
	}
	threads, err := s.DB.ListThreadsBy(ctx, profileID, p.Limit(), p.Offset())
	return service.ThreadsPage{Threads: threads, Page: p}, err
}

func (s *AppService) ListFollowers(ctx context.Context, profileID int64, page int) (service.UsersPage, error) {
	count, err := s.DB.CountFollowers(ctx, profileID)
	if err != nil {
		return service.UsersPage{}, err
	}
	p, err := pagination.Paginate(count, page, FollowersPerPage, FollowersOrphans)
	if err != nil {
		return service.UsersPage{}, errNotFound(err)
	}
	users, err := s.DB.ListFollowers(ctx, profileID, p.Limit(), p.Offset())
	return service.UsersPage{Users: users, Page: p}, err
}

func (s *AppService) ListFollows(ctx context.Context, profileID int64, page int) (service.UsersPage, error) {
	count, err := s.DB.CountFollows(ctx, profileID)
	if err != nil {
		return service.UsersPage{}, err
	}
	p, err := pagination.Paginate(count, page, FollowersPerPage, FollowersOrphans)
	if err != nil {
		return service.UsersPage{}, errNotFound(err)
	}
	users, err := s.DB.ListFollows(ctx, profileID, p.Limit(), p.Offset())
	return service.UsersPage{Users: users, Page: p}, err
}

func (s *AppService) GetNameHistory(ctx context.Context, profileID int64, page int) (service.NameHistoryPage, error) {
	count, err := s.DB.CountNameChanges(ctx, profileID)
	if err != nil {
		return service.NameHistoryPage{}, err
	}
	p, err := pagination.Paginate(count, page, NameHistoryPerPage, NameHistoryOrphans)
	if err != nil {
		return service.NameHistoryPage{}, errNotFound(err)
	}
	changes, err := s.DB.ListNameChanges(ctx, profileID, p.Limit(), p.Offset())
	if err != nil {
		return service.NameHistoryPage{}, err
	}

	for i := range changes {
		changes[i].Changes = s.nameDiff(changes[i].OldUsername, changes[i].NewUsername)
	}
	return service.NameHistoryPage{Changes: changes, Page: p}, nil
}

// nameDiff annotates a rename with its character-level diff for display.
func (s *AppService) nameDiff(old, new string) []domain.NameDiff {
	diffs := s.DMP.DiffCleanupSemantic(s.DMP.DiffMain(old, new, false))
	segments := make([]domain.NameDiff, 0, len(diffs))
	for _, d := range diffs {
		seg := domain.NameDiff{Text: d.Text}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			seg.Op = domain.NameInserted
		case diffmatchpatch.DiffDelete:
			seg.Op = domain.NameDeleted
		default:
			seg.Op = domain.NameKept
		}
		segments = append(segments, seg)
	}
	return segments
}

func (s *AppService) GetUserBan(ctx context.Context, profileID int64) (domain.Ban, error) {
	return s.DB.GetActiveBan(ctx, profileID, time.Now())
}
