package web

import (
	"fmt"

	"agora/internal/acl"
	"agora/internal/domain"
	"agora/templates"
)

// profilePage is an entry of the profile navigation registry. Pages without a
// predicate are visible to everyone.
type profilePage struct {
	Key     string
	Title   string
	Visible func(v acl.ViewerContext, p domain.ProfileView) bool
}

var profilePages = []profilePage{
	{Key: "posts", Title: "Posts"},
	{Key: "threads", Title: "Threads"},
	{Key: "followers", Title: "Followers"},
	{Key: "follows", Title: "Follows"},
	{Key: "name-history", Title: "Name history", Visible: func(v acl.ViewerContext, p domain.ProfileView) bool {
		return v.IsSelf(p.ID) || v.Perms.CanSeeNameHistory
	}},
	{Key: "warnings", Title: "Warnings", Visible: func(v acl.ViewerContext, p domain.ProfileView) bool {
		return v.IsSelf(p.ID) || v.Perms.CanSeeWarnings
	}},
	{Key: "ban", Title: "Ban details", Visible: func(v acl.ViewerContext, p domain.ProfileView) bool {
		return v.Perms.CanSeeBanDetails
	}},
}

// ProfilePath is the canonical location of a user's profile.
func ProfilePath(id int64, slug string) string {
	return fmt.Sprintf("/profile/%d-%s/", id, slug)
}

// DefaultProfileLink is where profile actions redirect when the caller gave
// no return path.
func DefaultProfileLink(p domain.ProfileView) string {
	return ProfilePath(p.ID, p.Slug) + "posts"
}

// NavPages lists the profile pages visible to the viewer, marking the one
// matching activeKey.
func NavPages(viewer acl.ViewerContext, profile domain.ProfileView, activeKey string) []templates.NavPage {
	var pages []templates.NavPage
	for _, page := range profilePages {
		if page.Visible != nil && !page.Visible(viewer, profile) {
			continue
		}
		pages = append(pages, templates.NavPage{
			Key:      page.Key,
			Title:    page.Title,
			Href:     ProfilePath(profile.ID, profile.Slug) + page.Key,
			IsActive: page.Key == activeKey,
		})
	}
	return pages
}

// PageVisible reports whether the requested page is among the viewer's
// active pages. Deep links into hidden pages must 404 even when the page's
// data exists.
func PageVisible(viewer acl.ViewerContext, profile domain.ProfileView, key string) bool {
	for _, page := range NavPages(viewer, profile, key) {
		if page.IsActive {
			return true
		}
	}
	return false
}
