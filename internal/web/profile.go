package web

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"agora/internal/acl"
	"agora/internal/db"
	"agora/internal/domain"
	"agora/internal/online"
	"agora/templates"
)

// resolveProfile looks up the profile named by the {id}-{slug} route params
// and attaches the viewer-relative flags. Bad ids and stale slugs both fail
// with db.ErrNotFound.
func (h *Handler) resolveProfile(r *http.Request, viewer acl.ViewerContext) (domain.ProfileView, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return domain.ProfileView{}, db.ErrNotFound
	}
	return h.service.GetProfile(r.Context(), id, chi.URLParam(r, "slug"), viewer)
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		return 0
	}
	return page
}

// profilePageFunc builds the page-specific child component once the profile
// is resolved.
type profilePageFunc func(ctx context.Context, pc templates.ProfileContext) (templ.Component, error)

// servePage runs the shared profile pipeline: resolve the target, enforce
// page visibility, build the page child, then render the profile chrome
// around it.
func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, activeKey string, restricted bool, f profilePageFunc) {
	ctx := r.Context()
	viewer := h.viewer(r)

	profile, err := h.resolveProfile(r, viewer)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if restricted && !PageVisible(viewer, profile, activeKey) {
		h.renderError(w, r, db.ErrNotFound)
		return
	}

	pc := templates.ProfileContext{
		Profile:             profile,
		Pages:               NavPages(viewer, profile, activeKey),
		IsAuthenticatedUser: viewer.IsSelf(profile.ID),
		State:               online.State(profile.User, viewer, h.Config.OnlineCutoff, time.Now()),
	}
	for _, page := range pc.Pages {
		if page.IsActive {
			pc.ActivePage = page
			break
		}
	}

	if pc.IsAuthenticatedUser {
		pc.ShowEmail = true
	} else if viewer.IsAuthenticated() {
		pc.ShowEmail = viewer.Perms.CanSeeUserEmails
	}

	child, err := f(ctx, pc)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.renderPage(ctx, w, r, profile.Username, templates.Profile(pc, child))
}

func Posts(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.servePage(w, r, "posts", false, func(ctx context.Context, pc templates.ProfileContext) (templ.Component, error) {
			page, err := h.service.ListPosts(ctx, pc.Profile.ID, pageParam(r))
			if err != nil {
				return nil, err
			}
			return templates.Posts(pc, page), nil
		})
	}
}

func Threads(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.servePage(w, r, "threads", false, func(ctx context.Context, pc templates.ProfileContext) (templ.Component, error) {
			page, err := h.service.ListThreads(ctx, pc.Profile.ID, pageParam(r))
			if err != nil {
				return nil, err
			}
			return templates.Threads(pc, page), nil
		})
	}
}

func Followers(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.servePage(w, r, "followers", false, func(ctx context.Context, pc templates.ProfileContext) (templ.Component, error) {
			page, err := h.service.ListFollowers(ctx, pc.Profile.ID, pageParam(r))
			if err != nil {
				return nil, err
			}
			return templates.UserList(pc, page, "Nobody follows "+pc.Profile.Username+" yet."), nil
		})
	}
}

func Follows(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.servePage(w, r, "follows", false, func(ctx context.Context, pc templates.ProfileContext) (templ.Component, error) {
			page, err := h.service.ListFollows(ctx, pc.Profile.ID, pageParam(r))
			if err != nil {
				return nil, err
			}
			return templates.UserList(pc, page, pc.Profile.Username+" follows nobody yet."), nil
		})
	}
}

func NameHistory(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.servePage(w, r, "name-history", true, func(ctx context.Context, pc templates.ProfileContext) (templ.Component, error) {
			page, err := h.service.GetNameHistory(ctx, pc.Profile.ID, pageParam(r))
			if err != nil {
				return nil, err
			}
			return templates.NameHistory(pc, page), nil
		})
	}
}

func Warnings(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.servePage(w, r, "warnings", true, func(ctx context.Context, pc templates.ProfileContext) (templ.Component, error) {
			page, err := h.service.GetWarnings(ctx, pc.Profile.ID, pageParam(r))
			if err != nil {
				return nil, err
			}
			return templates.Warnings(pc, page), nil
		})
	}
}

func UserBan(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.servePage(w, r, "ban", true, func(ctx context.Context, pc templates.ProfileContext) (templ.Component, error) {
			// A missing ban is not an empty state; the page does not exist.
			ban, err := h.service.GetUserBan(ctx, pc.Profile.ID)
			if err != nil {
				return nil, err
			}
			return templates.BanDetails(pc, ban), nil
		})
	}
}

// renderPage wraps a child in the site layout, popping any queued flash.
func (h *Handler) renderPage(ctx context.Context, w http.ResponseWriter, r *http.Request, title string, child templ.Component) {
	s, ok := GetSession(ctx)
	err := templates.Layout(templates.PageData{
		Authenticated: ok,
		Username:      s.Username,
		ProfilePath:   ProfilePath(s.UserID, s.Slug),
		PageTitle:     title,
		SiteName:      h.Config.Name,
		Flash:         h.popFlash(w, r),
		Child:         child,
	}).Render(ctx, w)
	if err != nil {
		log.Error().Err(err).Msg("error rendering page")
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	code := GetCode(err)
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Str("url", r.URL.String()).Msg("request failed")
	}
	http.Error(w, http.StatusText(code), code)
}
