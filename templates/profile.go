package templates

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"

	"agora/internal/domain"
	"agora/internal/online"
	"agora/internal/pagination"
	"agora/internal/service"
)

type NavPage struct {
	Key      string
	Title    string
	Href     string
	IsActive bool
}

// ProfileContext is everything the profile chrome needs, regardless of which
// sub-page is being shown.
type ProfileContext struct {
	Profile             domain.ProfileView
	Pages               []NavPage
	ActivePage          NavPage
	IsAuthenticatedUser bool
	ShowEmail           bool
	State               online.Summary
}

// Profile renders the shared profile chrome (header, action buttons, tab
// strip) around the page-specific child.
func Profile(pc ProfileContext, child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := profileHeader(ctx, w, pc); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<nav class="profile-tabs">`); err != nil {
			return err
		}
		for _, page := range pc.Pages {
			class := ""
			if page.IsActive {
				class = ` class="active"`
			}
			_, err := fmt.Fprintf(w, `<a href="%s"%s>%s</a>`,
				templ.EscapeString(page.Href), class, templ.EscapeString(page.Title))
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</nav>\n<section class=\"profile-page\">\n"); err != nil {
			return err
		}

		if child != nil {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</section>\n")
		return err
	})
}

func profileHeader(ctx context.Context, w io.Writer, pc ProfileContext) error {
	p := pc.Profile
	_, err := fmt.Fprintf(w, `<header class="profile-header">
<img class="avatar" src="/avatar/%s" alt="">
<h1>%s</h1>`,
		templ.EscapeString(p.AvatarDigest), templ.EscapeString(p.Username))
	if err != nil {
		return err
	}

	if p.Title != "" {
		if _, err = fmt.Fprintf(w, `<p class="user-title">%s</p>`, templ.EscapeString(p.Title)); err != nil {
			return err
		}
	}
	if pc.ShowEmail {
		if _, err = fmt.Fprintf(w, `<p class="user-email">%s</p>`, templ.EscapeString(p.Email)); err != nil {
			return err
		}
	}

	presence := "offline"
	if pc.State.IsOnline {
		presence = "online"
	}
	_, err = fmt.Fprintf(w, `<p class="presence presence-%s">%s</p>
<p class="counters">%d followers &middot; %d following</p>`,
		presence, presence, p.Followers, p.Following)
	if err != nil {
		return err
	}

	if !pc.IsAuthenticatedUser {
		if err = actionButton(w, pc, "follow", "Follow", "Unfollow", p.IsFollowed); err != nil {
			return err
		}
		if err = actionButton(w, pc, "block", "Block", "Unblock", p.IsBlocked); err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "</header>\n")
	return err
}

func actionButton(w io.Writer, pc ProfileContext, action, do, undo string, active bool) error {
	label := do
	if active {
		label = undo
	}
	_, err := fmt.Fprintf(w, `<form method="post" action="/profile/%d-%s/%s">
<input type="hidden" name="return_path" value="%s">
<button type="submit">%s</button>
</form>`,
		pc.Profile.ID, templ.EscapeString(pc.Profile.Slug), action,
		templ.EscapeString(pc.ActivePage.Href), label)
	return err
}

func pager(w io.Writer, base string, p pagination.Page) error {
	if p.NumPages <= 1 {
		return nil
	}
	if _, err := io.WriteString(w, `<nav class="pager">`); err != nil {
		return err
	}
	if p.HasPrevious() {
		if _, err := fmt.Fprintf(w, `<a href="%s?page=%d">Previous</a>`, templ.EscapeString(base), p.Number-1); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, `<span>Page %d of %d</span>`, p.Number, p.NumPages); err != nil {
		return err
	}
	if p.HasNext() {
		if _, err := fmt.Fprintf(w, `<a href="%s?page=%d">Next</a>`, templ.EscapeString(base), p.Number+1); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</nav>\n")
	return err
}

func Posts(pc ProfileContext, page service.PostsPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(page.Posts) == 0 {
			_, err := fmt.Fprintf(w, `<p class="empty">%s posted no messages.</p>`+"\n",
				templ.EscapeString(pc.Profile.Username))
			return err
		}

		if _, err := io.WriteString(w, `<ul class="post-list">`+"\n"); err != nil {
			return err
		}
		for _, post := range page.Posts {
			_, err := fmt.Fprintf(w, `<li><a href="/thread/%d/#post-%d">%s</a><blockquote>%s</blockquote><time>%s</time></li>`+"\n",
				post.ThreadID, post.ID,
				templ.EscapeString(post.ThreadTitle),
				templ.EscapeString(post.Content),
				post.PostedOn.Format(time.RFC822))
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</ul>\n"); err != nil {
			return err
		}
		return pager(w, pc.ActivePage.Href, page.Page)
	})
}

func Threads(pc ProfileContext, page service.ThreadsPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(page.Threads) == 0 {
			_, err := fmt.Fprintf(w, `<p class="empty">%s started no threads.</p>`+"\n",
				templ.EscapeString(pc.Profile.Username))
			return err
		}

		if _, err := io.WriteString(w, `<ul class="thread-list">`+"\n"); err != nil {
			return err
		}
		for _, t := range page.Threads {
			_, err := fmt.Fprintf(w, `<li><a href="/thread/%d-%s/">%s</a> <span class="replies">%d replies</span></li>`+"\n",
				t.ID, templ.EscapeString(t.Slug), templ.EscapeString(t.Title), t.Replies)
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</ul>\n"); err != nil {
			return err
		}
		return pager(w, pc.ActivePage.Href, page.Page)
	})
}

// UserList renders followers and follows pages; they differ only in which
// relation is listed.
func UserList(pc ProfileContext, page service.UsersPage, emptyMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(page.Users) == 0 {
			_, err := fmt.Fprintf(w, `<p class="empty">%s</p>`+"\n", templ.EscapeString(emptyMessage))
			return err
		}

		if _, err := io.WriteString(w, `<ul class="user-list">`+"\n"); err != nil {
			return err
		}
		for _, u := range page.Users {
			_, err := fmt.Fprintf(w, `<li><a href="/profile/%d-%s/">%s</a></li>`+"\n",
				u.ID, templ.EscapeString(u.Slug), templ.EscapeString(u.Username))
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</ul>\n"); err != nil {
			return err
		}

		if left := page.Page.ItemsLeft(); left > 0 {
			if _, err := fmt.Fprintf(w, `<p class="items-left">%d more</p>`+"\n", left); err != nil {
				return err
			}
		}
		return pager(w, pc.ActivePage.Href, page.Page)
	})
}

func NameHistory(pc ProfileContext, page service.NameHistoryPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(page.Changes) == 0 {
			_, err := fmt.Fprintf(w, `<p class="empty">%s never changed their name.</p>`+"\n",
				templ.EscapeString(pc.Profile.Username))
			return err
		}

		if _, err := io.WriteString(w, `<table class="name-history">`+"\n"); err != nil {
			return err
		}
		for _, change := range page.Changes {
			if _, err := io.WriteString(w, "<tr><td>"); err != nil {
				return err
			}
			for _, seg := range change.Changes {
				var err error
				switch seg.Op {
				case domain.NameInserted:
					_, err = fmt.Fprintf(w, `<ins>%s</ins>`, templ.EscapeString(seg.Text))
				case domain.NameDeleted:
					_, err = fmt.Fprintf(w, `<del>%s</del>`, templ.EscapeString(seg.Text))
				default:
					_, err = io.WriteString(w, templ.EscapeString(seg.Text))
				}
				if err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(w, `</td><td>%s</td><td><time>%s</time></td></tr>`+"\n",
				templ.EscapeString(change.ChangedBy),
				change.ChangedOn.Format(time.RFC822))
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</table>\n"); err != nil {
			return err
		}
		return pager(w, pc.ActivePage.Href, page.Page)
	})
}

func Warnings(pc ProfileContext, page service.WarningsPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="warning-level">
<h2>%s</h2>
<div class="progress" style="width: %d%%"></div>
</div>`+"\n",
			templ.EscapeString(page.Level.Name), page.Progress)
		if err != nil {
			return err
		}

		if len(page.Warnings) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No warnings on record.</p>`+"\n")
			return err
		}

		if _, err := io.WriteString(w, `<ul class="warning-list">`+"\n"); err != nil {
			return err
		}
		for _, warning := range page.Warnings {
			class := "inactive"
			if warning.IsActive {
				class = "active"
			}
			if warning.IsCanceled {
				class = "canceled"
			}
			_, err := fmt.Fprintf(w, `<li class="warning-%s">%s <span class="given-by">%s</span> <time>%s</time></li>`+"\n",
				class,
				templ.EscapeString(warning.Reason),
				templ.EscapeString(warning.GivenBy),
				warning.GivenOn.Format(time.RFC822))
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</ul>\n"); err != nil {
			return err
		}
		return pager(w, pc.ActivePage.Href, page.Page)
	})
}

func BanDetails(pc ProfileContext, ban domain.Ban) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		expires := "never expires"
		if ban.ExpiresOn != nil {
			expires = "expires " + ban.ExpiresOn.Format(time.RFC822)
		}
		_, err := fmt.Fprintf(w, `<div class="ban-details">
<h2>%s is banned</h2>
<p>%s</p>
<p class="expiration">This ban %s.</p>
</div>`+"\n",
			templ.EscapeString(pc.Profile.Username),
			templ.EscapeString(ban.Reason),
			templ.EscapeString(expires))
		return err
	})
}
