// Package templates holds the HTML components of the forum's server rendered
// pages, written directly against the templ runtime.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type PageData struct {
	Authenticated bool
	Username      string
	ProfilePath   string
	PageTitle     string
	SiteName      string
	// Flash is a one-shot message queued by the previous request.
	Flash string
	Child templ.Component
}

func Layout(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s &middot; %s</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<header class="site-header">
<a class="site-name" href="/">%s</a>
<nav class="user-nav">`,
			templ.EscapeString(data.PageTitle),
			templ.EscapeString(data.SiteName),
			templ.EscapeString(data.SiteName))
		if err != nil {
			return err
		}

		if data.Authenticated {
			_, err = fmt.Fprintf(w,
				`<a href="%s">%s</a> <a href="/logout">Log out</a>`,
				templ.EscapeString(data.ProfilePath),
				templ.EscapeString(data.Username))
		} else {
			_, err = io.WriteString(w,
				`<a href="/login">Log in</a> <a href="/signup">Sign up</a>`)
		}
		if err != nil {
			return err
		}

		if _, err = io.WriteString(w, "</nav>\n</header>\n<main>\n"); err != nil {
			return err
		}

		if data.Flash != "" {
			_, err = fmt.Fprintf(w, `<p class="flash">%s</p>`+"\n", templ.EscapeString(data.Flash))
			if err != nil {
				return err
			}
		}

		if data.Child != nil {
			if err = data.Child.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}
