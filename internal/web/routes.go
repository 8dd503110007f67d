package web

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	r.Use(SessionMiddleware(h))

	r.Route("/", func(r chi.Router) {
		r.Get(LoginRoute, GetLogin(h))
		r.Post(LoginRoute, Login(h))

		r.Post(SignUpRoute, SignUp(h))
		r.Get(SignUpRoute, GetSignup(h))
		r.Get("/logout", Logout(h))
	})

	r.Route("/profile/{id}-{slug}", func(r chi.Router) {
		r.Get("/", Posts(h))
		r.Get("/posts", Posts(h))
		r.Get("/threads", Threads(h))
		r.Get("/followers", Followers(h))
		r.Get("/follows", Follows(h))
		r.Get("/name-history", NameHistory(h))
		r.Get("/warnings", Warnings(h))
		r.Get("/ban", UserBan(h))

		// Actions mount on all methods; the guard pipeline answers 405 for
		// anything but POST.
		r.Handle("/follow", FollowUser(h))
		r.Handle("/block", BlockUser(h))

		r.Method(http.MethodPost, "/avatar", authenticated(UploadAvatar(h)))
	})

	r.Get("/avatar/{digest}", GetAvatar(h))

	h.MountStaticRoutes(r)
}

func (h *Handler) MountStaticRoutes(r chi.Router) {
	wd, _ := os.Getwd()
	wd = filepath.Join(wd, h.Config.StaticDir)
	f := os.DirFS(wd)

	fileServer := http.FileServer(http.FS(f))
	r.Handle("/static/{name}", http.StripPrefix(
		"/static/",
		fileServer,
	))
}
