package http

import (
	"context"

	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth_chi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-pkgz/rest"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	router.Use(rest.AppInfo(appName, "ff-to-go", h.services.AppInfoService.GetAppVersion(context.Background())))
	router.Use(rest.Ping)

	if h.cfg.RateLimit > 0 {
		limiter := tollbooth.NewLimiter(h.cfg.RateLimit, nil)
		limiter.SetMessage(`{"error":"too many requests"}`)
		limiter.SetMessageContentType("application/json; charset=utf-8")
		router.Use(tollbooth_chi.LimitHandler(limiter))
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.withSession)

			r.Post("/session/login", h.sessionLogin)
			r.Post("/session/logout", h.sessionLogout)
			r.Get("/settings", h.getSettings)
			r.Put("/settings", h.updateSettings)

			r.Post("/account/register", h.accountRegister)
			r.Post("/account/login", h.accountLogin)
			r.Post("/account/logout", h.accountLogout)
			r.Get("/account", h.getAccount)
			r.Post("/account/password", h.changePassword)

			// feeds readable anonymously
			r.Get("/feed/public", h.publicFeed)
			r.Get("/feed/room/{nickname}", h.roomFeed)
			r.Get("/feed/user/{nickname}", h.userFeed)
			r.Get("/feed/user/{nickname}/{kind}", h.userFeed)
			r.Get("/feed/search", h.searchFeed)
			r.Get("/entry/{entry}", h.entryPage)

			// routes that need remote credentials
			r.Group(func(r chi.Router) {
				r.Use(h.requireCredentials)

				r.Get("/feed/home", h.homeFeed)
				r.Get("/feed/rooms", h.roomsFeed)
				r.Get("/feed/list/{nickname}", h.listFeed)
				r.Get("/rooms", h.roomsList)
				r.Get("/lists", h.lists)

				r.Post("/entry/{entry}/comment", h.comment)
				r.Post("/entry/{entry}/comment/{comment}/{action}", h.commentAction)
				r.Post("/entry/{entry}/{action}", h.entryAction)
				r.Post("/share", h.share)
			})
		})
	})

	return router
}
