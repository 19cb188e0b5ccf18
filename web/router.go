package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/ejfeldman7/fantasy-gbbo/controller"
)

func getRouter(ctrl controller.C, render *render.Render, adminPassword string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))
	r.Get("/standings", standingsHandler(ctrl, render))
	r.Get("/picks/history", revealedPicksHandler(ctrl, render))

	r.Route("/weeks", func(r chi.Router) {
		r.Get("/", weeksHandler(ctrl, render))
		r.Get("/{week:\\d+}/status", weekStatusHandler(ctrl, render))
	})

	r.Route("/players", func(r chi.Router) {
		r.Post("/", registerPlayerHandler(ctrl, render))
		r.Get("/{email}/picks/{week:\\d+}", getPicksHandler(ctrl, render))
		r.Put("/{email}/picks/{week:\\d+}", submitPicksHandler(ctrl, render))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("gbbo", map[string]string{"admin": adminPassword}))
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Get("/players", listPlayersHandler(ctrl, render))
		r.Post("/players/{playerID:\\d+}", updatePlayerHandler(ctrl, render))
		r.Delete("/players/{playerID:\\d+}", deletePlayerHandler(ctrl, render))

		r.Get("/bakers", rosterHandler(ctrl, render))
		r.Post("/bakers", addBakerHandler(ctrl, render))
		r.Delete("/bakers/{bakerID:\\d+}", deleteBakerHandler(ctrl, render))

		r.Post("/results/{week:\\d+}", recordWeeklyResultHandler(ctrl, render))
		r.Post("/results/season", recordSeasonResultHandler(ctrl, render))

		r.Post("/weeks/{week:\\d+}/override", setWeekOverrideHandler(ctrl, render))

		r.Get("/backup", backupHandler(ctrl, render))
		r.Post("/reset", resetHandler(ctrl, render))
	})

	return r
}
