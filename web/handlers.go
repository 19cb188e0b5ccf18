package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/ejfeldman7/fantasy-gbbo/controller"
	"github.com/ejfeldman7/fantasy-gbbo/db"
	"github.com/ejfeldman7/fantasy-gbbo/league"
	"github.com/ejfeldman7/fantasy-gbbo/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// renderError maps domain errors onto HTTP statuses: invalid input is a 400,
// policy rejections are 403, missing rows are 404, and re-entered results
// are 409.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var verr *league.ValidationError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
	case errors.Is(err, controller.ErrDeadlinePassed):
		status = http.StatusForbidden
	case errors.Is(err, controller.ErrEmailNotAllowed):
		status = http.StatusForbidden
	case errors.Is(err, controller.ErrUnknownWeek):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrPlayerNotFound), errors.Is(err, db.ErrBakerNotFound),
		errors.Is(err, db.ErrPickNotFound), errors.Is(err, db.ErrResultNotFound):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrResultExists), errors.Is(err, db.ErrPlayerExists),
		errors.Is(err, db.ErrBakerExists), errors.Is(err, db.ErrBakerReferenced):
		status = http.StatusConflict
	}

	render.JSON(w, status, errorResponse{Error: err.Error()})
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "fantasy bake off league")
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := ctrl.Standings(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, standings)
	}
}

func revealedPicksHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		revealed, err := ctrl.RevealedPicks(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, revealed)
	}
}

func weeksHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weeks, err := ctrl.Weeks(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, weeks)
	}
}

func weekStatusHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		status, err := ctrl.WeekStatus(r.Context(), week)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"week": week, "status": status})
	}
}

type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func registerPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		p, err := ctrl.RegisterPlayer(r.Context(), req.Name, req.Email)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, p)
	}
}

// submitPicksRequest carries both halves of a weekly submission. Either half
// may be omitted to submit only the other.
type submitPicksRequest struct {
	Weekly *model.WeeklyPick `json:"weekly,omitempty"`
	Season *model.SeasonPick `json:"season,omitempty"`
}

type submitPicksResponse struct {
	Weekly   *model.WeeklyPick `json:"weekly,omitempty"`
	Season   *model.SeasonPick `json:"season,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

func submitPicksHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var req submitPicksRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		warnings, err := ctrl.SubmitPicks(r.Context(), email, week, req.Weekly, req.Season)
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, submitPicksResponse{
			Weekly:   req.Weekly,
			Season:   req.Season,
			Warnings: warnings,
		})
	}
}

func getPicksHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		weekly, season, err := ctrl.GetPicks(r.Context(), email, week)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, submitPicksResponse{Weekly: weekly, Season: season})
	}
}
