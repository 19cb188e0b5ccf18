package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/ejfeldman7/fantasy-gbbo/controller"
	"github.com/ejfeldman7/fantasy-gbbo/model"
)

func listPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func updatePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "playerID"), 10, 64)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := ctrl.UpdatePlayer(r.Context(), id, req.Name, req.Email); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"updated": id})
	}
}

func deletePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "playerID"), 10, 64)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := ctrl.DeletePlayer(r.Context(), id); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"deleted": id})
	}
}

func rosterHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roster, err := ctrl.GetRoster(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, roster.Bakers)
	}
}

type addBakerRequest struct {
	Name string `json:"name"`
}

func addBakerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addBakerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		b, err := ctrl.AddBaker(r.Context(), req.Name)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, b)
	}
}

func deleteBakerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "bakerID"), 10, 64)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := ctrl.DeleteBaker(r.Context(), id); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"deleted": id})
	}
}

func recordWeeklyResultHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var result model.WeeklyResult
		if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		result.Week = week

		if err := ctrl.RecordWeeklyResult(r.Context(), &result); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, result)
	}
}

func recordSeasonResultHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var result model.SeasonResult
		if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := ctrl.RecordSeasonResult(r.Context(), &result); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, result)
	}
}

type overrideRequest struct {
	Open bool `json:"open"`
}

func setWeekOverrideHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var req overrideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := ctrl.SetWeekOverride(r.Context(), week, req.Open); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"week": week, "override": req.Open})
	}
}

func backupHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := ctrl.ExportBackup(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}

		w.Header().Set("Content-Disposition", "attachment; filename=league-backup.json")
		render.JSON(w, http.StatusOK, b)
	}
}

func resetHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("confirm") != "yes" {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "add ?confirm=yes to wipe all league data"})
			return
		}

		if err := ctrl.ResetAll(r.Context()); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"reset": true})
	}
}
