package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/glowpaw/steampet/pkg/actions"
	"github.com/glowpaw/steampet/pkg/domain"
)

// statusHandler returns app status and cache headline numbers
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ds := s.steam.GameDatasets()
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	if ds.Summary != nil {
		status["persona"] = ds.Summary.PersonaName
		status["steam_level"] = ds.Summary.SteamLevel
	}
	if !ds.Games.IsEmpty() {
		status["game_count"] = ds.Games.Count
		status["total_playtime_minutes"] = ds.Games.TotalPlaytime
	}
	renderJSON(w, http.StatusOK, status)
}

// recentGamesHandler returns the most recently played games, default 5
func (s *Server) recentGamesHandler(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			renderError(w, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = n
	}

	games := s.steam.RecentGames(limit)
	if games == nil {
		games = []domain.Game{}
	}
	renderJSON(w, http.StatusOK, games)
}

// searchGamesHandler searches the merged library by name
func (s *Server) searchGamesHandler(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		renderError(w, fmt.Errorf("missing q parameter"), http.StatusBadRequest)
		return
	}

	games := s.steam.SearchGames(keyword)
	if games == nil {
		games = []domain.Game{}
	}
	renderJSON(w, http.StatusOK, games)
}

// newsHandler returns the day's news; refresh=true forces a refetch.
// from_cache marks a same-day cache hit or a stale-cache degradation.
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("refresh") == "true"

	items, fromCache, err := s.news.Today(r.Context(), force)
	if err != nil {
		log.Printf("[WARN] news request failed: %v", err)
		renderError(w, err, http.StatusBadGateway)
		return
	}
	if items == nil {
		items = []domain.NewsItem{}
	}
	renderJSON(w, http.StatusOK, map[string]any{"from_cache": fromCache, "items": items})
}

// timerHandler returns the live timer state
func (s *Server) timerHandler(w http.ResponseWriter, _ *http.Request) {
	elapsed := s.timer.ElapsedSeconds()
	renderJSON(w, http.StatusOK, map[string]any{
		"active":          s.timer.Active(),
		"running":         s.timer.Running(),
		"elapsed_seconds": elapsed,
		"elapsed_hms":     domain.FormatHMS(elapsed),
		"settings":        s.timer.Settings(),
	})
}

// menuHandler returns the current radial menu layout. Callbacks stay on
// the pet side; the response carries keys and labels only, with null for
// empty slots.
func (s *Server) menuHandler(w http.ResponseWriter, _ *http.Request) {
	type subView struct {
		Label string `json:"label"`
	}
	type itemView struct {
		Key   string    `json:"key"`
		Label string    `json:"label"`
		Sub   []subView `json:"sub,omitempty"`
	}

	slots := s.menu.Compose()
	out := make([]*itemView, len(slots))
	for i, item := range slots {
		if item == nil {
			continue
		}
		view := &itemView{Key: item.Key, Label: item.Label}
		for _, sub := range item.SubItems {
			view.Sub = append(view.Sub, subView{Label: sub.Label})
		}
		out[i] = view
	}
	renderJSON(w, http.StatusOK, out)
}

// actionHandler dispatches one action through the bus. The body is an
// optional JSON object used as kwargs. Execution failures surface through
// the bus error callback, not this response.
func (s *Server) actionHandler(w http.ResponseWriter, r *http.Request) {
	name := actions.Action(r.PathValue("action"))
	if !name.Valid() {
		renderError(w, fmt.Errorf("unknown action %q", name), http.StatusBadRequest)
		return
	}

	var kwargs map[string]any
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&kwargs); err != nil && !errors.Is(err, io.EOF) {
			renderError(w, fmt.Errorf("invalid kwargs body"), http.StatusBadRequest)
			return
		}
	}

	result := s.bus.Execute(name, kwargs)
	renderJSON(w, http.StatusAccepted, map[string]any{"action": name, "result": result})
}

// renderJSON sends a JSON response
func renderJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends an error response as JSON
func renderError(w http.ResponseWriter, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, code, map[string]string{"error": errMsg})
}
