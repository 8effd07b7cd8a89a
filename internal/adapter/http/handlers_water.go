package adapthttp

import (
	"net/http"
	"time"

	"nutritrack/internal/app"
)

func (s *Server) handleWaterToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	today := localDayString(time.Now())
	total, err := s.water.GetTodayTotal(r.Context(), userFromContext(r).ID, today)
	if err != nil {
		s.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"today": today, "totalMl": total})
}

// handleWaterEvent logs a water delta given in ml or in glasses.
func (s *Server) handleWaterEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		DeltaMl float64 `json:"deltaMl"`
		Glasses float64 `json:"glasses"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	delta := body.DeltaMl
	if body.Glasses != 0 {
		delta = body.Glasses * app.GlassMl
	}
	rec, err := s.water.RecordEvent(r.Context(), userFromContext(r).ID, delta)
	if err != nil {
		s.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleWaterRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	limit := intQuery(r, "limit", 20)
	items, err := s.water.ListRecent(r.Context(), userFromContext(r).ID, limit)
	if err != nil {
		s.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleWaterUndoLast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	undone, id, err := s.water.UndoLast(r.Context(), userFromContext(r).ID)
	if err != nil {
		s.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"undone": undone, "id": id})
}
