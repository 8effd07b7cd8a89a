package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"nutritrack/internal/app"
	"nutritrack/internal/domain"
)

func (s *Server) handleWeightToday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)
	today := localDayString(time.Now())

	switch r.Method {
	case http.MethodGet:
		entry, err := s.weight.GetTodayWeight(ctx, user.ID, today)
		if err != nil {
			s.fail(w, r, err, http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"today": today, "entry": entry})

	case http.MethodPut:
		var body struct {
			Value float64           `json:"value"`
			Unit  domain.WeightUnit `json:"unit"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		entry, _, err := s.weight.RecordWeight(ctx, user.ID, body.Value, body.Unit)
		switch {
		case errors.Is(err, app.ErrProfileSync):
			s.log.Warn("weight stored without profile update", zap.Int64("user", user.ID), zap.Error(err))
		case err != nil:
			s.fail(w, r, err, http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"today": today, "entry": entry})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleWeightRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	limit := intQuery(r, "limit", 14)
	items, err := s.weight.ListRecent(r.Context(), userFromContext(r).ID, limit)
	if err != nil {
		s.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleWeightUndoLast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	deleted, entry, today, err := s.weight.UndoLast(r.Context(), userFromContext(r).ID)
	if err != nil {
		s.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted, "today": today, "entry": entry})
}
