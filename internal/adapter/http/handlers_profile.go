package adapthttp

import (
	"net/http"
	"strconv"

	"nutritrack/internal/domain"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		view, err := s.profiles.Get(ctx, user.ID)
		if err != nil {
			s.fail(w, r, err, http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, view)

	case http.MethodPut:
		var p domain.Profile
		if err := parseJSON(r, &p); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		view, err := s.profiles.Save(ctx, user.ID, p)
		if err != nil {
			s.fail(w, r, err, http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, view)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleSuggestTargets previews calculated targets; ?apply=true saves them.
func (s *Server) handleSuggestTargets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	apply, _ := strconv.ParseBool(r.URL.Query().Get("apply"))
	suggestion, err := s.profiles.SuggestTargets(r.Context(), userFromContext(r).ID, apply)
	if err != nil {
		s.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}
