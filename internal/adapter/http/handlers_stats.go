package adapthttp

import "net/http"

func (s *Server) handleStatsToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	report, err := s.stats.Daily(r.Context(), userFromContext(r).ID, dayQuery(r))
	if err != nil {
		s.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
