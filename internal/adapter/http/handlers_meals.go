package adapthttp

import (
	"net/http"

	"nutritrack/internal/app"
	"nutritrack/internal/domain"
)

func (s *Server) handleFoodSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query().Get("q")
	items, err := s.foods.Search(r.Context(), q, intQuery(r, "limit", 20))
	if err != nil {
		s.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": q, "items": items})
}

func (s *Server) handleMealsToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	view, err := s.meals.GetDay(r.Context(), userFromContext(r).ID, dayQuery(r))
	if err != nil {
		s.fail(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleMealEntry adds (POST) or removes (DELETE) a single food entry.
// A POST with foodId logs a catalog food, otherwise custom is required.
func (s *Server) handleMealEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)

	switch r.Method {
	case http.MethodPost:
		var body struct {
			Day    string          `json:"day"`
			Slot   domain.MealSlot `json:"slot"`
			FoodID string          `json:"foodId"`
			Grams  float64         `json:"grams"`
			Custom *app.CustomFood `json:"custom"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		day := body.Day
		if day == "" {
			day = dayQuery(r)
		}

		var (
			entry *domain.FoodEntry
			err   error
		)
		switch {
		case body.FoodID != "":
			entry, err = s.meals.AddFood(ctx, user.ID, day, body.Slot, body.FoodID, body.Grams)
		case body.Custom != nil:
			entry, err = s.meals.AddCustom(ctx, user.ID, day, body.Slot, *body.Custom)
		default:
			writeError(w, http.StatusBadRequest, errFoodRequired)
			return
		}
		if err != nil {
			s.fail(w, r, err, http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"day": day, "slot": body.Slot, "entry": entry})

	case http.MethodDelete:
		q := r.URL.Query()
		day := dayQuery(r)
		slot := domain.MealSlot(q.Get("slot"))
		if err := s.meals.Remove(ctx, user.ID, day, slot, q.Get("id")); err != nil {
			s.fail(w, r, err, http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "day": day})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
