package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"strconv"
	"time"

	"go.uber.org/zap"

	"nutritrack/internal/app"
	"nutritrack/internal/domain"
	"nutritrack/internal/nutrition"
)

const sessionCookie = "session"

var (
	errUnauthorized = errors.New("unauthorized")
	errInternal     = errors.New("internal error")
	errFoodRequired = errors.New("foodId or custom is required")
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// fail maps a service error to a status code. Input errors are 400, missing
// records 404 and anything else gets fallback; 5xx responses hide the cause
// and log it instead.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, fallback int) {
	status := fallback
	var missing *nutrition.MissingInputError
	switch {
	case errors.Is(err, app.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, app.ErrInvalid), errors.As(err, &missing):
		status = http.StatusBadRequest
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, status, errInternal)
		return
	}
	writeError(w, status, err)
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func intQuery(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func localDayString(t time.Time) string {
	return domain.LocalDay(t)
}

// dayQuery returns the "day" query parameter, defaulting to today.
func dayQuery(r *http.Request) string {
	if d := r.URL.Query().Get("day"); d != "" {
		return d
	}
	return localDayString(time.Now())
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(app.SessionTTL.Seconds()),
	})
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func spaFromDisk(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	indexPath := path.Join(dir, "index.html")
	chartsPath := path.Join(dir, "charts.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqPath := path.Clean(r.URL.Path)
		if reqPath == "/" {
			http.ServeFile(w, r, indexPath)
			return
		}
		if reqPath == "/charts" {
			http.ServeFile(w, r, chartsPath)
			return
		}

		staticPath := path.Join(dir, reqPath)
		if _, err := os.Stat(staticPath); err == nil {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, indexPath)
	})
}
