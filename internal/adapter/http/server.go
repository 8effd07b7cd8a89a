package adapthttp

import (
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"nutritrack/internal/app"
	"nutritrack/internal/domain"
)

// OIDCConfig holds the single sign-on settings. Provider and OAuth2Config
// are only consulted when Enabled is true.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// Deps are the application services the server routes to.
type Deps struct {
	Auth     *app.AuthService
	Weight   *app.WeightService
	Water    *app.WaterService
	Charts   *app.ChartsService
	Foods    *app.FoodService
	Meals    *app.MealService
	Profiles *app.ProfileService
	Stats    *app.StatsService

	Logger *zap.Logger
	OIDC   OIDCConfig
	WebDir string

	// TrustForwardAuth accepts the Remote-User header as proof of identity.
	// Enable it only behind a proxy that sets the header and strips any
	// client-supplied value.
	TrustForwardAuth bool
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	authSvc  *app.AuthService
	weight   *app.WeightService
	water    *app.WaterService
	charts   *app.ChartsService
	foods    *app.FoodService
	meals    *app.MealService
	profiles *app.ProfileService
	stats    *app.StatsService

	log        *zap.Logger
	oidcConfig OIDCConfig
	webDir     string

	trustForwardAuth bool
	disableAuth      bool
	localUser        domain.User
}

// New creates a Server wired to the given application services.
func New(d Deps) *Server {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		authSvc:    d.Auth,
		weight:     d.Weight,
		water:      d.Water,
		charts:     d.Charts,
		foods:      d.Foods,
		meals:      d.Meals,
		profiles:   d.Profiles,
		stats:      d.Stats,
		log:        log,
		oidcConfig: d.OIDC,
		webDir:     d.WebDir,

		trustForwardAuth: d.TrustForwardAuth,
	}
}

// WithoutAuth disables authentication; every request acts as u.
func (s *Server) WithoutAuth(u domain.User) *Server {
	s.disableAuth = true
	s.localUser = u
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	public := http.NewServeMux()
	public.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	public.HandleFunc("/config", s.handleConfig)
	public.HandleFunc("/auth/login", s.handleLogin)
	public.HandleFunc("/auth/logout", s.handleLogout)
	public.HandleFunc("/auth/setup", s.handleSetupUser)
	public.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	public.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	api := http.NewServeMux()
	api.HandleFunc("/me", s.handleMe)

	api.HandleFunc("/weight/today", s.handleWeightToday)
	api.HandleFunc("/weight/recent", s.handleWeightRecent)
	api.HandleFunc("/weight/undo-last", s.handleWeightUndoLast)

	api.HandleFunc("/water/today", s.handleWaterToday)
	api.HandleFunc("/water/event", s.handleWaterEvent)
	api.HandleFunc("/water/recent", s.handleWaterRecent)
	api.HandleFunc("/water/undo-last", s.handleWaterUndoLast)

	api.HandleFunc("/foods/search", s.handleFoodSearch)
	api.HandleFunc("/meals/today", s.handleMealsToday)
	api.HandleFunc("/meals/entry", s.handleMealEntry)

	api.HandleFunc("/profile", s.handleProfile)
	api.HandleFunc("/profile/targets/suggest", s.handleSuggestTargets)
	api.HandleFunc("/stats/today", s.handleStatsToday)

	api.HandleFunc("/charts/daily", s.handleChartsDaily)

	public.Handle("/", s.authMiddleware(api))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", public))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
