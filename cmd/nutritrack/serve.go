package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	adapthttp "nutritrack/internal/adapter/http"
	"nutritrack/internal/app"
	"nutritrack/internal/catalog"
	"nutritrack/internal/config"
	"nutritrack/internal/domain"
)

const localUsername = "local"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the JSON API under /api and serves the web UI from WEB_DIR.

The food catalog is seeded from the built-in list and, when FOOD_CATALOG is
set, from that YAML file.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.close() }()

	if err := seedCatalog(ctx, cfg, st.foods); err != nil {
		return err
	}

	authSvc := app.NewAuthService(st.users, st.sessions)
	oidcCfg, err := setupOIDC(ctx, cfg.OIDC)
	if err != nil {
		return err
	}

	srv := adapthttp.New(adapthttp.Deps{
		Auth:     authSvc,
		Weight:   app.NewWeightService(st.weights, st.profiles),
		Water:    app.NewWaterService(st.water),
		Charts:   app.NewChartsService(st.weights, st.water, st.meals),
		Foods:    app.NewFoodService(st.foods),
		Meals:    app.NewMealService(st.meals, st.foods),
		Profiles: app.NewProfileService(st.profiles, st.weights),
		Stats:    app.NewStatsService(st.meals, st.water, st.profiles),
		Logger:   logger,
		OIDC:     oidcCfg,
		WebDir:   cfg.WebDir,

		TrustForwardAuth: cfg.TrustForwardAuth,
	})
	if cfg.DisableAuth {
		u, err := authSvc.ValidateForwardAuth(ctx, localUsername)
		if err != nil {
			return fmt.Errorf("provision local user: %w", err)
		}
		logger.Warn("authentication disabled", zap.String("user", u.Username))
		srv.WithoutAuth(*u)
	}

	go authSvc.PurgeSessions(ctx, time.Hour, func(err error) {
		logger.Warn("purge sessions", zap.Error(err))
	})

	hs := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("storage", cfg.Storage))
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return hs.Shutdown(shutdownCtx)
}

func seedCatalog(ctx context.Context, cfg *config.Config, repo domain.FoodRepository) error {
	items, err := catalog.Default()
	if err != nil {
		return err
	}
	if cfg.FoodCatalog != "" {
		extra, err := catalog.LoadFile(cfg.FoodCatalog)
		if err != nil {
			return err
		}
		items = append(items, extra...)
	}
	n, err := catalog.Seed(ctx, repo, items)
	if err != nil {
		return fmt.Errorf("seed food catalog: %w", err)
	}
	logger.Info("food catalog seeded", zap.Int("items", n))
	return nil
}

func setupOIDC(ctx context.Context, c config.OIDC) (adapthttp.OIDCConfig, error) {
	if !c.Enabled() {
		return adapthttp.OIDCConfig{}, nil
	}
	provider, err := oidc.NewProvider(ctx, c.Issuer)
	if err != nil {
		return adapthttp.OIDCConfig{}, fmt.Errorf("oidc provider: %w", err)
	}
	logger.Info("sso enabled", zap.String("issuer", c.Issuer))
	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}
