package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nutritrack/internal/app"
	"nutritrack/internal/config"
)

var createUserFlags struct {
	username string
	password string
}

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create the first account",
	Long: `Creates the initial user. It fails once any user exists; further
accounts come from SSO or forward auth.

The password may be passed in NUTRITRACK_PASSWORD instead of --password.`,
	Args: cobra.NoArgs,
	RunE: runCreateUser,
}

func init() {
	f := createUserCmd.Flags()
	f.StringVar(&createUserFlags.username, "username", "", "login name (required)")
	f.StringVar(&createUserFlags.password, "password", "", "password, at least 8 characters")
	_ = createUserCmd.MarkFlagRequired("username")
}

func runCreateUser(cmd *cobra.Command, _ []string) error {
	password := createUserFlags.password
	if password == "" {
		password = os.Getenv("NUTRITRACK_PASSWORD")
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if cfg.Storage == config.StorageMemory {
		return errors.New("create-user needs persistent storage; set STORAGE=postgres")
	}
	st, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.close() }()

	svc := app.NewAuthService(st.users, st.sessions)
	if err := svc.CreateInitialUser(cmd.Context(), createUserFlags.username, password); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	logger.Info("user created", zap.String("username", createUserFlags.username))
	return nil
}
