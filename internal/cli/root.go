package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/martijn/trainhub/internal/adapter/apiclient"
	"github.com/martijn/trainhub/internal/core/repository"
	"github.com/martijn/trainhub/internal/core/service"
	"github.com/martijn/trainhub/internal/infrastructure/sqlite"
	"github.com/martijn/trainhub/internal/logging"
	"github.com/martijn/trainhub/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trainhub",
	Short: "trainhub - training management from the command line",
	Long: `trainhub manages the clients, schools, trainers, sessions and users of a
training organisation through its REST backend.

It provides:
- Listing, searching and editing of every backend resource
- Bearer-token login with a locally stored session
- A local side-store for fields the backend does not keep
- An in-memory sandbox backend for trying things out`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger = logging.New(os.Stderr, cfg.LogLevel)
		cmd.SetContext(logging.ContextWithLogger(cmd.Context(), logger))
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/trainhub/config.yml)")
}

// Services holds all initialized services
type Services struct {
	DB     *sqlite.DB
	Creds  repository.CredentialRepository
	Extras repository.ExtrasRepository
	API    *apiclient.Client
	Auth   *service.AuthService
}

// initServices opens the local stores and the backend client.
func initServices(_ context.Context) (*Services, error) {
	db, err := sqlite.New(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	creds := sqlite.NewCredentialRepository(db)
	extras := sqlite.NewExtrasRepository(db)

	client := apiclient.New(cfg.BaseURL, creds,
		apiclient.WithTimeout(cfg.Timeout),
		apiclient.WithLogger(logger),
	)

	return &Services{
		DB:     db,
		Creds:  creds,
		Extras: extras,
		API:    client,
		Auth:   service.NewAuthService(client, creds),
	}, nil
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
