package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/martijn/trainhub/internal/api"
	"github.com/martijn/trainhub/internal/core/service"
)

var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Start an in-memory backend",
	Long:  "Start a local backend speaking the trainhub REST protocol. Records live in memory and are lost on exit.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		if cmd.Flags().Changed("port") {
			cfg.SandboxPort, _ = cmd.Flags().GetInt("port")
		}

		tokens := service.NewTokenService(cfg.JWTSecretKey)
		server := api.NewServer(cfg, api.NewMemoryCatalog(tokens, logger), tokens, services.DB, logger)

		// Start server in goroutine
		serverErr := make(chan error, 1)
		go func() {
			if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		// Wait for interrupt signal or server error
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		fmt.Fprintf(cmd.OutOrStdout(), "Sandbox listening on http://%s:%d%s. Press Ctrl+C to stop.\n",
			cfg.SandboxHost, cfg.SandboxPort, api.BasePath)

		select {
		case err := <-serverErr:
			return fmt.Errorf("server error: %w", err)
		case <-sigChan:
			fmt.Fprintln(cmd.OutOrStdout(), "\nShutting down gracefully...")
		case <-cmd.Context().Done():
		}

		// Graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Sandbox stopped")
		return nil
	},
}

func init() {
	sandboxCmd.Flags().Int("port", 0, "listen port (default from config)")
	rootCmd.AddCommand(sandboxCmd)
}
