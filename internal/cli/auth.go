package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/domain"
	"github.com/martijn/trainhub/internal/core/service"
)

// readPassword prompts on a terminal without echo and falls back to one
// line of stdin otherwise.
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(password), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func passwordFlag(cmd *cobra.Command, prompt string) (string, error) {
	password, _ := cmd.Flags().GetString("password")
	if password != "" {
		return password, nil
	}
	return readPassword(cmd, prompt)
}

func printUser(cmd *cobra.Command, user *domain.User) {
	if user == nil {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s", user.Email)
	if name := user.FullName(); name != "" {
		fmt.Fprintf(cmd.OutOrStdout(), " (%s)", name)
	}
	fmt.Fprintln(cmd.OutOrStdout())
}

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in and store the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		password, err := passwordFlag(cmd, "Password: ")
		if err != nil {
			return err
		}

		user, err := services.Auth.Login(cmd.Context(), args[0], password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		printUser(cmd, user)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		password, err := passwordFlag(cmd, "Password: ")
		if err != nil {
			return err
		}
		if given, _ := cmd.Flags().GetString("password"); given == "" {
			confirm, err := readPassword(cmd, "Confirm password: ")
			if err != nil {
				return err
			}
			if confirm != password {
				return fmt.Errorf("passwords do not match")
			}
		}

		req := dto.RegisterRequest{Email: args[0], Password: password}
		if nom, _ := cmd.Flags().GetString("nom"); nom != "" {
			req.Nom = &nom
		}
		if prenom, _ := cmd.Flags().GetString("prenom"); prenom != "" {
			req.Prenom = &prenom
		}

		user, err := services.Auth.Register(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}
		printUser(cmd, user)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		if err := services.Auth.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity of the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		id, err := services.Auth.Whoami()
		if errors.Is(err, service.ErrNotLoggedIn) {
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
			return nil
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "User ID: %d\n", id.UserID)
		fmt.Fprintf(out, "Email:   %s\n", id.Email)
		if id.Role != "" {
			fmt.Fprintf(out, "Role:    %s\n", id.Role)
		}
		if id.ExpiresAt != nil {
			state := "valid"
			if id.Expired(time.Now()) {
				state = "expired"
			}
			fmt.Fprintf(out, "Expires: %s (%s)\n", id.ExpiresAt.Local().Format("2006-01-02 15:04:05"), state)
		}

		if verify, _ := cmd.Flags().GetBool("verify"); verify {
			me, err := services.API.Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("backend rejected the session: %w", err)
			}
			fmt.Fprintf(out, "Backend: confirmed as %s\n", me.Email)
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the backend is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cmd.Context())
		if err != nil {
			return err
		}
		defer services.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Backend:  %s\n", services.API.BaseURL())

		health, err := services.API.Health(cmd.Context())
		if err != nil {
			return fmt.Errorf("backend unavailable: %w", err)
		}
		fmt.Fprintf(out, "Status:   %s\n", health.Status)

		db, err := services.API.DBHealth(cmd.Context())
		if err != nil {
			fmt.Fprintf(out, "Database: unavailable (%v)\n", err)
			return nil
		}
		fmt.Fprintf(out, "Database: %s (%s)\n", db.Status, db.Database)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("password", "", "password (prompted when omitted)")
	registerCmd.Flags().String("password", "", "password (prompted when omitted)")
	registerCmd.Flags().String("nom", "", "last name")
	registerCmd.Flags().String("prenom", "", "first name")
	whoamiCmd.Flags().Bool("verify", false, "confirm the session with the backend")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(statusCmd)
}
