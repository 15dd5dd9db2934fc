package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/pkg/jwt"
	"github.com/hrflo/hrflo-backend/internal/repository/postgresql"
	serviceAuth "github.com/hrflo/hrflo-backend/internal/service/auth"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var (
	newUserName  string
	newUserEmail string
	newUserRole  string
)

const bootstrapPasswordEnv = "HRFLO_BOOTSTRAP_PASSWORD"

// bootstrapPassword reads the initial password from the environment, falling back to the first line of in.
func bootstrapPassword(getenv func(string) string, in io.Reader) (string, error) {
	if p := getenv(bootstrapPasswordEnv); p != "" {
		return p, nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("no password given: set %s or pipe it on stdin", bootstrapPasswordEnv)
	}
	return line, nil
}

// userCreateCmd bootstraps accounts, typically the first HR Manager.
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	Long:  "Create a user account. The password is taken from " + bootstrapPasswordEnv + " or, when unset, the first line of stdin.",
	Example: `  printf '%s\n' "$PASSWORD" | hrflo user create --name "Ada Admin" --email ada@example.com --role "HR Manager"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := bootstrapPassword(os.Getenv, cmd.InOrStdin())
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		jwtService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.IsProduction())
		if err != nil {
			return fmt.Errorf("init jwt: %w", err)
		}
		authService := serviceAuth.NewAuthService(db, postgresql.NewUserRepository(db), jwtService, postgresql.NewJWTRepository(db))

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		created, err := authService.CreateUser(ctx, user.CreateUserRequest{
			Name:     newUserName,
			Email:    newUserEmail,
			Password: password,
			Role:     newUserRole,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", created.ID, newUserRole)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&newUserName, "name", "", "display name")
	userCreateCmd.Flags().StringVar(&newUserEmail, "email", "", "login email")
	userCreateCmd.Flags().StringVar(&newUserRole, "role", string(user.RoleHRManager), "Employee, Manager or HR Manager")
	_ = userCreateCmd.MarkFlagRequired("name")
	_ = userCreateCmd.MarkFlagRequired("email")

	userCmd.AddCommand(userCreateCmd)
}
