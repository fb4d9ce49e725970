package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"recordlabel-backend/internal/config"
	"recordlabel-backend/internal/shared/authz"
	"recordlabel-backend/pkg/jwt"
)

var (
	tokenUser        string
	tokenPermissions []string
)

// tokenCmd issues an access token signed with JWT_SECRET, for local
// development and smoke tests against a running server.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for the given user and permissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.App.Environment == "production" {
			return fmt.Errorf("token command is disabled in production")
		}

		tokens := jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)
		token, err := tokens.GenerateAccessToken(tokenUser, tokenPermissions)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "dev", "user id carried in the token")
	tokenCmd.Flags().StringSliceVar(&tokenPermissions, "perm",
		[]string{authz.PermissionAdmin, authz.PermissionLabelOwner}, "permissions carried in the token")
	rootCmd.AddCommand(tokenCmd)
}
