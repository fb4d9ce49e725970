package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"recordlabel-backend/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "recordlabel",
	Short: "Record label catalog API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load từ .env file (development/local). Production dùng system env.
		envErr := godotenv.Load()
		logger.Init(getEnv("APP_ENV", "development"), getEnv("LOG_LEVEL", "info"))
		if envErr != nil {
			log.Debug().Msg("No .env file found, using system environment variables")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return Serve(cmd.Context())
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
