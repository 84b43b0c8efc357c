package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hiringplatform/backend/config"
	"github.com/hiringplatform/backend/logger"
)

const (
	app = "hiring-platform"
)

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "hiring-platform serves the hiring API and its matching, screening and resume tools",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// .env is optional, for local development
		_ = godotenv.Load()
	},
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	for key, env := range map[string]string{"debug": "DEBUG", "json": "LOG_JSON"} {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}
}

// loadConfig reads the environment configuration with the command line
// overrides applied
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	cfg.Debug = viper.GetBool("debug")
	cfg.LogJSON = viper.GetBool("json")

	if port := viper.GetString("port"); port != "" {
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}
