package main

import (
	"os"

	"github.com/spf13/cobra"

	"table-reservations-go/internal/config"
	"table-reservations-go/pkg/logger"
)

func main() {
	log := logger.NewFromEnv()

	root := newRootCmd(log)
	if err := root.Execute(); err != nil {
		log.Critical("app: command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd(log logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "reservations-api",
		Short:         "Restaurant table reservation API",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, log)
		},
	}

	root.AddCommand(newServeCmd(log))
	root.AddCommand(newMigrateCmd(log))
	root.AddCommand(newPopulateCmd(log))
	return root
}

func loadConfig(log logger.Logger) (config.Config, error) {
	if err := config.LoadDotEnv(log); err != nil {
		return config.Config{}, err
	}
	return config.Load()
}
