// Package cli implements quizctl, the operator tool for seeding the quiz
// catalog, issuing development tokens and regrading attempts.
package cli

import (
	"elearning/internal/config"
	"elearning/internal/logger"

	"github.com/spf13/cobra"
)

// ConfigLoader returns the service configuration. Tests replace it.
type ConfigLoader func() (*config.Config, error)

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd(config.LoadConfig).Execute()
}

// NewRootCmd builds the quizctl command tree.
func NewRootCmd(load ConfigLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "quizctl",
		Short:         "Operate the quiz attempt and grading service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewSeedCmd(load))
	cmd.AddCommand(NewTokenCmd(load))
	cmd.AddCommand(NewGradeCmd(load))
	return cmd
}

// loadAndInitLogger loads configuration and initializes the global logger.
func loadAndInitLogger(load ConfigLoader) (*config.Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, err
	}
	return cfg, nil
}
