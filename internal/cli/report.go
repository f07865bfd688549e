package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/user-registry/internal/events"
	"github.com/spec-kit/user-registry/internal/repository"
	"github.com/spec-kit/user-registry/internal/seed"
	"github.com/spec-kit/user-registry/internal/service"
)

func newReportCmd() *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the user report",
		Long:  "Builds a fresh registry, optionally seeded from a YAML file, and prints its report.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			users := service.NewUserService(service.UserDependencies{
				UserRepo:   repository.NewInMemoryUserRepository(),
				Dispatcher: events.NewInMemoryDispatcher(),
				Logger:     logger,
			})

			if seedPath != "" {
				file, err := seed.Load(seedPath)
				if err != nil {
					return err
				}
				if _, err := seed.Apply(cmd.Context(), users, file); err != nil {
					return err
				}
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), users.GenerateUserReport(cmd.Context()))
			return err
		},
	}
	cmd.Flags().StringVar(&seedPath, "seed", "", "YAML file with users to register")
	return cmd
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
