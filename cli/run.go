package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taskbeat/taskbeat/engine/runner"
	"github.com/taskbeat/taskbeat/pkg/logger"
)

func RunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load the config and run its tasks on their schedules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := setupLogger(cmd)
			if err != nil {
				return err
			}
			cfg, path, err := loadConfig(cmd)
			if err != nil {
				log.Error("failed to load config", "error", err)
				return err
			}
			log.Info("config loaded", "path", path, "tasks", len(cfg.Tasks))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = logger.ContextWithLogger(ctx, log)

			return runner.New(cfg).Start(ctx)
		},
	}
	return cmd
}
