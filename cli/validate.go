package cli

import (
	"github.com/spf13/cobra"
)

func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load the config and report whether it is valid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := setupLogger(cmd)
			if err != nil {
				return err
			}
			cfg, path, err := loadConfig(cmd)
			if err != nil {
				log.Error("config is invalid", "error", err)
				return err
			}
			log.Info("config is valid", "path", path, "tasks", len(cfg.Tasks))
			return nil
		},
	}
	return cmd
}
