package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taskbeat/taskbeat/engine/task"
	"github.com/taskbeat/taskbeat/pkg/envsub"
	"github.com/taskbeat/taskbeat/pkg/logger"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taskbeat",
		Short: "Run declarative HTTP tasks on a schedule",
	}

	root.PersistentFlags().StringP("config", "c", "taskbeat.yaml", "path to the task config file")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	root.AddCommand(
		RunCmd(),
		ValidateCmd(),
	)

	return root
}

// setupLogger builds a logger from the persistent flags.
func setupLogger(cmd *cobra.Command) (logger.Logger, error) {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-json flag: %w", err)
	}
	return logger.SetupLogger(logLevel, logJSON), nil
}

// loadConfig builds the environment snapshot (.env under the process
// environment, process wins) and loads the config file against it.
func loadConfig(cmd *cobra.Command) (*task.Config, string, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get config flag: %w", err)
	}
	dotenv, err := envsub.NewEnvFromFile(filepath.Dir(path))
	if err != nil {
		return nil, "", err
	}
	envs, err := dotenv.Merge(envsub.Environ())
	if err != nil {
		return nil, "", fmt.Errorf("failed to merge environment: %w", err)
	}
	cfg, err := task.Load(path, envsub.WithEnv(envs))
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
