package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonService/internal/config"
)

const defaultConfigPath = "config.toml"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "salon",
		Short:        "Beauty salon management: interactive menu and HTTP API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, configPath)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the TOML config file")

	cmd.AddCommand(menuCmd(&configPath))
	cmd.AddCommand(serveCmd(&configPath))
	return cmd
}

// loadConfig читает конфиг; если файла по пути по умолчанию нет, берутся значения по умолчанию
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == defaultConfigPath {
		if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
			cfg = config.Default()
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
	}
	return nil, err
}
