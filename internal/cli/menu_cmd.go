package cli

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonService/internal/app"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func menuCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive salon menu (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, *configPath)
		},
	}
}

func runMenu(cmd *cobra.Command, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Без файла логов меню работает с Nop логгером
	log := logger.NewNop()
	if cfg.Logs.File != "" {
		log, err = logger.New(cfg.Logs.File, cfg.Logs.Level)
		if err != nil {
			return err
		}
	}
	defer log.Close()

	a, err := app.New(cmd.Context(), cfg, log, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	return NewMenu(a, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}
