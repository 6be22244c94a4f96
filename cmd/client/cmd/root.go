package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"invtrack/cmd/client/cmd/auth"
	"invtrack/cmd/client/cmd/common"
	"invtrack/cmd/client/cmd/devices"
	"invtrack/cmd/client/cmd/refs"
	"invtrack/cmd/client/cmd/selection"
	"invtrack/cmd/client/cmd/transfer"
	"invtrack/internal/app/client"
	"invtrack/internal/app/client/config"
	"invtrack/internal/utils/logger"
)

var (
	cfgFile   string
	debug     bool
	serverURL string

	cfg *config.Config
	log *slog.Logger
	app *client.App
)

var rootCmd = &cobra.Command{
	Use:   "invtrack",
	Short: "Invtrack - учет оборудования по комнатам и сотрудникам",
	Long: `Invtrack - клиент сервиса учета оборудования.

Просмотр устройств доступен после входа на сайт, изменение справочников
и устройств только в режиме администратора. QR ссылки открываются
командой open без входа.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	err := rootCmd.Execute()
	if app != nil {
		if shutdownErr := app.Shutdown(); shutdownErr != nil {
			log.Warn("Ошибка закрытия хранилища", "error", shutdownErr)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

// setupApp создает приложение один раз на процесс, в интерактивной сессии
// оно переиспользуется между командами
func setupApp(cmd *cobra.Command, _ []string) error {
	if app == nil {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
		}
		if serverURL != "" {
			cfg.ServerAddress = serverURL
		}

		log = newLogger(cfg)

		app, err = client.New(cfg, log)
		if err != nil {
			return fmt.Errorf("ошибка инициализации приложения: %w", err)
		}
	}

	ctx := context.WithValue(cmd.Context(), common.ClientAppKey, app)
	ctx = context.WithValue(ctx, common.ConfigKey, cfg)
	cmd.SetContext(ctx)
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	if debug {
		return logger.New(config.EnvLocal)
	}
	if cfg.IsLocal() {
		return logger.New(cfg.Env)
	}
	// в CLI по умолчанию только предупреждения, чтобы не мешать выводу
	return logger.NewText(os.Stderr, slog.LevelWarn)
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		viper.AddConfigPath(filepath.Join(home, ".invtrack"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().Bool("json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервиса данных")
	rootCmd.PersistentFlags().String("secret", "", "пароль администратора для команд изменения")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(devices.DevicesCmd)
	rootCmd.AddCommand(refs.RoomsCmd, refs.CategoriesCmd, refs.EmployeesCmd)
	rootCmd.AddCommand(transfer.ExportCmd, transfer.ImportCmd)
	rootCmd.AddCommand(selection.SelectCmd)
	rootCmd.AddCommand(openCmd, shellCmd)
}
