package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"weboodi-charts/internal/components/telemetry"
	"weboodi-charts/internal/coursedb"
	"weboodi-charts/internal/service"
	"weboodi-charts/internal/settings"
	"weboodi-charts/lib/configutil"
	"weboodi-charts/lib/serviceutil"

	"github.com/spf13/cobra"
)

type DatabaseConfig struct {
	File string `json:"file"`
}

type OutputConfig struct {
	Format string `json:"format"`
}

type Config struct {
	Database DatabaseConfig `json:"database"`
	Output   OutputConfig   `json:"output"`
	Debug    bool           `json:"debug"`
}

func defaultConfig() Config {
	file := "weboodi-charts.db"
	if dir, err := os.UserConfigDir(); err == nil {
		file = filepath.Join(dir, "weboodi-charts", "settings.db")
	}
	return Config{
		Database: DatabaseConfig{File: file},
		Output:   OutputConfig{Format: "text"},
	}
}

// loadConfig reads name on top of the defaults. A bare file name is looked
// up from the working directory upwards, a missing file is not an error.
func loadConfig(name string) (Config, error) {
	defaults := defaultConfig()

	var cfg Config
	var err error
	if filepath.Base(name) == name {
		cfg, err = configutil.ReadRecursively(name, defaults)
	} else {
		cfg, err = configutil.ReadConfig(name, defaults)
	}
	if errors.Is(err, os.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("read config %s: %w", name, err)
	}
	return cfg, nil
}

var (
	configName *string
	dbFile     *string
	format     *string
	debug      *bool

	config Config
)

func init() {
	flags := rootCmd.PersistentFlags()
	configName = flags.String("config", "weboodi.json5", "The config file, searched for from the working directory upwards.")
	dbFile = flags.String("db", "", "The sqlite database the settings are kept in.")
	format = flags.StringP("format", "f", "", "The output format: text, html, json, csv or xlsx.")
	debug = flags.Bool("debug", false, "Log debug output.")
}

var rootCmd = &cobra.Command{
	Use:          "weboodi-charts",
	Short:        "weboodi-charts turns a saved WebOodi transcript page into statistics and charts.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(*configName)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("db") {
			cfg.Database.File = *dbFile
		}
		if flags.Changed("format") {
			cfg.Output.Format = *format
		}
		if flags.Changed("debug") {
			cfg.Debug = *debug
		}
		config = cfg

		telemetry.InitSlog(cfg.Debug)
		return nil
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openService opens the settings database of the config, the returned
// function closes it.
func openService() (service.Service, func()) {
	db, err := settings.OpenDB(config.Database.File)
	if err != nil {
		serviceutil.Fatal("failed to open settings db", err)
	}
	courseDb, err := coursedb.Load()
	if err != nil {
		db.Close()
		serviceutil.Fatal("failed to load course database", err)
	}
	svc := service.NewService(settings.NewSQLite(db), courseDb)
	return svc, func() { db.Close() }
}
