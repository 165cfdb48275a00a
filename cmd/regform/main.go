package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sandeepkv93/regform/internal/catalog"
	"github.com/sandeepkv93/regform/internal/storage"
	"github.com/sandeepkv93/regform/internal/submit"
	"github.com/sandeepkv93/regform/internal/update"
	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "regform failed: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	envFile   string
	dbPath    string
	catalog   string
	strictZip bool
	payment   string
	debugLog  string
}

func newRootCommand() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:           "regform",
		Short:         "Conference registration form for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runForm(cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", defaultEnvFile, "dotenv file read before the environment")
	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite database path (REGFORM_DB_PATH)")
	cmd.Flags().StringVar(&flags.catalog, "catalog", "", "YAML catalog of designs, colors and activities (REGFORM_CATALOG)")
	cmd.Flags().BoolVar(&flags.strictZip, "strict-zip", false, "require exactly five zip digits (REGFORM_STRICT_ZIP)")
	cmd.Flags().StringVar(&flags.payment, "payment", "", "payment method selected at start (REGFORM_DEFAULT_PAYMENT)")
	cmd.PersistentFlags().StringVar(&flags.debugLog, "debug-log", "", "write debug logs to this file (REGFORM_DEBUG_LOG)")

	cmd.AddCommand(newListCommand(&flags))
	return cmd
}

// resolveConfig layers defaults, the dotenv file, the environment and then
// any flag the user set explicitly.
func resolveConfig(cmd *cobra.Command, flags rootFlags) (update.RuntimeConfig, error) {
	if err := loadEnvFile(flags.envFile); err != nil {
		return update.RuntimeConfig{}, err
	}
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("db") {
		cfg.DBPath = flags.dbPath
	}
	if changed("catalog") {
		cfg.CatalogPath = flags.catalog
	}
	if changed("strict-zip") {
		cfg.StrictZip = flags.strictZip
	}
	if changed("payment") {
		cfg.DefaultPayment = flags.payment
	}
	if changed("debug-log") {
		cfg.DebugLogPath = flags.debugLog
	}
	return cfg, nil
}

// loadEnvFile reads path into the process environment without overriding
// variables that are already set. A missing default file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if path == defaultEnvFile && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(path, "regform")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return f, nil
}

func runForm(cfg update.RuntimeConfig) error {
	logFile, err := setupLogging(cfg.DebugLogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	transport, err := submit.NewRepositoryTransport(repo)
	if err != nil {
		return err
	}
	model, err := update.NewModel(cfg, cat, transport)
	if err != nil {
		return err
	}
	log.Printf("regform starting db=%s catalog=%q strict_zip=%t payment=%s", cfg.DBPath, cfg.CatalogPath, cfg.StrictZip, cfg.DefaultPayment)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
