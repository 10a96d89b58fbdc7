package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"saleshub-cli/internal/format"
	"saleshub-cli/internal/logging"
	"saleshub-cli/internal/service"
	"saleshub-cli/internal/store"
	"saleshub-cli/internal/tui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type App struct {
	Dir      string
	Format   string
	Pretty   bool
	LogLevel string
	LogFile  string

	cfg *store.GlobalConfig
}

func NewRootCmd() *cobra.Command {
	// .env is optional and never overrides variables already set.
	_ = godotenv.Load()

	app := &App{}

	cmd := &cobra.Command{
		Use:           "saleshub",
		Short:         "Departments and sellers (TUI + CLI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  saleshub

  # Scriptable commands
  saleshub departments list --format table
  saleshub sellers create --name "Ann Lee" --email ann@example.com --birth-date 1990-05-01 --salary 2500 --department 1

  # Direct lookup (shortcut for: saleshub departments show 7)
  saleshub dept-7
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := store.LoadConfig()
		if err != nil {
			return writeErr(cmd, fmt.Errorf("load config: %w", err))
		}
		app.cfg = cfg
		if app.LogLevel == "" {
			app.LogLevel = cfg.LogLevel
		}
		// The TUI sets up its own file logger.
		if cmd != cmd.Root() {
			log := logging.New(logging.Config{Level: app.LogLevel, Output: cmd.ErrOrStderr()})
			cmd.SetContext(logging.WithContext(cmd.Context(), log))
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("SALESHUB_DIR", ""), "Path to the data dir (default: ./.saleshub if found, else config dataDir, else ~/.saleshub/data)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("SALESHUB_FORMAT", "json"), "Output format (json|table)")
	cmd.PersistentFlags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("SALESHUB_LOG_LEVEL", ""), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("SALESHUB_LOG_FILE", ""), "TUI log file (default: <dir>/saleshub.log)")

	cmd.AddCommand(newDepartmentsCmd(app))
	cmd.AddCommand(newSellersCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newSeedCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	dir, err := store.ResolveDir(app.Dir, app.cfg)
	if err != nil {
		return writeErr(cmd, err)
	}
	logPath := app.LogFile
	if logPath == "" {
		logPath = filepath.Join(dir, "saleshub.log")
	}
	f, err := logging.OpenFile(logPath)
	if err != nil {
		return writeErr(cmd, fmt.Errorf("open log file: %w", err))
	}
	defer f.Close()

	ctx := logging.WithContext(cmd.Context(), logging.New(logging.Config{Level: app.LogLevel, Output: f}))
	db, err := store.Store{Dir: dir}.Open(ctx)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer db.Close()

	theme := ""
	if app.cfg != nil {
		theme = app.cfg.ThemeOrDefault()
	}
	return tui.Run(ctx, tui.Options{
		Departments: service.NewDepartmentServiceFromDB(db),
		Sellers:     service.NewSellerServiceFromDB(db),
		Theme:       theme,
		State:       store.Store{Dir: dir},
	})
}

type services struct {
	db          *store.DB
	departments *service.DepartmentService
	sellers     *service.SellerService
}

func (s services) Close() error { return s.db.Close() }

func openServices(ctx context.Context, app *App) (services, error) {
	dir, err := store.ResolveDir(app.Dir, app.cfg)
	if err != nil {
		return services{}, err
	}
	db, err := store.Store{Dir: dir}.Open(ctx)
	if err != nil {
		return services{}, err
	}
	return services{
		db:          db,
		departments: service.NewDepartmentServiceFromDB(db),
		sellers:     service.NewSellerServiceFromDB(db),
	}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// writeOut wraps JSON output in {"data": ...}; table output renders v directly.
func writeOut(cmd *cobra.Command, app *App, v any) error {
	if app.Format == "table" {
		return format.Write(cmd.OutOrStdout(), v, app.Format, app.Pretty)
	}
	return format.Write(cmd.OutOrStdout(), map[string]any{"data": v}, app.Format, app.Pretty)
}

// reportedError marks an error that was already printed to stderr.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already written to stderr by a command.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return reportedError{err: err}
}
