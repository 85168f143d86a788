package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rankandrent/Packaginghippo-sub002/internal/config"
	"github.com/rankandrent/Packaginghippo-sub002/internal/database"
	"github.com/rankandrent/Packaginghippo-sub002/internal/database/queries"
	"github.com/rankandrent/Packaginghippo-sub002/internal/logging"
	"github.com/rankandrent/Packaginghippo-sub002/internal/tracing"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Opener acquires a Catalog for the duration of one command. The returned
// release func is always non-nil when err is nil.
type Opener func(ctx context.Context) (catalog Catalog, release func(), err error)

// Env is what the diagnostic commands need from their process.
type Env struct {
	Open    Opener
	Logger  *slog.Logger
	Timeout time.Duration // 0 means no deadline
}

// PostgresOpener opens a pool from cfg for each command run.
func PostgresOpener(cfg *config.Config) Opener {
	return func(ctx context.Context) (Catalog, func(), error) {
		db, err := database.New(ctx, database.Options{
			URL:      cfg.DatabaseURL,
			MaxConns: cfg.DBMaxConns,
			MinConns: cfg.DBMinConns,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		return queries.New(db.Pool), db.Close, nil
	}
}

type action func(ctx context.Context, catalog Catalog, w io.Writer) error

// run acquires the catalog, runs fn and releases the catalog on every path.
func (e Env) run(cmd *cobra.Command, fn action) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	catalog, release, err := e.Open(ctx)
	if err != nil {
		return err
	}
	defer release()

	return fn(ctx, catalog, cmd.OutOrStdout())
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// NewCountsCommand prints product, category and testimonial counts.
func NewCountsCommand(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "check-counts",
		Short: "Print catalog counts and warn when there is nothing to generate content from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.run(cmd, RunCounts)
		},
	}
}

// NewCategoriesCommand prints every category name and image URL.
func NewCategoriesCommand(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "list-categories",
		Short: "Print every product category with its image URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.run(cmd, RunCategories)
		},
	}
}

// NewSectionsCommand prints the homepage sections in display order.
//
// With --best-effort a failure is logged and the command still succeeds.
func NewSectionsCommand(env Env) *cobra.Command {
	var bestEffort bool

	cmd := &cobra.Command{
		Use:   "check-sections",
		Short: "Print homepage sections in display order (--best-effort to exit 0 on failure)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := env.run(cmd, RunSections)
			if err != nil && bestEffort {
				env.logger().Error("homepage section check failed", "error", err)
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&bestEffort, "best-effort", false, "log failures without a non-zero exit status")
	return cmd
}

// Execute runs cmd and maps its outcome to an exit code. Failures are
// logged once here, after every deferred release inside the command ran,
// under the path of the subcommand that failed.
func Execute(ctx context.Context, cmd *cobra.Command, logger *slog.Logger) int {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	executed, err := cmd.ExecuteContextC(ctx)
	if err != nil {
		name := cmd.Name()
		if executed != nil {
			name = executed.CommandPath()
		}
		logger.Error("command failed", "command", name, "error", err)
		return ExitFailure
	}
	return ExitOK
}

// Main is the body of the standalone diagnostic binaries.
func Main(newCommand func(Env) *cobra.Command) int {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("failed to load config", "error", err)
		return ExitFailure
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	// Spans go to stderr with the logs; stdout carries the report.
	shutdown, err := tracing.Setup(cfg.TraceExporter, os.Stderr)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		return ExitFailure
	}
	defer FlushTraces(shutdown, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := Env{
		Open:    PostgresOpener(cfg),
		Logger:  logger,
		Timeout: cfg.QueryTimeout,
	}
	return Execute(ctx, newCommand(env), logger)
}

// FlushTraces runs shutdown with a short deadline and logs a failure.
func FlushTraces(shutdown tracing.Shutdown, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Warn("failed to flush traces", "error", err)
	}
}
