// Command storefront runs the read-only admin server and the catalog
// diagnostics for the Packaging Hippo storefront.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rankandrent/Packaginghippo-sub002/internal/config"
	"github.com/rankandrent/Packaginghippo-sub002/internal/diag"
	"github.com/rankandrent/Packaginghippo-sub002/internal/logging"
	"github.com/rankandrent/Packaginghippo-sub002/internal/tracing"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("failed to load config", "error", err)
		return diag.ExitFailure
	}

	// Logger
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	// check subcommands print their report on stdout, so failures and
	// spans go to stderr.
	errLogger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	shutdown, err := tracing.Setup(cfg.TraceExporter, os.Stderr)
	if err != nil {
		errLogger.Error("failed to set up tracing", "error", err)
		return diag.ExitFailure
	}
	defer diag.FlushTraces(shutdown, errLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return diag.Execute(ctx, newRootCommand(cfg, logger, errLogger), errLogger)
}

func newRootCommand(cfg *config.Config, logger, errLogger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "storefront",
		Short: "Packaging Hippo admin server and catalog diagnostics",
	}
	root.AddCommand(newServeCommand(cfg, logger))
	root.AddCommand(newCheckCommand(cfg, errLogger))
	return root
}

func newCheckCommand(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	check := &cobra.Command{
		Use:   "check",
		Short: "Run read-only database sanity checks",
	}

	env := diag.Env{
		Open:    diag.PostgresOpener(cfg),
		Logger:  logger,
		Timeout: cfg.QueryTimeout,
	}

	counts := diag.NewCountsCommand(env)
	counts.Use = "counts"
	categories := diag.NewCategoriesCommand(env)
	categories.Use = "categories"
	sections := diag.NewSectionsCommand(env)
	sections.Use = "sections"

	check.AddCommand(counts, categories, sections)
	return check
}
