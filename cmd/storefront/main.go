package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/QuantumCastro/L-Artisan/internal/app"
	"github.com/QuantumCastro/L-Artisan/internal/catalog"
	"github.com/QuantumCastro/L-Artisan/internal/config"
	"github.com/QuantumCastro/L-Artisan/internal/domain"
	"github.com/QuantumCastro/L-Artisan/internal/event"
	"github.com/QuantumCastro/L-Artisan/internal/i18n"
	"github.com/QuantumCastro/L-Artisan/internal/repository/memory"
	"github.com/QuantumCastro/L-Artisan/internal/scheduler"
	"github.com/QuantumCastro/L-Artisan/internal/service"
	"github.com/QuantumCastro/L-Artisan/pkg/logger"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

type outputFlags struct {
	lang   string
	format string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "L'Artisan storefront service",
		Long:          "Runs the L'Artisan storefront HTTP service and inspects its catalog from the command line.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(newServeCmd(), newCatalogCmd(), newSearchCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service (configured from the environment)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return codeError(3, "%s", err)
	}

	log := logger.New(app.ServiceName, cfg.LogLevel)
	log.Info("starting storefront service",
		slog.String("environment", cfg.Environment),
		slog.Int("http_port", cfg.HTTPPort),
		slog.String("session_store", cfg.SessionStore),
	)

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Error("failed to initialize application", slog.String("error", err.Error()))
		return codeError(1, "initialize application: %s", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Run(ctx); err != nil {
		log.Error("application error", slog.String("error", err.Error()))
		return codeError(1, "%s", err)
	}

	log.Info("storefront service stopped")
	return nil
}

func newCatalogCmd() *cobra.Command {
	var flags outputFlags
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(flags.format); err != nil {
				return err
			}
			lang := domain.ParseLanguage(flags.lang)
			products := offlineService().Products(lang)
			if flags.format == "json" {
				return writeJSON(cmd.OutOrStdout(), products)
			}
			return writeProducts(cmd.OutOrStdout(), i18n.For(lang), products)
		},
	}
	addOutputFlags(cmd, &flags)
	return cmd
}

func newSearchCmd() *cobra.Command {
	var (
		flags    outputFlags
		category string
	)
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Filter the catalog by category and free-text query",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(flags.format); err != nil {
				return err
			}
			res := offlineService().Search(category, strings.Join(args, " "), flags.lang)
			if flags.format == "json" {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, res.Text.Showing)
			if res.Summary.Empty {
				fmt.Fprintln(w, i18n.For(res.Language).Empty.Title)
				return nil
			}
			return writeProducts(w, i18n.For(res.Language), res.Products)
		},
	}
	cmd.Flags().StringVar(&category, "category", string(domain.CategoryAll), "Category: all, suits, shirts, coats, shoes or accessories")
	addOutputFlags(cmd, &flags)
	return cmd
}

func addOutputFlags(cmd *cobra.Command, flags *outputFlags) {
	f := cmd.Flags()
	f.StringVar(&flags.lang, "lang", string(domain.DefaultLanguage), "Display language: en or es")
	f.StringVar(&flags.format, "format", "text", "Output format: text or json")
}

func validateFormat(format string) error {
	if format != "text" && format != "json" {
		return codeError(2, "invalid --format %q: must be text or json", format)
	}
	return nil
}

// offlineService builds a storefront service for read-only CLI commands.
func offlineService() *service.StorefrontService {
	log := logger.Discard()
	return service.NewStorefrontService(
		catalog.Default(),
		memory.NewSessionRepository(time.Hour),
		scheduler.NewReal(),
		event.NewProducer(nil, 0, log),
		log,
		service.DefaultConfig(),
	)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeProducts(w io.Writer, msgs i18n.Messages, products []domain.LocalizedProduct) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSLUG\tNAME\tCATEGORY\tPRICE\tSIZES")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Slug, p.Name, msgs.CategoryLabel(p.Category), msgs.FormatPrice(p.Price), strings.Join(p.Sizes, ","))
	}
	return tw.Flush()
}
