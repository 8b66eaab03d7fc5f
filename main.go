package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio site",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.AddCommand(serve, newRenderCmd(), newStatsCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg Config) error {
	gin.SetMode(cfg.Mode)

	log, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	content, err := DefaultContent()
	if err != nil {
		return err
	}

	tracker, err := OpenTracker(cfg.DBPath)
	if err != nil {
		return err
	}
	// Runs after shutdown; Close waits for pending visit writes.
	defer tracker.Close()

	admin, err := NewAdmin(cfg, tracker, log)
	if err != nil {
		return err
	}

	router, err := NewRouter(&App{Content: content, Tracker: tracker, Admin: admin, Log: log})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		removed, err := tracker.Cleanup(gctx)
		if err != nil {
			log.Warn("error cleaning up old visitor data", zap.Error(err))
			return nil
		}
		if removed > 0 {
			log.Info("privacy cleanup", zap.Int64("removed", removed))
		}
		return nil
	})

	g.Go(func() error {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("mode", cfg.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print visitor and theme toggle counts from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := OpenTracker(LoadConfig().DBPath)
			if err != nil {
				return err
			}
			defer tracker.Close()

			stats, err := tracker.Stats(cmd.Context())
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
}

func printStats(w io.Writer, stats *TrackerStats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Count"})
	rows := []struct {
		name  string
		count int64
	}{
		{"Total visits", stats.TotalVisitors},
		{"Unique visitors", stats.UniqueVisitors},
		{"Today", stats.VisitorsToday},
		{"Last 7 days", stats.VisitorsThisWeek},
		{"Theme toggles", stats.TotalToggles},
		{"Toggled to dark", stats.ToggledDark},
		{"Toggled to light", stats.ToggledLight},
	}
	for _, r := range rows {
		table.Append([]string{r.name, strconv.FormatInt(r.count, 10)})
	}
	table.Render()
}

func newRenderCmd() *cobra.Command {
	var (
		out         string
		themeName   string
		prefersDark bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the portfolio as a static HTML page",
		RunE: func(cmd *cobra.Command, args []string) error {
			if themeName != "auto" && themeName != themeLight && themeName != themeDark {
				return fmt.Errorf("--theme must be auto, light or dark, got %q", themeName)
			}
			content, err := DefaultContent()
			if err != nil {
				return err
			}

			store := NewMemoryStore()
			if themeName != "auto" {
				store.Set(themeKey, themeName)
			}
			resolver := NewResolver(store, func() bool { return prefersDark })

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			if err := RenderPage(f, NewComposer(resolver).Theme(), content); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "index.html", "output file")
	cmd.Flags().StringVar(&themeName, "theme", "auto", "auto, light or dark")
	cmd.Flags().BoolVar(&prefersDark, "prefers-dark", false, "ambient color scheme used when --theme is auto")
	return cmd
}
