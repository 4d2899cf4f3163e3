package main

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/user/companyscout/internal/auth"
	"github.com/user/companyscout/internal/gateway"
	"github.com/user/companyscout/internal/mcp"
	"github.com/user/companyscout/internal/ratelimit"
	"github.com/user/companyscout/internal/research"
	"github.com/user/companyscout/internal/session"
	"github.com/user/companyscout/pkg/linkup"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the research server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

// toolList converts the research tool definitions into the MCP
// discovery format.
func toolList() []mcp.Tool {
	defs := research.Definitions()
	out := make([]mcp.Tool, 0, len(defs))
	for _, d := range defs {
		out = append(out, mcp.Tool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.InputSchema(),
		})
	}
	return out
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	setupLogging(cfg)

	client := linkup.New(cfg.Linkup.BaseURL)
	dispatcher := research.NewDispatcher(client, slog.Default())
	sessions := session.NewRegistry()
	limiter := ratelimit.New()
	resolver := auth.NewResolver(cfg.Linkup.APIKey)

	srv := gateway.NewServer(resolver, limiter, sessions, toolList(), dispatcher, version)
	httpServer := &http.Server{
		Addr:    cfg.ListenAddr(),
		Handler: srv,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("companyscout started",
		"listen", cfg.ListenAddr(),
		"log_level", cfg.LogLevel,
		"tools", len(research.Definitions()),
		"fallback_key_configured", cfg.Linkup.APIKey != "",
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, closing", "error", err)
			httpServer.Close()
		}
		client.Close()
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("shutting down")
	return nil
}
