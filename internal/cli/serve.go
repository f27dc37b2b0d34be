package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	v1 "github.com/Mura0908/finsight-app-New/internal/controllers/v1"
	"github.com/Mura0908/finsight-app-New/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout        = 30 * time.Second
	sessionCleanupInterval = 10 * time.Minute
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Args:  cobra.NoArgs,
		RunE:  a.serve,
	}
}

func (a *app) serve(cmd *cobra.Command, _ []string) error {
	b, err := a.openLedger(true)
	if err != nil {
		return err
	}
	defer b.release()

	url, err := a.config.URL()
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(url, router.Options{
		AllowOrigins: a.config.CORSAllowOrigins,
		EnablePprof:  a.config.EnablePprof,
	})
	defer teardown()
	if err != nil {
		return err
	}

	controller := v1.Controller{DB: b.db, Ledger: b.ledger}
	router.AttachRoutes(controller, r.Group(url.Path))

	server := &http.Server{
		Addr:              ":" + a.config.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Str("url", url.String()).Msg("Starting FinSight")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if removed := b.sessions.CleanExpired(); removed > 0 {
					log.Debug().Int("removed", removed).Msg("Expired repayment sessions")
				}
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msg("Server stopped gracefully")
	return nil
}
