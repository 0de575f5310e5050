package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/howell-dev/portfolio/internal/config"
	"github.com/howell-dev/portfolio/internal/content"
	"github.com/howell-dev/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long: `Starts the HTTP server on PORT. The page, its websocket view channel,
the contact endpoint and the admin dashboard are all served from one
process. SIGINT or SIGTERM shuts the server down gracefully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		site, err := content.Load(cfg.ContentFile)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		db, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		mailer := newEmailClient(cfg)
		if !mailer.Configured() {
			log.Println("WARNING: EmailJS is not configured. Contact submissions will fail until EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID and EMAILJS_PUBLIC_KEY are set.")
		}

		srv, err := web.New(web.Deps{
			Config: cfg,
			Site:   site,
			DB:     db,
			Mailer: mailer,
		})
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() { errc <- srv.Start(ctx) }()

		select {
		case err := <-errc:
			stop()
			srv.Shutdown(context.Background())
			return err
		case <-ctx.Done():
		}

		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return <-errc
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
