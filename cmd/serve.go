package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sagelight/outreach/internal/api"
	"github.com/sagelight/outreach/internal/config"
	"github.com/sagelight/outreach/internal/liststore"
	"github.com/sagelight/outreach/internal/logger"
	"github.com/sagelight/outreach/internal/metrics"
	"github.com/sagelight/outreach/internal/notification"
	"github.com/sagelight/outreach/internal/server"
	"github.com/sagelight/outreach/internal/service"
	"github.com/sagelight/outreach/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the HTTP API server for the marketing site backend.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP server port (overrides PORT env var)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}

	lg, err := logger.New(cfg.LogDir(), cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := storage.NewSQLiteDB(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening delivery log database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			lg.Warn("closing database", "error", cerr)
		}
	}()
	deliveryStore := storage.NewSQLiteDeliveryStore(db)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	list := liststore.NewHTTPClient(cfg.ListStoreURL, nil)
	provider := notification.NewSMTPProvider(cfg.SMTP)
	composer := &notification.Composer{
		SiteName:  cfg.SiteName,
		FromAddr:  cfg.SMTP.FromAddr,
		AdminAddr: cfg.AdminEmail,
	}

	subscriptionSvc := service.NewSubscriptionService(list, provider, composer, deliveryStore, m, lg)
	contactSvc := service.NewContactService(provider, composer, deliveryStore, m, lg)

	apiSrv := api.New(subscriptionSvc, contactSvc, deliveryStore, lg)
	srv := server.New(apiSrv, registry, cfg.Port, lg)

	fmt.Fprintf(os.Stderr, "outreach HTTP server running on http://localhost:%d\n", cfg.Port)
	fmt.Fprintf(os.Stderr, "  POST /sendEmail         → subscribe\n")
	fmt.Fprintf(os.Stderr, "  GET|POST /unsubscribeUser → unsubscribe\n")
	fmt.Fprintf(os.Stderr, "  POST /sendContactEmail  → contact form\n")
	fmt.Fprintf(os.Stderr, "  GET  /health            → health check\n")

	lg.Info("server starting", "port", cfg.Port)
	return srv.Run(ctx)
}
