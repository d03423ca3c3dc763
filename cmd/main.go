package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"quickbite/internal/config"
	"quickbite/internal/database"
	"quickbite/internal/httpx"
	"quickbite/internal/logger"
	"quickbite/internal/messaging"
	"quickbite/internal/services/customer"
	"quickbite/internal/services/menu"
	"quickbite/internal/services/notification"
	"quickbite/internal/services/order"
	"quickbite/internal/services/reporting"
)

func main() {
	var (
		mode       = flag.String("mode", "api", "Service mode (api, notification-subscriber)")
		configPath = flag.String("config", "config.yaml", "Path to config file")
		port       = flag.Int("port", 0, "HTTP port (overrides config)")
		prefetch   = flag.Int("prefetch", 1, "RabbitMQ prefetch count")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	log := logger.New(*mode)
	requestID := logger.GenerateRequestID()

	log.Info("service_started", fmt.Sprintf("Starting %s", *mode), requestID, map[string]interface{}{
		"mode": *mode,
		"port": cfg.HTTP.Port,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	switch *mode {
	case "api":
		if err := runAPI(ctx, cfg, log); err != nil {
			log.Error("service_failed", "API service failed", requestID, err, nil)
			os.Exit(1)
		}
	case "notification-subscriber":
		if err := runNotificationSubscriber(ctx, cfg, log, *prefetch); err != nil {
			log.Error("service_failed", "Notification subscriber failed", requestID, err, nil)
			os.Exit(1)
		}
	default:
		log.Error("validation_failed", fmt.Sprintf("Unknown mode: %s", *mode), requestID, nil, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

// runAPI runs the HTTP API service
func runAPI(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	requestID := logger.GenerateRequestID()

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

	if err := db.RunMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)

	publisher := messaging.NewPublisher(conn, log)

	customerService := customer.NewService(customer.NewPostgresRepository(db), log)
	menuService := menu.NewService(menu.NewPostgresRepository(db), log)
	orderService := order.NewService(order.NewPostgresRepository(db), publisher, log)
	reportingService := reporting.NewService(reporting.NewPostgresRepository(db), log)

	router := httpx.NewRouter(log)
	reporting.NewHandler(reportingService, log).Register(router)
	customer.NewHandler(customerService, log).Register(router)
	menu.NewHandler(menuService, log).Register(router)
	order.NewHandler(orderService, log).Register(router)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		healthCtx, healthCancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer healthCancel()

		status := http.StatusOK
		response := map[string]interface{}{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		if err := db.Ping(healthCtx); err != nil {
			status = http.StatusServiceUnavailable
			response["status"] = "unhealthy"
		}
		httpx.WriteJSON(w, status, response)
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Info("service_started", fmt.Sprintf("API started on port %d", cfg.HTTP.Port), requestID, map[string]interface{}{
			"port": cfg.HTTP.Port,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

// runNotificationSubscriber runs the status notification consumer
func runNotificationSubscriber(ctx context.Context, cfg *config.Config, log *logger.Logger, prefetch int) error {
	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	consumer := messaging.NewConsumer(conn, log, messaging.NotificationsQueue, "notification-subscriber", prefetch)
	subscriber := notification.NewSubscriber(consumer, log)
	defer subscriber.Close()

	return subscriber.Start(ctx)
}
