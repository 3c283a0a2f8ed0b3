package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/RoGogDBD/menucat/docs" // регистрация swagger-спецификации
	"github.com/RoGogDBD/menucat/internal/app"
	"github.com/RoGogDBD/menucat/internal/config"
	"github.com/RoGogDBD/menucat/internal/handlers"
	"github.com/RoGogDBD/menucat/internal/telemetry"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title		Menu Catalog Service API
//	@version	1.0
//	@BasePath	/

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Флаги перекрывают файл конфигурации
	addr, dsn := config.ParseFlags()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if dsn != "" {
		cfg.Database.DSN = dsn
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "a" {
			cfg.Server.Host = addr.Host
			cfg.Server.Port = addr.Port
		}
	})

	a := app.NewApp(cfg)
	if err := a.Init(); err != nil {
		return err
	}
	defer a.Close()

	// Телеметрия
	providers, err := telemetry.Init(a.Context(), cfg.Telemetry)
	if err != nil {
		log.Printf("Warning: telemetry init failed: %v", err)
		providers = nil
	}
	defer func() {
		if providers == nil {
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown error: %v", err)
		}
	}()

	// Инициализация chi роутера и middlewares
	r := chi.NewRouter()
	config.SetupMiddlewares(r)

	// Инициализация обработчиков
	h := handlers.NewHandler(a.Store)
	h.RegisterRoutes(r)
	r.Get("/healthz", h.HealthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	if providers != nil && providers.MetricsHandler != nil {
		r.Handle(cfg.Telemetry.MetricsPath, providers.MetricsHandler)
	}

	var handler http.Handler = r
	if cfg.Telemetry.TracesEnabled {
		handler = otelhttp.NewHandler(r, "menu-catalog")
	}

	// Конфигурация и запуск сервера
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Menu catalog listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		log.Printf("Received signal %s, shutting down...", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}
