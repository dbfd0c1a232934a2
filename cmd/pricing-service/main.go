package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/camino-stays/pricing-service/internal/app/background"
	"github.com/camino-stays/pricing-service/internal/app/setup"
	"github.com/camino-stays/pricing-service/internal/config"
	deliveryhttp "github.com/camino-stays/pricing-service/internal/delivery/http"
	"github.com/camino-stays/pricing-service/internal/infrastructure/migrate"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	cfg := config.MustLoad()

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	if err := migrate.RunMigrations(deps.DB, cfg.PricingDB.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	useCases := setup.InitializeUseCases(deps)

	handler := deliveryhttp.NewHandler(
		useCases.RateEngine,
		useCases.ConfigUsecase,
		useCases.SeasonUsecase,
		useCases.CalendarUsecase,
		useCases.PromotionUsecase,
		useCases.MealUsecase,
		useCases.ReservationUsecase,
		deps.Repositories.DailyRateRepo,
	)
	router := deliveryhttp.NewRouter(handler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tasks := background.NewBackgroundTasks(
		useCases.RateEngine,
		deps.Repositories.ConfigRepo,
		deps.Repositories.RoomTypeRepo,
		useCases.PromotionUsecase,
		cfg.Engine,
	)
	tasks.StartAll(ctx)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}

	go func() {
		log.Printf("HTTP server started on %s:%s\n", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v\n", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v\n", err)
	}
}
