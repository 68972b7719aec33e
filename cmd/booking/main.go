package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticket-booking/booking"
	"ticket-booking/booking/domain"
	"ticket-booking/booking/infra"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// .env é opcional; variáveis já exportadas têm precedência.
	_ = godotenv.Load()

	cfg, err := readConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n\n%s", err, usage(os.Args[0]))
		os.Exit(1)
	}

	log, err := newLogger(cfg.logLevel, cfg.logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("booking run failed", zap.Error(err))
	}
}

func run(cfg config, log *zap.Logger) error {
	if cfg.users > 1000 {
		log.Warn("large number of users may cause performance issues", zap.Int("users", cfg.users))
	}

	mem := infra.NewMemoryReporter()
	reporters := infra.MultiReporter{mem, infra.NewLogReporter(log.Named("worker"))}

	sys, err := booking.New(booking.Config{
		Shows:            cfg.shows,
		Capacity:         cfg.tickets,
		Permits:          cfg.concurrency,
		AdmissionTimeout: cfg.admissionTimeout,
		ProcessingDelay:  cfg.processingDelay,
		DispatchRate:     cfg.dispatchRPS,
	}, booking.WithLogger(log.Named("core")))
	if err != nil {
		return err
	}

	if cfg.statsEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.statsRedisAddr,
			Password: cfg.statsRedisPassword,
			DB:       cfg.statsRedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		cancel()
		if err != nil {
			return fmt.Errorf("redis stats ping: %w", err)
		}

		reporters = append(reporters, infra.NewRedisReporter(
			rdb,
			infra.WithStatsPrefix(cfg.statsPrefix),
			infra.WithStatsRunID(sys.RunID()),
			infra.WithStatsTTL(cfg.statsTTL),
		))
	}

	if cfg.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics, err := infra.NewMetricsReporter(reg, sys.Pool())
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		reporters = append(reporters, metrics)

		srv := &http.Server{
			Addr:              cfg.metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server error", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	sys.UseReporter(reporters)

	log.Info("booking system started",
		zap.String("run", sys.RunID()),
		zap.Int("users", cfg.users),
		zap.Int("tickets_per_show", cfg.tickets),
		zap.Int("shows", cfg.shows),
		zap.Int("concurrency", cfg.concurrency),
		zap.Duration("admission_timeout", cfg.admissionTimeout),
		zap.Duration("processing_delay", cfg.processingDelay),
		zap.Float64("dispatch_rps", cfg.dispatchRPS),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var sel domain.Selector = infra.NewRandomSelector(cfg.shows, cfg.seed)
	dispatchErr := sys.Dispatch(ctx, cfg.users, sel)
	if dispatchErr != nil {
		log.Warn("dispatch interrupted", zap.Error(dispatchErr))
	}

	log.Info("waiting for all users to complete booking")
	sys.Wait()

	rep := booking.BuildReport(sys.Snapshot(), int(mem.Total().Total()))
	fmt.Println(renderReport(rep, mem.Total()))

	if err := sys.Close(); err != nil {
		return fmt.Errorf("teardown: %w", err)
	}
	log.Info("all resources cleaned up")
	return nil
}

func usage(prog string) string {
	return fmt.Sprintf(`usage: %[1]s <num_users> <num_tickets> <num_shows>

examples:
  %[1]s 5 10 2    # 5 users, 10 tickets per show, 2 shows
  %[1]s 20 15 3   # 20 users, 15 tickets per show, 3 shows

arguments may also be set with BOOKING_USERS, BOOKING_TICKETS and BOOKING_SHOWS.
`, prog)
}
