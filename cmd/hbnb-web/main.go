package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/hbnb-web/internal/cache"
	"github.com/pribylovaa/hbnb-web/internal/clients"
	"github.com/pribylovaa/hbnb-web/internal/config"
	webhttp "github.com/pribylovaa/hbnb-web/internal/http"
	"github.com/pribylovaa/hbnb-web/internal/service"
	"github.com/pribylovaa/hbnb-web/internal/session"
	"github.com/pribylovaa/hbnb-web/internal/view"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting hbnb-web", "env", cfg.Env, "backend", cfg.Backend.BaseURL)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	cl, err := clients.New(*cfg, log)
	if err != nil {
		log.Error("clients_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if cerr := cl.Close(); cerr != nil {
			log.Warn("clients_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	placesCache := setupCache(rootCtx, cfg.Cache, log)
	defer func() {
		if cerr := placesCache.Close(); cerr != nil {
			log.Warn("cache_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	tpl, err := view.New()
	if err != nil {
		log.Error("templates_parse_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	svc := service.New(cl, placesCache, cfg.Cache.TTL)

	pages := webhttp.NewRouter(svc, webhttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Service,
		Sessions: session.NewManager(cfg.Session.CookieName, cfg.Session.TTL),
		View:     tpl,
	})

	var ready atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if ready.Load() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/", pages)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	metricsSrv := &http.Server{
		Addr:              cfg.Metrics.Addr(),
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(rootCtx)

	for _, srv := range []*http.Server{httpSrv, metricsSrv} {
		ln, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			log.Error("http_listen_failed", slog.String("addr", srv.Addr), slog.String("err", err.Error()))
			os.Exit(1)
		}

		log.Info("http_listen_start", slog.String("addr", srv.Addr))

		g.Go(func() error {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	ready.Store(true)
	log.Info("web_ready")

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown_requested")
		ready.Store(false)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		for _, srv := range []*http.Server{httpSrv, metricsSrv} {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Warn("http_shutdown_incomplete", slog.String("addr", srv.Addr), slog.String("err", err.Error()))
			}
		}

		log.Info("http_stopped")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("http_serve_failed", slog.String("err", err.Error()))
	}

	log.Info("service_stopped")
}

// setupCache — Redis при заданном cache.redis_url, иначе заглушка.
// Недоступный Redis не мешает старту: страницы работают без кэша.
func setupCache(ctx context.Context, cfg config.CacheConfig, log *slog.Logger) cache.PlacesCache {
	if !cfg.Enabled() {
		log.Info("cache_disabled")
		return cache.Noop{}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	c, err := cache.NewRedisCache(pingCtx, cfg.RedisURL, cfg.Prefix)
	if err != nil {
		log.Warn("cache_init_failed", slog.String("err", err.Error()))
		return cache.Noop{}
	}

	log.Info("cache_enabled", slog.Duration("ttl", cfg.TTL))
	return c
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
