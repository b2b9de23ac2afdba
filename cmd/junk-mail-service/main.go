// Package main boots the Junk Mail ordering service HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/viscontie/junk-mail-service/internal/cart"
	"github.com/viscontie/junk-mail-service/internal/config"
	httpapi "github.com/viscontie/junk-mail-service/internal/http"
	"github.com/viscontie/junk-mail-service/internal/identity"
	"github.com/viscontie/junk-mail-service/internal/notify"
	"github.com/viscontie/junk-mail-service/internal/obs"
	"github.com/viscontie/junk-mail-service/internal/orders"
	"github.com/viscontie/junk-mail-service/internal/prefs"
	"github.com/viscontie/junk-mail-service/internal/store"
)

func main() {
	cfg := config.Load()
	obs.InitLogger()
	obs.Logger.Info("service_starting")

	shutdownTracer, err := obs.InitTracer("junk-mail-service")
	if err != nil {
		obs.Logger.Warn("tracer_init_failed", "error", err)
		shutdownTracer = func(context.Context) error { return nil }
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var st store.Store
	if cfg.RedisURL != "" {
		rs, err := store.NewRedis(ctx, cfg.RedisURL, cfg.RedisNamespace)
		if err != nil {
			obs.Logger.Error("redis_connect_failed", "error", err)
			os.Exit(1)
		}
		defer rs.Close()
		st = rs
		obs.Logger.Info("store_ready", "backend", "redis")
	} else {
		st = store.NewMemory()
		obs.Logger.Info("store_ready", "backend", "memory")
	}

	prefStore, err := prefs.LoadFile(cfg.PrefsFile)
	if err != nil {
		obs.Logger.Error("prefs_load_failed", "error", err)
		os.Exit(1)
	}

	sender := notify.NewPushSender(cfg.PushEndpoint)
	disp := notify.NewDispatcher(sender)
	disp.Start(ctx, cfg.NotifyWorkers)
	reminders := notify.NewReminders(ctx, disp, cfg.ReminderTestIntervals)

	// Reminder schedules only exist in memory, so restore them from the
	// seeded preferences; otherwise every restart silently drops them.
	reminders.ScheduleAll(prefStore.All(), func(uid string) string {
		p, err := st.GetProfile(ctx, uid)
		if err != nil {
			return ""
		}
		return p.PushToken
	})

	resolver := identity.StoreResolver{Store: st}
	svc := orders.NewService(st, resolver, disp, prefStore, cfg.ReportLocation())

	app := httpapi.NewApp(cfg, svc, st, resolver, cart.NewRegistry(), prefStore, reminders, disp)
	mux := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	app.StartShutdown()
	ctxDrain, cancelDrain := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelDrain()
	if drained := disp.DrainUntil(ctxDrain); !drained {
		obs.Logger.Warn("shutdown_drain_timeout", "push_backlog", disp.BacklogSize())
	} else {
		obs.Logger.Info("shutdown_drain_complete")
	}

	ctxSrv, cancelSrv := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelSrv()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	if err := shutdownTracer(ctxSrv); err != nil {
		obs.Logger.Warn("tracer_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}
