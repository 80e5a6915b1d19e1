package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"creatorflow/domain/repository"
	"creatorflow/infrastructure/clients/creatorflow"
	"creatorflow/infrastructure/configuration"
	"creatorflow/infrastructure/logger"
	"creatorflow/infrastructure/persistence"
	"creatorflow/infrastructure/pubsub"
	"creatorflow/infrastructure/realtime"
	"creatorflow/infrastructure/servicebus"
	httpHandler "creatorflow/interfaces/http"
	"creatorflow/server"
	"creatorflow/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	if n := configuration.LoadEnvFromFile("config.env", ".env"); n > 0 {
		logger.GetLogger().WithField("variables", n).Info("Loaded env files")
		configuration.Reload()
	}
	cfg := configuration.C

	store, closeStore, err := persistence.NewStore(ctx, cfg)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Client storage not available - continuing with in-memory storage")
		store, closeStore = persistence.NewMemoryStore(), func() {}
	}
	defer closeStore()

	hub := realtime.NewActivityHub()
	activity := usecase.NewActivityFeed(hub)
	stopSinks := InitiateSinks(ctx, cfg, activity)
	defer stopSinks()

	session := usecase.NewSessionStore(store).WithActivity(activity)
	client := creatorflow.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, session)
	session.WithIdentity(client)
	if user := session.Init(ctx); user != nil {
		logger.GetLogger().WithField("user_id", user.ID).Info("Session restored")
	}

	registry := usecase.NewConnectionRegistry(store, cfg.Connections.HandshakeDelay).WithActivity(activity)
	registry.Hydrate(ctx)

	calendar := usecase.NewCalendarModel(client, session).WithActivity(activity)
	profileUsecase := usecase.NewProfileUsecase(client, session)
	ratingUsecase := usecase.NewRatingUsecase(client, session)
	billingUsecase := usecase.NewBillingUsecase(cfg.Billing.ProcessingDelay, activity)
	dashboardUsecase := usecase.NewDashboardUsecase(session, calendar, profileUsecase, registry)

	router := server.InitiateRouter(server.Handlers{
		Health:      httpHandler.NewHealthHandler(),
		Auth:        httpHandler.NewAuthHandler(session, client.LoginURL(), cfg.App.FrontendURL),
		Dashboard:   httpHandler.NewDashboardHandler(dashboardUsecase),
		Calendar:    httpHandler.NewCalendarHandler(calendar),
		Connections: httpHandler.NewConnectionHandler(registry),
		Profile:     httpHandler.NewProfileHandler(profileUsecase),
		Rating:      httpHandler.NewRatingHandler(ratingUsecase),
		Billing:     httpHandler.NewBillingHandler(billingUsecase),
		Clip:        httpHandler.NewClipHandler(cfg.Clip.WindowSeconds),
	}, session, hub)

	// Periodic session check so an expired token is dropped without waiting
	// for the next backend call to fail.
	if interval := cfg.Session.RevalidateInterval; interval > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					session.Revalidate(ctx)
				}
			}
		})
	}

	app := cfg.App
	logger.GetLogger().WithFields(map[string]interface{}{
		"port":    app.Port,
		"tls":     app.TLSEnabled,
		"backend": cfg.Backend.BaseURL,
	}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", app.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}
		if app.TLSEnabled {
			if app.TLSCertFile == "" || app.TLSKeyFile == "" {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
			} else {
				logger.GetLogger().WithFields(map[string]interface{}{"cert": app.TLSCertFile, "key": app.TLSKeyFile}).Info("Serving HTTPS")
				if err := httpServer.ListenAndServeTLS(app.TLSCertFile, app.TLSKeyFile); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	hub.Close()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// InitiateSinks attaches the external activity sinks listed in
// events.sinks. A sink that cannot connect is skipped. The returned func
// releases the clients.
func InitiateSinks(ctx context.Context, cfg configuration.Config, feed *usecase.ActivityFeed) func() {
	var closers []func()
	add := func(name string, sink repository.IEventPublisher, closer func()) {
		feed.Add(sink)
		closers = append(closers, closer)
		logger.GetLogger().WithField("sink", name).Info("Activity sink attached")
	}

	for _, name := range cfg.Events.Sinks {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "pubsub":
			pubSubClient, err := pubsub.NewPubSub(ctx, cfg.Pubsub.ProjectID)
			if err != nil {
				logger.GetLogger().WithField("error", err).Warn("PubSub not available - continuing without PubSub activity")
				continue
			}
			publisher := pubsub.NewActivityPubSub(pubSubClient, cfg.Events.Topic)
			add(name, publisher, func() {
				publisher.Stop()
				_ = pubSubClient.Close()
			})
		case "servicebus":
			azServiceBusClient, err := servicebus.NewServiceBus(ctx, cfg.ServiceBus.Namespace)
			if err != nil {
				logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without Service Bus activity")
				continue
			}
			add(name, servicebus.NewActivityServiceBus(azServiceBusClient, cfg.Events.Queue), func() {
				_ = azServiceBusClient.Close(context.Background())
			})
		default:
			logger.GetLogger().WithField("sink", name).Warn("Unknown activity sink ignored")
		}
	}

	return func() {
		for _, closer := range closers {
			closer()
		}
	}
}
