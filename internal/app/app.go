package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"exchweb/internal/adapters/backend"
	"exchweb/internal/adapters/cache"
	"exchweb/internal/api"
	"exchweb/internal/config"
	"exchweb/internal/domain"
	"exchweb/internal/exchange"
	"exchweb/internal/notify"
	"exchweb/internal/orders"
	httpserver "exchweb/internal/platform/http"
	"exchweb/internal/rates"
	"exchweb/internal/session"
	"exchweb/internal/wallet"
	"exchweb/internal/web/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts the pollers and the HTTP
// server, and blocks until shutdown.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Backend client (configurable timeout)
	httpTimeout := time.Duration(appCfg.Backend.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseURL := strings.TrimSuffix(appCfg.Backend.BaseURL, "/")
	if baseURL == "" {
		return fmt.Errorf("backend base url is required")
	}
	backendClient := backend.NewClient(&http.Client{Timeout: httpTimeout}, baseURL)

	// Session
	sessions := session.NewManager(
		appCfg.Session.CookieName,
		time.Duration(appCfg.Session.MaxAgeDays)*24*time.Hour,
		appCfg.Session.Secure,
	)

	// Snapshot cache shared by the rate board and the wallet
	store, err := cache.NewSnapshotStore(64)
	if err != nil {
		logrus.WithError(err).Error("Error creating snapshot store")
		return err
	}
	defer store.Close()
	logrus.Info("✅ Snapshot store initialization successful")

	fallback := make([]domain.Currency, 0, len(appCfg.Currencies))
	for _, c := range appCfg.Currencies {
		fallback = append(fallback, domain.Currency(strings.ToUpper(strings.TrimSpace(c))))
	}

	// Background pollers
	ratePoller := rates.NewPoller(
		backendClient,
		sessions,
		store,
		time.Duration(appCfg.Poll.RatesIntervalSeconds)*time.Second,
		fallback,
	)
	walletWatcher := wallet.NewWatcher(
		backendClient,
		sessions,
		store,
		time.Duration(appCfg.Poll.WalletIntervalSeconds)*time.Second,
	)
	defer func() {
		if shutDownErr := ratePoller.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Rate poller shutdown error: %v", shutDownErr)
		}
		if shutDownErr := walletWatcher.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Wallet watcher shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := ratePoller.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start rate poller")
		return startErr
	}
	if startErr := walletWatcher.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start wallet watcher")
		return startErr
	}
	logrus.Info("✅ Poller activation successful")

	// Exchange flow
	notes := notify.NewCenter(time.Duration(appCfg.Notifications.TTLSeconds) * time.Second)
	executor := exchange.NewExecutor(ratePoller, backendClient, sessions)
	form := exchange.NewForm(
		backendClient,
		sessions,
		executor,
		walletWatcher,
		notes,
		ratePoller.SupportedCurrencies,
		time.Duration(appCfg.Form.DebounceMillis)*time.Millisecond,
	)
	history := orders.NewService(backendClient)

	// Handlers and router
	webHandler := handler.NewHandler(sessions, backendClient, form, ratePoller, walletWatcher, history, notes)
	router := api.NewRouter(webHandler, sessions)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
