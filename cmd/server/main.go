// RentDesk - Property management back office
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rentdesk/backoffice/internal/api"
	"github.com/rentdesk/backoffice/internal/auth"
	"github.com/rentdesk/backoffice/internal/backend"
	"github.com/rentdesk/backoffice/internal/config"
	"github.com/rentdesk/backoffice/internal/logger"
	"github.com/rentdesk/backoffice/internal/metrics"
	"github.com/rentdesk/backoffice/internal/shell"
	"github.com/rentdesk/backoffice/internal/views"
)

var Version = "1.0.0"

func main() {
	fmt.Printf("RentDesk %s - Starting...\n", Version)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer zlog.Sync()

	logToken(zlog, cfg.APIToken)

	m := metrics.New("rentdesk")

	client, err := backend.New(cfg, zlog, m)
	if err != nil {
		zlog.Fatal("API client init failed", zap.Error(err))
	}

	v, err := views.New(client, zlog)
	if err != nil {
		zlog.Fatal("View init failed", zap.Error(err))
	}

	sh, err := shell.New(client, zlog)
	if err != nil {
		zlog.Fatal("Shell init failed", zap.Error(err))
	}
	sh.Register(shell.Page{ID: "dashboard", Title: "Dashboard", Icon: "📊", Load: v.LoadDashboard})
	sh.Register(shell.Page{ID: "tenants", Title: "Tenants", Icon: "👥", Load: v.LoadTenants})
	sh.Register(shell.Page{ID: "landlords", Title: "Landlords", Icon: "🏠", Load: v.LoadLandlords})
	sh.Register(shell.Page{ID: "properties", Title: "Properties", Icon: "🏢", Load: v.LoadProperties})
	sh.Register(shell.Page{ID: "payments", Title: "Payments", Icon: "💰", Load: v.LoadPayments})
	sh.Register(shell.Page{ID: "documents", Title: "Documents", Icon: "📄", Load: v.LoadDocuments})

	handler := api.NewHandler(sh, v, client, m, zlog)
	router := api.SetupRouter(cfg, handler, m, zlog)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	zlog.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("api_base_url", cfg.APIBaseURL))
	if err := srv.ListenAndServe(); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}

// logToken records who the office acts as upstream. The token is read once
// at startup and never refreshed; an expired one only shows up here and as
// 401 upstream errors later.
func logToken(zlog *zap.Logger, token string) {
	if token == "" {
		zlog.Warn("no API token configured, upstream requests will be anonymous")
		return
	}
	info := auth.Inspect(token)
	if info.Opaque {
		zlog.Info("API token configured (opaque)")
		return
	}
	fields := []zap.Field{zap.String("subject", info.Subject)}
	if info.ExpiresAt != nil {
		fields = append(fields, zap.Time("expires_at", *info.ExpiresAt))
	}
	if info.Expired {
		zlog.Warn("API token already expired", fields...)
		return
	}
	zlog.Info("API token configured", fields...)
}
