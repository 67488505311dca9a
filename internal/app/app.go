// Package app wires config into the store, repositories and services shared
// by the server and lunchctl.
package app

import (
	"database/sql"
	"fmt"

	"lunchbox/backend/internal/calendar"
	"lunchbox/backend/internal/config"
	"lunchbox/backend/internal/db"
	"lunchbox/backend/internal/repository"
	"lunchbox/backend/internal/rowid"
	"lunchbox/backend/internal/service"
)

type App struct {
	DB          *sql.DB
	Dialect     db.Dialect
	Orders      service.OrderService
	Settings    service.SettingsService
	Maintenance service.MaintenanceService
}

func New(cfg config.Config) (*App, error) {
	dates, err := calendar.NewNormalizer(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	ids, err := rowid.New(cfg.NodeID)
	if err != nil {
		return nil, fmt.Errorf("init row ids: %w", err)
	}

	var (
		conn    *sql.DB
		dialect db.Dialect
	)
	if cfg.UsePostgres() {
		dialect = db.Postgres
		conn, err = db.OpenPostgres(cfg.DatabaseURL)
	} else {
		dialect = db.SQLite
		conn, err = db.Open(cfg.DBPath)
	}
	if err != nil {
		return nil, err
	}

	orderRepo := repository.NewOrderRepository(conn, dialect, ids)
	settingsRepo := repository.NewSettingsRepository(conn, dialect, ids)

	orders := service.NewOrderService(orderRepo, dates, nil)
	settings := service.NewSettingsService(settingsRepo)

	return &App{
		DB:          conn,
		Dialect:     dialect,
		Orders:      orders,
		Settings:    settings,
		Maintenance: service.NewMaintenanceService(orderRepo, orders, settings, dates, nil),
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
