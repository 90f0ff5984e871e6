package app

import (
	"net/http"

	"gorm.io/gorm"

	"table-reservations-go/internal/config"
	"table-reservations-go/internal/db"
	reservationsdomain "table-reservations-go/internal/domain/reservations"
	tablesdomain "table-reservations-go/internal/domain/tables"
	reservationsrepo "table-reservations-go/internal/repository/reservations"
	tablesrepo "table-reservations-go/internal/repository/tables"
	"table-reservations-go/internal/transport/httpserver"
	"table-reservations-go/internal/transport/httpserver/handler"
	"table-reservations-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

// New connects to the database, applies migrations and assembles the HTTP
// server. The caller owns the returned App and must Close it.
func New(cfg config.Config, log logger.Logger) (*App, error) {
	log.Info("app: initializing database")
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, log); err != nil {
		closeDB(dbConn)
		return nil, err
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		closeDB(dbConn)
		return nil, err
	}

	log.Info("app: initializing services")
	tableRepo := tablesrepo.NewPostgres(dbConn)
	tableService := tablesdomain.NewService(tableRepo)
	reservationService := reservationsdomain.NewService(reservationsrepo.NewPostgres(dbConn), tableRepo)

	log.Info("app: initializing router")
	handlers := handler.New(tableService, reservationService, sqlDB, log)
	router := httpserver.NewRouter(cfg, handlers, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(conn *gorm.DB) {
	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
