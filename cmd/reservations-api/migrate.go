package main

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"table-reservations-go/internal/db"
	"table-reservations-go/pkg/logger"
)

func newMigrateCmd(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(log, func(conn *gorm.DB) error {
				return db.Migrate(conn, log)
			})
		},
	}
}

func newPopulateCmd(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "populate",
		Short: "Migrate and seed the database with sample tables and reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(log, func(conn *gorm.DB) error {
				if err := db.Migrate(conn, log); err != nil {
					return err
				}
				return db.Populate(conn, log)
			})
		},
	}
}

func withDB(log logger.Logger, fn func(*gorm.DB) error) error {
	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	conn, err := db.Open(cfg.DB, log)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	return fn(conn)
}
