package app

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/config"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/db"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/logger"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/repository/dao"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/schedule"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	// Misconfigured meal windows are a startup failure, not a silent
	// fallback.
	sched, err := schedule.New(conf.Meals.Windows)
	if err != nil {
		return fmt.Errorf("failed to build meal schedule -> %w", err)
	}

	// Edits to the config file update the window calendar in place.
	config.OnChange(func(event fsnotify.Event, fresh *config.AppConfig) {
		if fresh.Meals == nil {
			return
		}

		if err := sched.Reload(fresh.Meals.Windows); err != nil {
			zap.L().Error("meal schedule reload rejected",
				zap.String("file", event.Name),
				zap.Error(err),
			)

			return
		}

		zap.L().Info("meal schedule reloaded", zap.String("file", event.Name))
	})

	s, err := api.NewServer(conf, postgresDB, sched)
	if err != nil {
		return fmt.Errorf("failed to build server -> %w", err)
	}

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
