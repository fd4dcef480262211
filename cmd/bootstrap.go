package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	config "task-management.com/task-management/internal/configs"
	repository "task-management.com/task-management/internal/repositories"
	"task-management.com/task-management/internal/services"
)

type app struct {
	cfg   config.Config
	log   *logrus.Entry
	db    *gorm.DB
	users *services.UserService
	tasks *services.TaskService
}

// bootstrap loads configuration, opens the database and migrates the schema.
func bootstrap() (*app, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := config.NewLogger(cfg, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("configure logger: %w", err)
	}
	if envErr != nil {
		log.Debug(".env file not found, using environment variables")
	}

	db, err := config.NewDatabaseClient(cfg, log)
	if err != nil {
		return nil, err
	}

	if err := config.Migrate(db); err != nil {
		return nil, err
	}

	return &app{
		cfg:   cfg,
		log:   log,
		db:    db,
		users: services.NewUserService(repository.NewUserRepository(db), log),
		tasks: services.NewTaskService(repository.NewTaskRepository(db), log),
	}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
