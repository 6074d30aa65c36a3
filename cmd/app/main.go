package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/sushihentaime/pressroom/internal/categoryservice"
	"github.com/sushihentaime/pressroom/internal/common"
	"github.com/sushihentaime/pressroom/internal/postservice"
)

type application struct {
	config          *Config
	logger          *slog.Logger
	categoryService *categoryservice.CategoryService
	postService     *postservice.PostService
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the database
	db, err := common.NewDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	// Initialize the services
	app := &application{
		config:          cfg,
		logger:          logger,
		categoryService: categoryservice.NewCategoryService(db),
		postService:     postservice.NewPostService(db),
	}

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
