package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/blogem/task-tracker/config"
	"github.com/blogem/task-tracker/controllers"
	"github.com/blogem/task-tracker/database"
	"github.com/blogem/task-tracker/logging"
	appmiddleware "github.com/blogem/task-tracker/middleware"
	"github.com/blogem/task-tracker/repositories"
	"github.com/blogem/task-tracker/services"
	"github.com/blogem/task-tracker/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// requestTimeoutSlack covers everything a request does besides waiting on inference
const requestTimeoutSlack = 15 * time.Second

func main() {
	// A .env file is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", slog.Any("error", err))
	}

	server := config.LoadServer()
	logger := logging.Init(server.LogFormat, logging.ParseLevel(server.LogLevel))

	cfg, err := config.Load(server.ConfigPath)
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize audit database
	if err := database.InitializeDatabase(server.AuditDBPath); err != nil {
		logger.Error("failed to initialize database", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.CloseDB()

	repos := repositories.NewRepositories(database.GetDB(), server.TaskLogPath)
	if err := repos.TaskLog.EnsureExists(); err != nil {
		logger.Error("failed to prepare task log", slog.String("path", server.TaskLogPath), slog.Any("error", err))
		os.Exit(1)
	}

	srvs := services.NewServices(repos, cfg)
	ctrl := controllers.NewControllers(srvs)

	r := setupRouter(ctrl, repos, logger, cfg.Ollama.Timeout+requestTimeoutSlack)

	logger.Info("task tracker starting",
		slog.String("addr", server.Addr()),
		slog.String("task_log", server.TaskLogPath),
		slog.String("audit_db", server.AuditDBPath),
		slog.String("ollama", cfg.Ollama.APIURL),
		slog.String("model", cfg.Ollama.Model))

	if err := http.ListenAndServe(server.Addr(), r); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, repos *repositories.Repositories, logger *slog.Logger, timeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmiddleware.RequestLogger(logger))
	r.Use(appmiddleware.RecoverJSON)
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.Compress(5))
	r.Use(appmiddleware.AuditLogger(repos.Audit))

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	r.Get("/", ctrl.Dashboard.Index)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy", "service": "task-tracker"})
	})

	// Task log mutations
	r.Post("/log_task", ctrl.Tasks.LogTask)
	r.Post("/stop_task", ctrl.Tasks.StopTask)
	r.Post("/clear_recent", ctrl.Tasks.ClearRecent)
	r.Post("/update_task_categories", ctrl.Tasks.UpdateCategories)

	// Reporting
	r.Get("/get_stats", ctrl.Stats.GetStats)
	r.Get("/get_categories", ctrl.Tasks.GetCategories)
	r.Get("/audit_log", ctrl.Audit.Index)

	return r
}
