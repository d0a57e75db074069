package main

import (
	"context"
	"log"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"image-workbench/internal/config"
	"image-workbench/internal/controllers"
	"image-workbench/internal/logger"
	"image-workbench/internal/models"
	"image-workbench/internal/opencv/memory"
	"image-workbench/internal/services"
	"image-workbench/internal/shutdown"
	"image-workbench/internal/transforms"
	"image-workbench/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
)

const (
	AppName    = "Image Workbench"
	AppID      = "com.imageprocessing.image-workbench"
	AppVersion = "1.0.0"

	configFile = "workbench.json"
)

func main() {
	configureRuntime()

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Printf("Config load failed, using defaults: %v", err)
	}

	appLogger := logger.NewConsoleLogger(resolveLogLevel(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	window.CenterOnScreen()

	appLogger.Info("main", "application starting", map[string]interface{}{
		"version":       AppVersion,
		"go_version":    runtime.Version(),
		"camera_device": cfg.CameraDevice,
		"history_size":  cfg.HistorySize,
	})

	// Models and support layer.
	memManager := memory.NewManager(appLogger)
	session := models.NewSession()
	history := models.NewHistory(cfg.HistorySize)
	registry := transforms.NewRegistry()

	// Services.
	imageService := services.NewImageService(session, memManager, appLogger, cfg.CameraDevice, cfg.JPEGQuality)
	editingService := services.NewEditingService(session, history, registry, memManager, appLogger)

	// MVC wiring.
	controller := controllers.NewMainController(ctx, imageService, editingService, session, appLogger)
	view := views.NewMainView(window)
	controller.SetMainView(view)

	// Ordered shutdown: dependents first.
	shutdownMgr := shutdown.NewManager(appLogger)
	shutdownMgr.Register("memory manager", memManager)
	shutdownMgr.Register("session", session)
	shutdownMgr.Register("editing service", editingService)
	shutdownMgr.Register("controller", controller)
	shutdownMgr.Listen(func() {
		cancel()
		fyne.Do(fyneApp.Quit)
	})

	window.SetCloseIntercept(func() {
		view.ShowConfirm("Exit", "Are you sure you want to exit?", func(confirmed bool) {
			if confirmed {
				window.Close()
			}
		})
	})
	window.SetOnClosed(func() {
		cancel()
		shutdownMgr.Shutdown()
		appLogger.Info("main", "application terminated", nil)
	})

	go monitorResources(ctx, appLogger, memManager, history, view)

	view.Show()
	fyneApp.Run()
}

// configureRuntime tunes the Go runtime for large image allocations.
func configureRuntime() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Higher GC threshold: buffers are few and large.
	debug.SetGCPercent(200)

	if os.Getenv("GOMEMLIMIT") == "" {
		os.Setenv("GOMEMLIMIT", "4GiB")
	}
}

// resolveLogLevel prefers the environment over the config file.
func resolveLogLevel(cfg *config.Config) zerolog.Level {
	if os.Getenv("LOG_LEVEL") != "" || os.Getenv("DEBUG") == "1" {
		return logger.LevelFromEnv()
	}
	if level, ok := logger.LevelFromString(cfg.LogLevel); ok {
		return level
	}
	return zerolog.InfoLevel
}

// monitorResources periodically logs Go and native memory usage and
// refreshes the status bar.
func monitorResources(ctx context.Context, appLogger logger.Logger, memManager *memory.Manager, history *models.History, view *views.MainView) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			allocs, deallocs, usedMemory := memManager.GetStats()

			appLogger.Debug("main", "resource usage", map[string]interface{}{
				"go_memory_mb":     memStats.Alloc / 1024 / 1024,
				"go_gc_runs":       memStats.NumGC,
				"native_allocs":    allocs,
				"native_deallocs":  deallocs,
				"native_memory_mb": usedMemory / 1024 / 1024,
				"active_mats":      memManager.ActiveMats(),
				"edits_recorded":   history.Len(),
				"avg_edit_time_ms": history.AverageDuration().Milliseconds(),
			})

			fyne.Do(func() {
				view.SetMemoryInfo(usedMemory)
			})
		case <-ctx.Done():
			return
		}
	}
}
