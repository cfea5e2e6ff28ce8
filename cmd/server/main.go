package main

import (
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vortex-server/internal/engine"
	"vortex-server/internal/server"
	"vortex-server/internal/term"
	"vortex-server/internal/version"
	"vortex-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var configPath string
	var local bool
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Initial world seed (0 for random)")
	flag.StringVar(&configPath, "config", "", "Path to TOML config file")
	flag.BoolVar(&local, "local", false, "Play locally in the terminal instead of serving")
	flag.Parse()

	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}
	logger.Configure(cfg.Logging.Level, cfg.Logging.Format)

	// ЛОКАЛЬНЫЙ РЕЖИМ: экран занят tcell, логи глушим
	if local {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.SetOutput(io.Discard)
		if err := term.Run(cfg, seed); err != nil {
			logger.SetOutput(os.Stderr)
			logger.Log.Fatal("Terminal error: ", err)
		}
		return
	}

	logger.Log.Info("Starting Vortex...")
	logger.Log.Info(version.String())
	if seed != 0 {
		logger.Log.Infof("🎲 Using explicit master seed: %d", seed)
	}

	// 2. Запуск сервера
	srv := server.New(cfg, seed)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
}
