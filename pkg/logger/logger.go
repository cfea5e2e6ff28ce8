package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Init инициализирует глобальный логгер.
// Вызывается один раз при старте приложения (main или TestMain).
// Уровень и формат берутся из окружения; после чтения конфига их
// можно переопределить через Configure.
func Init() {
	Log = logrus.New()

	// По умолчанию - "info". Для отладки можно выставить "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}

	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))

	Log.SetOutput(os.Stdout)
	Configure(logLevel, logFormat)
}

// Configure переустанавливает уровень и формат (например, из TOML-конфига).
// "json" - для продакшена и сбора логов, "text" - для удобной разработки.
func Configure(logLevel, logFormat string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(logFormat) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}
}

// SetOutput перенаправляет вывод (локальный терминальный клиент
// забирает экран себе, логи уходят в файл или в никуда).
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}
