package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New создает логгер с уровнем и форматом из конфигурации.
// JSON используется по умолчанию, text оставлен для локальной отладки
func New(logLevel, logFormat string) *logrus.Logger {
	log := logrus.New()

	switch logFormat {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	}

	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
