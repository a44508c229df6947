// Package main точка входа бэкенда flying horse.
package main

import (
	"flying_horse_backend/internal/app"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	setupLogging()

	if err := app.NewApp().Run(); err != nil {
		log.WithError(err).Fatal("server stopped with error")
	}
	log.Info("server stopped")
}

// setupLogging формат логов. Уровень потом берётся из APP_LOG_LEVEL
func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
}
