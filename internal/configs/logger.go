package config

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger. Local runs get colored text at
// debug level, other environments get JSON.
func NewLogger(cfg Config, out io.Writer) (*logrus.Entry, error) {
	log := logrus.New()
	log.SetOutput(out)

	switch cfg.AppEnv {
	case EnvLocal:
		log.SetFormatter(&logrus.TextFormatter{
			ForceColors:   true,
			FullTimestamp: true,
		})
		log.SetLevel(logrus.DebugLevel)
	case EnvDev:
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	default:
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.WarnLevel)
	}

	if cfg.LogLevel != "" {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		log.SetLevel(level)
	}

	return logrus.NewEntry(log), nil
}
