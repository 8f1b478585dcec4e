package logger

import (
	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// Init инициализирует структурированный логгер.
// В production используется JSON формат, в development — текстовый.
func Init(level string, env string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if env == "production" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// WithRequestID возвращает entry с привязанным идентификатором запроса.
func WithRequestID(requestID string) *logrus.Entry {
	if Log == nil {
		Init("info", "development")
	}
	return Log.WithField("request_id", requestID)
}
