package logger

import (
	"fmt"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

// SetupLogger switches the global logrus logger to JSON output with caller
// file:line and returns the level in effect. Unknown levels fall back to info.
func SetupLogger(level string) log.Level {
	log.SetReportCaller(true)
	log.SetFormatter(&log.JSONFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
		},
		TimestampFormat: timestampFormat,
	})

	loggerLevel, err := log.ParseLevel(level)
	if err != nil {
		loggerLevel = log.InfoLevel
		log.Infof("Level setup default INFO, err: %v", err)
	}
	log.SetLevel(loggerLevel)

	return loggerLevel
}
