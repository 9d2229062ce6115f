package logginghelper

import (
	log "github.com/sirupsen/logrus"
)

func LogListed(route string, count int) {
	log.WithFields(log.Fields{
		"route": route,
		"count": count,
	}).Info("DQ results listed")
}

func LogError(route string, err error) {
	log.WithFields(log.Fields{
		"route": route,
		"error": err,
	}).Error("Failed to list dq results")
}
