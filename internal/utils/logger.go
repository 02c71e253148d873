package utils

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// InitLogger parses the level string and configures the global logrus logger.
// An unknown level is returned as an error and leaves the logger untouched.
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.SetLevel(level)
	return nil
}

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	log.WithFields(log.Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).Info(message)
}
