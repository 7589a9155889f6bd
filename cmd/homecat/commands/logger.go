package commands

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dwellhq/homecat/pkg/catalog"
)

// logrusLogger adapts logrus to the catalog.Logger interface used by the
// HTTP transport for verbose request/response logging.
type logrusLogger struct {
	log *logrus.Logger
}

// NewLogger creates the structured logger used in --verbose mode. Output
// goes to stderr so it never interleaves with rendered tables or JSON.
func NewLogger() catalog.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	return &logrusLogger{log: log}
}

func (l *logrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
