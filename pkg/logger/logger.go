package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Init builds the process logger writing to stdout. An unknown level falls
// back to info so a bad config value never silences the service.
func Init(level string) *logrus.Logger {
	return InitWithOutput(level, os.Stdout)
}

// InitWithOutput is Init with an explicit sink, used by tests and tooling
// that must capture log output.
func InitWithOutput(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
		logger.Warnf("unknown log level %q, using info", level)
	}
	logger.SetLevel(lvl)

	return logger
}
