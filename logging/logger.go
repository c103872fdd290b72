package logging

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	levelOverride     *logrus.Level
	formatterOverride logrus.Formatter
)

// NewLogger creates and returns a pre-configured logger for a specific
// component. Entries are cached per component so repeated calls share one
// underlying logger.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	levelStr := "info"
	if env := os.Getenv("MYGIT_LOG_LEVEL"); env != "" {
		levelStr = env
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	if levelOverride != nil {
		level = *levelOverride
	}
	logger.SetLevel(level)

	if formatterOverride != nil {
		logger.SetFormatter(formatterOverride)
	} else {
		logger.SetFormatter(&TextFormatter{
			DisableColors: !isatty.IsTerminal(os.Stderr.Fd()),
		})
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// SetLevel overrides the log level for all component loggers, existing and
// future. Used by the --verbose flag.
func SetLevel(level logrus.Level) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	levelOverride = &level
	for _, entry := range loggers {
		entry.Logger.SetLevel(level)
	}
}

// SetFormatter overrides the formatter for all component loggers, existing
// and future. Used by the --json flag.
func SetFormatter(formatter logrus.Formatter) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	formatterOverride = formatter
	for _, entry := range loggers {
		entry.Logger.SetFormatter(formatter)
	}
}
