package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerCachesPerComponent(t *testing.T) {
	a := NewLogger("sync")
	b := NewLogger("sync")
	c := NewLogger("guard")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestTextFormatter(t *testing.T) {
	logger := logrus.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{DisableColors: true, DisableTimestamp: true})

	logger.WithField("component", "sync").
		WithField("repository", "acme/widgets").
		Info("cloning repository")

	line := buf.String()
	assert.Contains(t, line, "[INFO]")
	assert.Contains(t, line, "[sync]")
	assert.Contains(t, line, "cloning repository")
	assert.Contains(t, line, "repository=acme/widgets")
}

func TestTextFormatterWarnLevelShortened(t *testing.T) {
	f := &TextFormatter{DisableColors: true, DisableTimestamp: true}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Now(),
		Level:   logrus.WarnLevel,
		Message: "remote url rewrite failed",
		Data:    logrus.Fields{},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[WARN]")
	assert.NotContains(t, string(out), "WARNING")
}
