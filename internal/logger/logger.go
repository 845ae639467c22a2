package logger

import (
	"io"
	"os"
	"strings"

	colorable "github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"
)

// Init configures the process-wide logger. format is "json" (default) or
// "text"; text output is colourised for terminals.
func Init(level, format string) {
	switch strings.ToLower(format) {
	case "text":
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   true,
			FullTimestamp: true,
		})
		log.SetOutput(colorable.NewColorableStdout())
	default:
		log.SetFormatter(&log.JSONFormatter{})
		log.SetOutput(os.Stdout)
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	log.WithField("level", lvl.String()).Debug("logger initialized")
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func entry(fields map[string]any) *log.Entry {
	return log.WithFields(log.Fields(fields))
}

func Debug(msg string, fields map[string]any) {
	entry(fields).Debug(msg)
}

func Info(msg string, fields map[string]any) {
	entry(fields).Info(msg)
}

func Warn(msg string, fields map[string]any) {
	entry(fields).Warn(msg)
}

func Error(msg string, fields map[string]any) {
	entry(fields).Error(msg)
}

func Fatal(msg string, fields map[string]any) {
	entry(fields).Fatal(msg)
}
