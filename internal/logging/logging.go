// Package logging configures the logrus logger used by the command line tools.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/shravanasati/courier/response"
	"github.com/shravanasati/courier/status"
)

// EnvLevel names the environment variable that overrides the default log level.
const EnvLevel = "COURIER_LOG_LEVEL"

const timestampFormat = "2006-01-02 15:04:05"

type Config struct {
	Level string
	// File, when set, receives a copy of every entry through a rotating writer.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Color      bool
}

// Logger is a logrus logger that owns its log file, if any.
type Logger struct {
	*logrus.Logger
	file *lumberjack.Logger
}

// New builds a logger writing text entries to console and, if configured, to cfg.File.
func New(cfg Config, console io.Writer) *Logger {
	logger := logrus.New()
	logger.SetLevel(ParseLevel(cfg.Level))
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: timestampFormat,
		FullTimestamp:   true,
		ForceColors:     cfg.Color,
		PadLevelText:    true,
	})

	l := &Logger{Logger: logger}
	writers := []io.Writer{}
	if console != nil {
		writers = append(writers, console)
	}
	if cfg.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		}
		writers = append(writers, l.file)
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}
	return l
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// ParseLevel parses a level name case-insensitively. Unknown names give info.
func ParseLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// DefaultLevel returns the level named by EnvLevel, or fallback when it is unset.
func DefaultLevel(fallback string) string {
	if v, ok := os.LookupEnv(EnvLevel); ok && v != "" {
		return v
	}
	return fallback
}

// StatusStyle returns the style a status code is rendered with, by class.
func StatusStyle(code status.Code) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch code.Class() {
	case status.Success:
		return style.Foreground(lipgloss.Color("46"))
	case status.Redirection:
		return style.Foreground(lipgloss.Color("226"))
	case status.ClientError:
		return style.Foreground(lipgloss.Color("208"))
	case status.ServerError:
		return style.Foreground(lipgloss.Color("196"))
	default:
		return style.Foreground(lipgloss.Color("15"))
	}
}

// LogResponse logs a one line summary of resp.
func LogResponse(log logrus.FieldLogger, resp *response.Response, elapsed time.Duration) {
	styled := StatusStyle(resp.Code()).Render(resp.Code().String())
	log.WithFields(logrus.Fields{
		"version": resp.Version(),
		"headers": resp.Headers().Size(),
		"body":    resp.HasBody(),
		"length":  resp.Length().String(),
	}).Infof("%s in %s", styled, elapsed)
}
