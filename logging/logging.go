// Copyright 2018 NetApp, Inc. All Rights Reserved.

package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/netapp/multisvm/config"
)

const (
	TextFormat             = "text"
	JSONFormat             = "json"
	defaultTimestampFormat = time.RFC3339
)

// InitLogging sets level and format and routes entries to stdout/stderr by severity.
func InitLogging(debug bool, logLevel, logFormat string) error {
	if err := InitLogLevel(debug, logLevel); err != nil {
		return err
	}
	if err := InitLogFormat(logFormat); err != nil {
		return err
	}

	// No output except for the hook
	log.SetOutput(io.Discard)
	hook, err := NewConsoleHook(logFormat)
	if err != nil {
		return fmt.Errorf("could not initialize logging to console: %v", err)
	}
	log.AddHook(hook)

	log.WithFields(log.Fields{
		"logLevel":  log.GetLevel().String(),
		"logFormat": logFormat,
		"version":   config.OrchestratorVersion,
		"buildTime": config.BuildTime,
	}).Debug("Initialized logging.")

	return nil
}

// InitLogLevel configures the logging level.  The debug flag takes precedence if set,
// otherwise the logLevel flag (trace, debug, info, warn, error, fatal) is used.
func InitLogLevel(debug bool, logLevel string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}
	return nil
}

// InitLogFormat configures the log format, allowing a choice of text or JSON.
func InitLogFormat(logFormat string) error {
	formatter, err := newFormatter(logFormat)
	if err != nil {
		return err
	}
	log.SetFormatter(formatter)
	return nil
}

func newFormatter(logFormat string) (log.Formatter, error) {
	switch logFormat {
	case TextFormat:
		return &log.TextFormatter{FullTimestamp: true, TimestampFormat: defaultTimestampFormat}, nil
	case JSONFormat:
		return &log.JSONFormatter{TimestampFormat: defaultTimestampFormat}, nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", logFormat)
	}
}

// ConsoleHook sends log entries to stdout or stderr depending on level.
type ConsoleHook struct {
	formatter log.Formatter
	stdout    io.Writer
	stderr    io.Writer
}

// NewConsoleHook creates a new log hook for writing to stdout/stderr.
func NewConsoleHook(logFormat string) (*ConsoleHook, error) {
	formatter, err := newFormatter(logFormat)
	if err != nil {
		return nil, err
	}
	return &ConsoleHook{formatter: formatter, stdout: os.Stdout, stderr: os.Stderr}, nil
}

func (hook *ConsoleHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook *ConsoleHook) Fire(entry *log.Entry) error {

	// Determine output stream
	var logWriter io.Writer
	switch entry.Level {
	case log.TraceLevel, log.DebugLevel, log.InfoLevel, log.WarnLevel:
		logWriter = hook.stdout
	default:
		logWriter = hook.stderr
	}

	lineBytes, err := hook.formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read entry, %v", err)
		return err
	}
	_, err = logWriter.Write(lineBytes)
	return err
}
