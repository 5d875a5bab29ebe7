package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// newLogger builds the logger shared by every package. The terminal is
// drawn on stdout, so without a log file all output is discarded.
func newLogger(level, file string) (*logrus.Logger, error) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetLevel(logLevel)
	logger.SetOutput(io.Discard)

	if file != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   file,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter: &logrus.TextFormatter{
				DisableColors:   true,
				FullTimestamp:   true,
				TimestampFormat: "2006-01-02 15:04:05.000",
			},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file: %w", err)
		}
		logger.AddHook(hook)
	}

	return logger, nil
}
