package util

import (
	"sync"
)

var (
	globalLogger LoggerInterface
	loggerOnce   sync.Once
)

// InitLogger installs the process-wide logger. Later calls are ignored, so
// the report and watch commands can both call it.
func InitLogger(cfg LoggerConfig) {
	loggerOnce.Do(func() {
		globalLogger = NewLogger(cfg)
	})
}

// CloseLogger flushes and closes the global logger outputs
func CloseLogger() error {
	if globalLogger == nil {
		return nil
	}
	return globalLogger.Close()
}

// discard has no outputs and stands in until InitLogger runs
var discard LoggerInterface = &Logger{}

func current() LoggerInterface {
	if globalLogger == nil {
		return discard
	}
	return globalLogger
}

// WithFields returns the global logger with fields attached to every entry
func WithFields(fields ...Field) LoggerInterface {
	return current().With(fields...)
}

// Package-level shortcuts. Each is a no-op before InitLogger.

func LogDebug(msg string, fields ...Field) { current().Debug(msg, fields...) }
func LogInfo(msg string, fields ...Field)  { current().Info(msg, fields...) }
func LogWarn(msg string, fields ...Field)  { current().Warn(msg, fields...) }
func LogError(msg string, fields ...Field) { current().Error(msg, fields...) }

func LogDebugf(format string, args ...interface{}) { current().Debugf(format, args...) }
func LogInfof(format string, args ...interface{})  { current().Infof(format, args...) }
func LogWarnf(format string, args ...interface{})  { current().Warnf(format, args...) }
func LogErrorf(format string, args ...interface{}) { current().Errorf(format, args...) }
