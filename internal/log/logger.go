// /internal/log/logger.go
package log

import (
	"os"
	"strings"

	charm "github.com/charmbracelet/log"
)

// Log is the launcher-side logger. Game output does not go through here; it
// has its own pipeline in internal/format.
var Log = charm.NewWithOptions(os.Stderr, charm.Options{
	ReportTimestamp: false,
	Prefix:          "launcher",
})

// Init sets the global logger's verbosity level.
func Init(levelStr string) {
	Log.SetLevel(levelFromString(levelStr))
}

func levelFromString(levelStr string) charm.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return charm.DebugLevel
	case "info":
		return charm.InfoLevel
	case "warn":
		return charm.WarnLevel
	case "error":
		return charm.ErrorLevel
	default:
		return charm.InfoLevel
	}
}

// Fatal logs the message at error level and exits with code 1.
func Fatal(format string, v ...interface{}) {
	Log.Errorf(format, v...)
	os.Exit(1)
}

func Debug(format string, v ...interface{}) { Log.Debugf(format, v...) }
func Info(format string, v ...interface{})  { Log.Infof(format, v...) }
func Warn(format string, v ...interface{})  { Log.Warnf(format, v...) }
func Error(format string, v ...interface{}) { Log.Errorf(format, v...) }
