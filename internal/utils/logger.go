package utils

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// DebugMode enables debug-level output; set before the first log call.
	DebugMode bool

	once      sync.Once
	singleton *log.Logger
)

func getLogger() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
		})
		if DebugMode {
			singleton.SetLevel(log.DebugLevel)
		} else {
			singleton.SetLevel(log.InfoLevel)
		}
	})
	return singleton
}

func Debug(format string, v ...interface{}) { getLogger().Debug(fmt.Sprintf(format, v...)) }
func Info(format string, v ...interface{})  { getLogger().Info(fmt.Sprintf(format, v...)) }
func Warn(format string, v ...interface{})  { getLogger().Warn(fmt.Sprintf(format, v...)) }
func Error(format string, v ...interface{}) { getLogger().Error(fmt.Sprintf(format, v...)) }

// RaylibLogCallback forwards raylib trace messages into the application
// logger at a matching level.
func RaylibLogCallback(level int, text string) {
	switch level {
	case 1, 2: // LOG_TRACE, LOG_DEBUG
		Debug("[raylib] %s", text)
	case 3: // LOG_INFO
		Debug("[raylib] %s", text)
	case 4: // LOG_WARNING
		Warn("[raylib] %s", text)
	case 5, 6: // LOG_ERROR, LOG_FATAL
		Error("[raylib] %s", text)
	}
}
