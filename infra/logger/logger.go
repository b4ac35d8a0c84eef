package logger

import corelogger "github.com/kmarens/famsched/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// New returns a Logger for the given component. The environment is
// detected via the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}
