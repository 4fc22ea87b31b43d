package golurk

import "github.com/go-logr/logr"

var internalLogger = logr.Discard()

// SetInternalLogger routes the engine's logs through logger. The engine logs nothing by default.
func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("golurk")
}

var codecLogger = func() logr.Logger {
	return internalLogger.WithName("codec")
}
