package trustkall

import (
	"fmt"

	"github.com/sikapp/devicetrust/internal/model"
)

// Logger is the logger used by a [Session]. The app implements
// it using the platform logging facilities.
type Logger interface {
	Debug(message string)
	Info(message string)
	Warn(message string)
}

// sessionLogger adapts a Logger to model.Logger.
type sessionLogger struct {
	Logger
}

var _ model.Logger = &sessionLogger{}

// Debugf implements model.Logger.Debugf.
func (sl *sessionLogger) Debugf(format string, v ...interface{}) {
	sl.Debug(fmt.Sprintf(format, v...))
}

// Infof implements model.Logger.Infof.
func (sl *sessionLogger) Infof(format string, v ...interface{}) {
	sl.Info(fmt.Sprintf(format, v...))
}

// Warnf implements model.Logger.Warnf.
func (sl *sessionLogger) Warnf(format string, v ...interface{}) {
	sl.Warn(fmt.Sprintf(format, v...))
}

// newLogger returns a model.Logger using logger, if not nil.
func newLogger(logger Logger) model.Logger {
	if logger == nil {
		return model.DiscardLogger
	}
	return &sessionLogger{logger}
}
