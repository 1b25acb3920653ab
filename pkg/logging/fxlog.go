package logging

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// UseLoggingInterface makes fx log its own lifecycle events through the
// logging.Interface provided inside the container being built.
var UseLoggingInterface fx.Option = fx.WithLogger(
	func(logger Interface) fxevent.Logger {
		return &fxLoggerAdapter{Interface: logger}
	},
)

type fxLoggerAdapter struct{ Interface }

func (f fxLoggerAdapter) LogEvent(event fxevent.Event) {
	log := f.Interface.WithField("fx", "event")

	switch e := event.(type) {
	case *fxevent.Supplied:
		log.WithField("type", e.TypeName).Debug("Supplied")
	case *fxevent.Provided:
		for _, rtype := range e.OutputTypeNames {
			log.WithField("constructor", e.ConstructorName).
				WithField("type", rtype).
				Debug("Provided")
		}
		if e.Err != nil {
			log.WithError(e.Err).Error("error encountered while applying options")
		}
	case *fxevent.Invoking:
		log.WithField("function", e.FunctionName).Debug("Invoking")
	case *fxevent.Invoked:
		if e.Err != nil {
			log.WithError(e.Err).WithField("function", e.FunctionName).Error("Invoke failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			log.WithError(e.Err).Error("App start failed")
		} else {
			log.Debug("App started")
		}
	case *fxevent.Stopped:
		if e.Err != nil {
			log.WithError(e.Err).Error("App stop failed")
		}
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			log.WithError(e.Err).Error("Custom logger initialization failed")
		}
	}
}
