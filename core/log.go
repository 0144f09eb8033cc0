package core


import (
	"go.uber.org/zap"
)


type Logger interface {
	// Log a message with a printf format for different log levels.
	//
	Errorf(string, ...interface{})
	Warnf(string, ...interface{})
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
	Tracef(string, ...interface{})

	// Return a new logger with the given `name` appended to this logger
	// current name.
	//
	Extend(string) Logger
}


func NoLogger() Logger {
	return &noLogger{}
}

type noLogger struct {
}

func (this *noLogger) Errorf(string, ...interface{}) {}
func (this *noLogger) Warnf(string, ...interface{}) {}
func (this *noLogger) Infof(string, ...interface{}) {}
func (this *noLogger) Debugf(string, ...interface{}) {}
func (this *noLogger) Tracef(string, ...interface{}) {}
func (this *noLogger) Extend(string) Logger { return this }


type zapLogger struct {
	sugar  *zap.SugaredLogger
}

// NewZapLogger adapts a zap logger, usually zap.L(), to the Logger
// interface. A nil logger yields a silent Logger.
func NewZapLogger(logger *zap.Logger, name string) Logger {
	if logger == nil {
		return NoLogger()
	}

	if len(name) > 0 {
		logger = logger.Named(name)
	}

	return &zapLogger{ logger.Sugar() }
}

func (this *zapLogger) Errorf(format string, args ...interface{}) {
	this.sugar.Errorf(format, args...)
}

func (this *zapLogger) Warnf(format string, args ...interface{}) {
	this.sugar.Warnf(format, args...)
}

func (this *zapLogger) Infof(format string, args ...interface{}) {
	this.sugar.Infof(format, args...)
}

func (this *zapLogger) Debugf(format string, args ...interface{}) {
	this.sugar.Debugf(format, args...)
}

// zap has no level below debug.
func (this *zapLogger) Tracef(format string, args ...interface{}) {
	this.sugar.Debugf(format, args...)
}

func (this *zapLogger) Extend(name string) Logger {
	return &zapLogger{ this.sugar.Named(name) }
}
