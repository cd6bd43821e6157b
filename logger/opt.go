package logger

import "log"

// A LoggerOptFn is a functional option configuring a WaymarkLogger when constructing a new one.
type LoggerOptFn func(*WaymarkLogger)

// WithEnv sets the environment WaymarkLogger is operating in.
func WithEnv(env string) func(*WaymarkLogger) {
	return func(l *WaymarkLogger) {
		l.env = env
	}
}

// WithLevel sets the log level WaymarkLogger uses.
func WithLevel(level LogLevel) func(*WaymarkLogger) {
	return func(l *WaymarkLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger WaymarkLogger uses.
func WithLogger(log *log.Logger) func(*WaymarkLogger) {
	return func(l *WaymarkLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*WaymarkLogger) {
	return func(l *WaymarkLogger) {
		l.skip = skip
	}
}
