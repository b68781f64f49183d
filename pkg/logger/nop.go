package logger

type nopLogger struct{}

// NewNop returns a Logger that discards everything. Intended for tests.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}

func (n nopLogger) With(...Field) Logger {
	return n
}
