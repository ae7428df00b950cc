package nn

import "fmt"

// ConfigError reports a block constructed with weights or settings that do
// not match its declared channel configuration. Construction fails before any
// forward call, so a malformed block can never be invoked.
type ConfigError struct {
	Block string // component being constructed, e.g. "conv2d"
	Msg   string // what was inconsistent
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return e.Block + ": " + e.Msg
}

// configErrorf builds a ConfigError for the given component.
func configErrorf(block, format string, args ...any) *ConfigError {
	return &ConfigError{Block: block, Msg: fmt.Sprintf(format, args...)}
}
