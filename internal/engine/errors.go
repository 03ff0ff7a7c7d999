package engine

import "fmt"

// Configuration error codes.
const (
	CodeUnknownColor     = "UNKNOWN_COLOR"
	CodeUnknownDirection = "UNKNOWN_DIRECTION"
	CodeUnknownTerrain   = "UNKNOWN_TERRAIN"
	CodeUnknownItem      = "UNKNOWN_ITEM"
	CodeBadGeometry      = "BAD_GEOMETRY"
	CodeBadValue         = "BAD_VALUE"
)

// ConfigError reports a constructor argument the engine cannot accept.
// Level construction must abort when one is returned.
type ConfigError struct {
	Code    string
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// invariant panics when an engine invariant has been broken. These are
// programming errors, never gameplay outcomes.
func invariant(format string, args ...any) {
	panic("engine: " + fmt.Sprintf(format, args...))
}
