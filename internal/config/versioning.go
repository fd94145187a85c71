package config

import (
	"fmt"
	"math"
)

// IncompatibleSchemaError reports a config document whose schema version
// this build cannot read. The document is left untouched.
type IncompatibleSchemaError struct {
	Found     any
	Supported float64
}

func (e *IncompatibleSchemaError) Error() string {
	return fmt.Sprintf("config schema version %v is not compatible with supported version %v", e.Found, e.Supported)
}

// IsCompatible reports whether a document tagged with the given schema
// version can be read by an engine at the given version.
//
// It fails closed: a missing or non-numeric version is incompatible. A
// version newer than the engine is incompatible, and so is an older major
// version; only major-version equality passes.
func IsCompatible(version any, engine float64) bool {
	v, ok := asFloat(version)
	if !ok {
		return false
	}
	if v > engine {
		return false
	}
	return math.Floor(v) == math.Floor(engine)
}

// asFloat widens any numeric type the YAML decoder may produce.
func asFloat(version any) (float64, bool) {
	switch v := version.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
