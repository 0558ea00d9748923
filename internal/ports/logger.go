package ports

import "github.com/rickerevolte/eegsift/pkg/log"

// Logger re-exports the logging abstraction so pipeline code can depend on
// ports alone.
type Logger = log.Logger

// Field re-exports the log field type.
type Field = log.Field

// Field constructors re-exported so the app layer logs without importing
// pkg/log directly.
var (
	String  = log.String
	Int     = log.Int
	Int64   = log.Int64
	Float64 = log.Float64
	Err     = log.Err
)
