package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const componentKey = "cmp"

// Component returns the global logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return WithComponent(log.Logger, name)
}

// WithComponent tags base with a component name. zerolog appends fields, so
// base must not already carry a component.
func WithComponent(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str(componentKey, name).Logger()
}
