package main

import (
	"github.com/alexisbeaulieu97/forge/internal/logging"
)

// AppContext bundles the long-lived services each subcommand needs,
// built once in main and threaded through every command's RunE.
type AppContext struct {
	Logger *logging.Logger
}

// LoggerFor derives a child logger scoped to component.
func (a *AppContext) LoggerFor(component string) *logging.Logger {
	if a == nil || a.Logger == nil {
		return nil
	}
	return a.Logger.With("component", component)
}
