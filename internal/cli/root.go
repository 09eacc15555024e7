package cli

import (
	"tracklit/internal/storage"
)

// Context carries shared dependencies into every kong command.
type Context struct {
	Store storage.Provider

	// ConfigFile is the optional YAML server config path for the serve
	// command.
	ConfigFile string
}
