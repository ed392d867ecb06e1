// Package logging builds the application loggers.
package logging

import (
	"go.uber.org/zap"
)

// Setup builds a zap logger tagged with the application name and version.
// Debug mode selects the development config, which logs at Debug level with
// human-readable output; otherwise the production config is used.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	return cfg.Build()
}
