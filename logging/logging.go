// Package logging configures the process-wide zap logger. This module has
// no executable entry point, so the hosting application (or a TestMain)
// calls Setup once at startup.
package logging

import (
	"go.uber.org/zap"
)

// Setup builds the logger and installs it as the zap global. Development
// mode gets the console encoder, otherwise production JSON.
func Setup(development bool) *zap.Logger {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.OutputPaths = []string{"stdout"}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}
