// Package modkit provides module wiring and the shared deps every module receives
package modkit

import (
	"chefbot/internal/platform/config"
	"chefbot/internal/platform/logger"
)

// Deps holds process-wide dependencies passed to modules
// upstream clients are injected per module through WithPorts, not here
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
}
