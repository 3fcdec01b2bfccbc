package modkit

import (
	phttp "chefbot/internal/platform/net/http"
)

// Module is the surface a service exposes to the api composition root
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns the module's port set for cross wiring
	Ports() any
	// Name returns the module name
	Name() string
}
