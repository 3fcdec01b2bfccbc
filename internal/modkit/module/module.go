// Package module holds the module contract and port lookups used at composition time
package module

import (
	phttp "chefbot/internal/platform/net/http"
)

// Module mirrors modkit.Module; it lives here so a service module can import the
// port helpers without importing modkit itself
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
