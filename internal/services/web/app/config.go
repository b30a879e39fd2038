package app

import (
	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/requestmeta"
)

// Config carries the composition inputs for the web root handler.
type Config struct {
	Dependencies     module.Dependencies
	PublicModules    []module.Module
	ProtectedModules []module.Module

	// SchemePolicy governs forwarded-scheme trust for cookie security
	// and same-origin checks behind a proxy.
	SchemePolicy requestmeta.SchemePolicy
}
