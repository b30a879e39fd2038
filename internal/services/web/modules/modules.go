// Package modules composes the web module registry.
package modules

import (
	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/analytics"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/dashboard"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/projects"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/ratelimits"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/subscription"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/workspace"
)

// Module aliases the module contract.
type Module = module.Module

// Backends carries the backend surfaces needed to compose the protected
// registry. Each field is typed as the narrow interface defined by the
// consuming module, so modules cannot reach surfaces they were not given.
type Backends struct {
	// EntityLists serves workspace lists, optionally through the
	// read-through cache.
	EntityLists dashboard.EntityLister

	ProjectAPI    projects.ProjectGateway
	UsageAPI      analytics.UsageGateway
	LimitAPI      ratelimits.LimitGateway
	BillingAPI    subscription.BillingGateway
	MembershipAPI workspace.MembershipAPI

	// ListInvalidator drops cached workspace lists after membership
	// writes. Nil when lists are served uncached.
	ListInvalidator workspace.Invalidator
}
