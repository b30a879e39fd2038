package modules

import (
	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/analytics"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/auth"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/dashboard"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/projects"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/public"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/ratelimits"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/settings"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/subscription"
	"github.com/sudobility/whisperly-web/internal/services/web/modules/workspace"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/requestmeta"
)

// DefaultPublicModules returns the modules reachable without a session.
func DefaultPublicModules(verifier auth.TokenVerifier, policy requestmeta.SchemePolicy) []Module {
	return []Module{
		public.New(),
		auth.New(verifier, policy),
	}
}

// DefaultProtectedModules returns the authenticated dashboard modules.
func DefaultProtectedModules(deps module.Dependencies, backends Backends) []Module {
	return []Module{
		dashboard.NewWithGateway(dashboardGateway(backends), deps),
		projects.NewWithGateway(backends.ProjectAPI, deps),
		analytics.NewWithGateway(backends.UsageAPI, deps),
		ratelimits.NewWithGateway(backends.LimitAPI, deps),
		subscription.NewWithGateway(backends.BillingAPI, deps),
		workspace.NewWithGateway(workspaceGateway(backends), deps),
		settings.New(deps),
	}
}

// dashboardGateway keeps the nil-gateway unavailable path intact when no
// entity list backend is configured.
func dashboardGateway(backends Backends) dashboard.EntityGateway {
	if backends.EntityLists == nil {
		return nil
	}
	return dashboard.NewAPIGateway(backends.EntityLists)
}

func workspaceGateway(backends Backends) workspace.WorkspaceGateway {
	if backends.EntityLists == nil || backends.MembershipAPI == nil {
		return nil
	}
	return workspace.NewAPIGateway(backends.EntityLists, backends.MembershipAPI, backends.ListInvalidator)
}
