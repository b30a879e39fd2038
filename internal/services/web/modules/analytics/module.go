// Package analytics serves workspace translation usage pages.
package analytics

import (
	"context"
	"net/http"

	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	apperrors "github.com/sudobility/whisperly-web/internal/services/web/platform/errors"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/modulehandler"
	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
	webtemplates "github.com/sudobility/whisperly-web/internal/services/web/templates"
)

// UsageGateway reads the backend usage summary for one entity.
type UsageGateway interface {
	Usage(ctx context.Context, userID string, entitySlug string) (apiclient.UsageSummary, error)
}

type unavailableGateway struct{}

func (unavailableGateway) Usage(context.Context, string, string) (apiclient.UsageSummary, error) {
	return apiclient.UsageSummary{}, apperrors.EK(apperrors.KindUnavailable,
		"error.web.service_unavailable", "usage service is not configured")
}

// Module provides the analytics route for an entity.
type Module struct {
	gateway UsageGateway
	deps    module.Dependencies
}

// NewWithGateway returns an analytics module backed by the given gateway.
func NewWithGateway(gateway UsageGateway, deps module.Dependencies) Module {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return Module{gateway: gateway, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "analytics" }

// Mount wires the analytics route handler.
func (m Module) Mount(mux *http.ServeMux) error {
	if mux == nil {
		return nil
	}
	h := handlers{Base: modulehandler.NewBase(m.deps), gateway: m.gateway}
	mux.HandleFunc(routepath.AnalyticsPattern, h.handleAnalytics)
	return nil
}

type handlers struct {
	modulehandler.Base
	gateway UsageGateway
}

func (h handlers) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	summary, err := h.gateway.Usage(r.Context(), h.RequestUserID(r), slug)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "analytics.heading"), http.StatusOK, slug, "",
		webtemplates.AnalyticsPage(summary, loc))
}
