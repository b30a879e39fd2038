// Package ratelimits serves workspace rate-limit pages.
package ratelimits

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

// LimitGateway reads backend rate-limit windows for one entity.
type LimitGateway interface {
	RateLimits(ctx context.Context, userID string, entitySlug string) ([]apiclient.RateLimitWindow, error)
}

type unavailableGateway struct{}

func (unavailableGateway) RateLimits(context.Context, string, string) ([]apiclient.RateLimitWindow, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable,
		"error.web.service_unavailable", "rate-limit service is not configured")
}

// Module provides the rate-limits route for an entity.
type Module struct {
	gateway LimitGateway
	deps    module.Dependencies
}

// NewWithGateway returns a rate-limits module backed by the given gateway.
func NewWithGateway(gateway LimitGateway, deps module.Dependencies) Module {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return Module{gateway: gateway, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "ratelimits" }

// Mount wires the rate-limits route handler.
func (m Module) Mount(mux *http.ServeMux) error {
	if mux == nil {
		return nil
	}
	h := handlers{Base: modulehandler.NewBase(m.deps), gateway: m.gateway}
	mux.HandleFunc(routepath.RateLimitsPattern, h.handleRateLimits)
	return nil
}

type handlers struct {
	modulehandler.Base
	gateway LimitGateway
}

func (h handlers) handleRateLimits(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	windows, err := h.gateway.RateLimits(r.Context(), h.RequestUserID(r), slug)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "ratelimits.heading"), http.StatusOK, slug, "",
		webtemplates.RateLimitsPage(windows, loc))
}
