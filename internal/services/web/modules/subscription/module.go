// Package subscription serves workspace billing plan pages.
package subscription

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

// BillingGateway reads the active subscription for one entity.
type BillingGateway interface {
	Subscription(ctx context.Context, userID string, entitySlug string) (apiclient.Subscription, error)
}

type unavailableGateway struct{}

func (unavailableGateway) Subscription(context.Context, string, string) (apiclient.Subscription, error) {
	return apiclient.Subscription{}, apperrors.EK(apperrors.KindUnavailable,
		"error.web.service_unavailable", "billing service is not configured")
}

// Module provides the subscription route for an entity.
type Module struct {
	gateway BillingGateway
	deps    module.Dependencies
}

// NewWithGateway returns a subscription module backed by the given gateway.
func NewWithGateway(gateway BillingGateway, deps module.Dependencies) Module {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return Module{gateway: gateway, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "subscription" }

// Mount wires the subscription route handler.
func (m Module) Mount(mux *http.ServeMux) error {
	if mux == nil {
		return nil
	}
	h := handlers{Base: modulehandler.NewBase(m.deps), gateway: m.gateway}
	mux.HandleFunc(routepath.SubscriptionPattern, h.handleSubscription)
	return nil
}

type handlers struct {
	modulehandler.Base
	gateway BillingGateway
}

func (h handlers) handleSubscription(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	slug := r.PathValue("entitySlug")

	sub, err := h.gateway.Subscription(r.Context(), h.RequestUserID(r), slug)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, webtemplates.T(loc, "subscription.heading"), http.StatusOK, slug, "",
		webtemplates.SubscriptionPage(sub, loc))
}
