package dashboard

import (
	"net/http"

	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(routepath.DashboardPattern, h.handleIndex)
	mux.HandleFunc(routepath.EntityPattern, h.handleEntity)
}
