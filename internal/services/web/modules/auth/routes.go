package auth

import (
	"net/http"

	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc("GET "+routepath.LoginPattern, h.handleLoginPage)
	mux.HandleFunc("POST "+routepath.LoginPattern, h.handleLoginSubmit)
	mux.HandleFunc(routepath.LogoutPattern, h.handleLogout)
}
