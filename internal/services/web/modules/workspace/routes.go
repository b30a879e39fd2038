package workspace

import (
	"net/http"

	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(routepath.WorkspacesPattern, h.handleWorkspaces)
	mux.HandleFunc(routepath.WorkspaceSwitchPattern, h.handleSwitch)
	mux.HandleFunc(routepath.MembersPattern, h.handleMembers)
	mux.HandleFunc(routepath.InvitationsPattern, h.handleInvitations)
	mux.HandleFunc(routepath.InviteCreatePattern, h.handleInviteCreate)
	mux.HandleFunc(routepath.InviteRevokePattern, h.handleInviteRevoke)
}
