package app

import (
	"fmt"
	"net/http"
	"strings"

	platformi18n "github.com/sudobility/whisperly-web/internal/platform/i18n"
	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	webi18n "github.com/sudobility/whisperly-web/internal/services/web/platform/i18n"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/prefs"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/requestmeta"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/routing"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/sessioncookie"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/weberror"
	"github.com/sudobility/whisperly-web/internal/services/web/routepath"
	"github.com/sudobility/whisperly-web/internal/services/web/static"
)

// Compose builds the root HTTP handler: module routes behind the locale
// guard and protected-route gate, plus health and static assets.
func Compose(cfg Config) (http.Handler, error) {
	deps := cfg.Dependencies
	if deps.ResolveViewer == nil {
		deps.ResolveViewer = func(*http.Request) module.Viewer { return module.Viewer{} }
	}
	if deps.ResolveSignedIn == nil {
		deps.ResolveSignedIn = func(*http.Request) bool { return false }
	}

	mux := http.NewServeMux()
	all := make([]module.Module, 0, len(cfg.PublicModules)+len(cfg.ProtectedModules))
	all = append(all, cfg.PublicModules...)
	all = append(all, cfg.ProtectedModules...)

	seen := make(map[string]bool, len(all))
	for _, feature := range all {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		id := strings.TrimSpace(feature.ID())
		if id == "" {
			return nil, fmt.Errorf("module ID is required")
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate module ID %q", id)
		}
		seen[id] = true
		if err := feature.Mount(mux); err != nil {
			return nil, fmt.Errorf("mount module %q: %w", id, err)
		}
	}

	mux.HandleFunc("GET "+routepath.Health, healthHandler(all))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.FS)))
	mux.HandleFunc("/", notFoundHandler(deps))

	handler := routing.Apply(mux,
		localeGuard,
		authGate(deps),
	)
	handler = confirmLanguage(handler)
	handler = requireSameOriginProof(handler, cfg.SchemePolicy)
	return handler, nil
}

// localeGuard enforces the language prefix contract. The root path gains
// the resolved language; every other leading segment is treated as the
// language slot, so an unsupported or noncanonical segment is rewritten in
// place. Redirect targets always carry a canonical prefix, so the guard
// can never issue a second redirect.
func localeGuard(r *http.Request) routing.Decision {
	if r == nil {
		return routing.Proceed()
	}
	path := r.URL.Path
	if path == routepath.Health || strings.HasPrefix(path, "/static/") {
		return routing.Proceed()
	}
	if path == routepath.Root {
		store := prefs.NewCookieStore(nil, r)
		resolved := webi18n.ResolveCode(path, store, r.Header.Get("Accept-Language"))
		return routing.RedirectTo(routepath.WithLanguage(r.URL.RequestURI(), false, resolved))
	}

	segment := firstSegment(path)
	if code, ok := platformi18n.Canonical(segment); ok {
		if segment == code {
			return routing.Proceed()
		}
		return routing.RedirectTo(routepath.WithLanguage(r.URL.RequestURI(), true, code))
	}

	store := prefs.NewCookieStore(nil, r)
	resolved := webi18n.ResolveCode(path, store, r.Header.Get("Accept-Language"))
	return routing.RedirectTo(routepath.WithLanguage(r.URL.RequestURI(), true, resolved))
}

// authGate redirects unauthenticated dashboard requests to login with the
// original path and query carried in returnUrl.
func authGate(deps module.Dependencies) routing.Guard {
	return func(r *http.Request) routing.Decision {
		if r == nil || !isProtectedPath(r.URL.Path) {
			return routing.Proceed()
		}
		if deps.ResolveSignedIn(r) {
			return routing.Proceed()
		}
		lang, _ := webi18n.PathLanguage(r.URL.Path)
		if lang == "" {
			lang = platformi18n.DefaultCode
		}
		return routing.RedirectTo(routepath.LoginWithReturn(lang, r.URL.RequestURI()))
	}
}

// isProtectedPath reports whether a path sits under the dashboard subtree
// of its language prefix.
func isProtectedPath(path string) bool {
	trimmed := strings.TrimPrefix(path, "/")
	_, rest, ok := strings.Cut(trimmed, "/")
	if !ok {
		return false
	}
	return rest == "dashboard" || strings.HasPrefix(rest, "dashboard/")
}

// confirmLanguage persists a valid URL language as the preferred language
// before the request reaches its handler. Repeat visits are no-ops.
func confirmLanguage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if code, ok := webi18n.PathLanguage(r.URL.Path); ok {
			webi18n.ConfirmLanguage(prefs.NewCookieStore(w, r), code)
		}
		next.ServeHTTP(w, r)
	})
}

// requireSameOriginProof rejects cookie-authenticated mutations that lack
// an Origin or Referer matching this site.
func requireSameOriginProof(next http.Handler, policy requestmeta.SchemePolicy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isMutationMethod(r.Method) || !hasSessionCookie(r) {
			next.ServeHTTP(w, r)
			return
		}
		if !requestmeta.HasSameOriginProof(r, policy) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isMutationMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}

// healthHandler reports aggregate module health. Modules without a health
// signal count as healthy.
func healthHandler(all []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, feature := range all {
			reporter, ok := feature.(module.HealthReporter)
			if ok && !reporter.Healthy() {
				http.Error(w, "degraded: "+feature.ID(), http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	}
}

// notFoundHandler renders the localized not-found page for routes no
// module claimed. The locale guard has already ensured a valid prefix.
func notFoundHandler(deps module.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteAppError(w, r, http.StatusNotFound, deps)
	}
}

func firstSegment(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	segment, _, _ := strings.Cut(trimmed, "/")
	return segment
}
