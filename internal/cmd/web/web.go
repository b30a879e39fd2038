// Package web parses configuration and runs the browser-facing service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/sudobility/whisperly-web/internal/platform/config"
	"github.com/sudobility/whisperly-web/internal/platform/otel"
	"github.com/sudobility/whisperly-web/internal/services/web/app"
	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
	"github.com/sudobility/whisperly-web/internal/services/web/infra/cache"
	"github.com/sudobility/whisperly-web/internal/services/web/infra/session"
	module "github.com/sudobility/whisperly-web/internal/services/web/module"
	"github.com/sudobility/whisperly-web/internal/services/web/modules"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/httpx"
	webi18n "github.com/sudobility/whisperly-web/internal/services/web/platform/i18n"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/prefs"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/requestmeta"
	"github.com/sudobility/whisperly-web/internal/services/web/platform/sessioncookie"
	"github.com/sudobility/whisperly-web/internal/services/web/storage/sqlite"
)

const serviceName = "whisperly-web"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"WHISPERLY_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	APIBaseURL          string `env:"WHISPERLY_API_BASE_URL"`
	SessionKey          string `env:"WHISPERLY_SESSION_KEY"`
	CacheDBPath         string `env:"WHISPERLY_CACHE_DB_PATH"`
	TrustForwardedProto bool   `env:"WHISPERLY_TRUST_FORWARDED_PROTO"`
}

// ParseConfig loads configuration from the environment, then lets flags
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "backend API base URL")
	fs.StringVar(&cfg.CacheDBPath, "cache-db", cfg.CacheDBPath, "sqlite cache path, empty disables the entity-list cache")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto from the fronting proxy")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run composes the web service and serves until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	stopTracing, err := otel.Setup(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := stopTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	// Missing collaborators degrade the affected modules instead of
	// failing startup, so the public surface stays available.
	verifier := session.Verifier{}
	if strings.TrimSpace(cfg.SessionKey) != "" {
		verifier, err = session.NewVerifier([]byte(cfg.SessionKey))
		if err != nil {
			return fmt.Errorf("init session verifier: %w", err)
		}
	} else {
		log.Printf("session key not configured; sign-in is disabled")
	}

	var client *apiclient.Client
	if strings.TrimSpace(cfg.APIBaseURL) != "" {
		client, err = apiclient.New(cfg.APIBaseURL, nil)
		if err != nil {
			return fmt.Errorf("init api client: %w", err)
		}
	} else {
		log.Printf("API base URL not configured; dashboard gateways are disabled")
	}

	backends := modules.Backends{}
	if client != nil {
		var lists *cache.EntityLists
		if strings.TrimSpace(cfg.CacheDBPath) != "" {
			store, err := sqlite.Open(cfg.CacheDBPath)
			if err != nil {
				return fmt.Errorf("open cache db: %w", err)
			}
			defer func() {
				if err := store.Close(); err != nil {
					log.Printf("close cache db: %v", err)
				}
			}()
			lists = cache.NewEntityLists(client, store, cache.DefaultTTL)
		} else {
			lists = cache.NewEntityLists(client, nil, cache.DefaultTTL)
		}
		backends = modules.Backends{
			EntityLists:     lists,
			ProjectAPI:      client,
			UsageAPI:        client,
			LimitAPI:        client,
			BillingAPI:      client,
			MembershipAPI:   client,
			ListInvalidator: lists,
		}
	}

	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	deps := buildDependencies(verifier)
	handler, err := app.Compose(app.Config{
		Dependencies:     deps,
		PublicModules:    modules.DefaultPublicModules(verifier, policy),
		ProtectedModules: modules.DefaultProtectedModules(deps, backends),
		SchemePolicy:     policy,
	})
	if err != nil {
		return fmt.Errorf("compose web handler: %w", err)
	}
	handler = httpx.Chain(handler,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		httpx.Trace(serviceName),
	)

	log.Printf("listening on %s", cfg.HTTPAddr)
	return app.NewServer(cfg.HTTPAddr, handler).Run(ctx)
}

// buildDependencies derives the request-scoped resolver seams from the
// session verifier and preference cookies.
func buildDependencies(verifier session.Verifier) module.Dependencies {
	claims := func(r *http.Request) (session.Claims, bool) {
		token, ok := sessioncookie.Read(r)
		if !ok {
			return session.Claims{}, false
		}
		parsed, err := verifier.Verify(token)
		if err != nil {
			return session.Claims{}, false
		}
		return parsed, true
	}
	return module.Dependencies{
		ResolveSignedIn: func(r *http.Request) bool {
			_, ok := claims(r)
			return ok
		},
		ResolveUserID: func(r *http.Request) string {
			parsed, ok := claims(r)
			if !ok {
				return ""
			}
			return parsed.UserID
		},
		ResolveViewer: func(r *http.Request) module.Viewer {
			parsed, ok := claims(r)
			if !ok {
				return module.Viewer{}
			}
			name := parsed.Email
			if at := strings.IndexByte(name, '@'); at > 0 {
				name = name[:at]
			}
			return module.Viewer{DisplayName: name, Email: parsed.Email}
		},
		ResolveLanguage: func(r *http.Request) string {
			return webi18n.ResolveRequest(r, prefs.NewCookieStore(nil, r))
		},
	}
}
