// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how request metadata resolves the request scheme.
//
// TrustForwardedProto must be explicitly enabled for X-Forwarded-Proto to be
// considered, so headers from untrusted clients are ignored by default.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPS reports whether a request should be treated as HTTPS under the policy.
func IsHTTPS(r *http.Request, policy SchemePolicy) bool {
	return scheme(r, policy) == "https"
}

// HasSameOriginProof reports whether Origin or Referer proves the request
// came from this site. Mutation handlers behind cookie sessions require it.
func HasSameOriginProof(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	requestScheme := scheme(r, policy)
	requestHost, requestPort := hostParts(r.Host)
	if requestHost == "" {
		return false
	}
	proof := strings.TrimSpace(r.Header.Get("Origin"))
	if proof == "" {
		proof = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if proof == "" {
		return false
	}
	parsed, err := url.Parse(proof)
	if err != nil {
		return false
	}
	proofScheme := strings.ToLower(strings.TrimSpace(parsed.Scheme))
	if proofScheme == "" || proofScheme != requestScheme {
		return false
	}
	proofHost := strings.ToLower(strings.TrimSpace(parsed.Hostname()))
	if proofHost == "" || proofHost != requestHost {
		return false
	}
	return portOrDefault(parsed.Port(), proofScheme) == portOrDefault(requestPort, requestScheme)
}

func scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func portOrDefault(port string, forScheme string) string {
	port = strings.TrimSpace(port)
	if port != "" {
		return port
	}
	if forScheme == "https" {
		return "443"
	}
	return "80"
}

func hostParts(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(strings.TrimSpace(parsed.Hostname())), strings.TrimSpace(parsed.Port())
}
