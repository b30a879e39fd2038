package templates

import (
	"strings"

	"github.com/sudobility/whisperly-web/internal/platform/branding"
)

// ComposePageTitle appends the brand suffix to a page title unless already present.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	suffix := " | " + branding.AppName
	if strings.HasSuffix(title, suffix) {
		return title
	}
	if base, ok := strings.CutSuffix(title, " - "+branding.AppName); ok {
		return strings.TrimSpace(base) + suffix
	}
	return title + suffix
}
