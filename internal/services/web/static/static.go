// Package static embeds web assets for HTTP serving.
package static

import "embed"

//go:embed app.css
var FS embed.FS
