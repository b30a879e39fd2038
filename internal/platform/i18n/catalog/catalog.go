// Package catalog loads the embedded translation catalogs and registers
// them with x/text/message so localized printers resolve product copy.
//
// Catalog files live under locales/<code>/<namespace>.yaml where <code> is
// a supported language code and <namespace> groups related keys. The file
// format is a deliberately small YAML subset: quoted scalars only, one
// message per line.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/sudobility/whisperly-web/internal/platform/i18n"
)

// BaseLocale is the locale every deployment must ship and the fallback for
// lookups in locales with partial coverage.
const BaseLocale = i18n.DefaultCode

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Bundle holds the message tables for every shipped locale.
type Bundle struct {
	locales map[string]map[string]string
}

type catalogFile struct {
	Locale    string
	Namespace string
	Messages  map[string]string
}

// Default returns the process-wide bundle loaded from the embedded
// catalogs. Its messages are already registered with x/text/message.
func Default() *Bundle {
	return defaultBundle
}

// LoadFromFS loads catalog files from fsys, which must contain at least the
// base locale.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		parsed, err := parseCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.addFile(p, parsed); err != nil {
			return nil, err
		}
	}
	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	if code, ok := i18n.Canonical(locale); !ok || code != locale {
		return fmt.Errorf("catalog %s: locale %q is not a supported language code", p, locale)
	}
	if namespace := strings.TrimSpace(file.Namespace); namespace != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, file.Namespace, namespaceFromPath)
	}

	messages, ok := b.locales[locale]
	if !ok {
		messages = map[string]string{}
		b.locales[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// Register registers every message with x/text/message under the tag for
// its locale code.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, ok := i18n.ParseTag(locale)
		if !ok {
			return fmt.Errorf("parse locale tag %q", locale)
		}
		messages := b.Messages(locale)
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			message.SetString(tag, key, messages[key])
		}
	}
	return nil
}

// HasLocale reports whether the locale has a catalog in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the sorted locale codes present in the bundle.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Messages returns a copy of the message table for a locale.
func (b *Bundle) Messages(locale string) map[string]string {
	if b == nil {
		return map[string]string{}
	}
	messages, ok := b.locales[strings.TrimSpace(locale)]
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(messages))
	for key, value := range messages {
		out[key] = value
	}
	return out
}

// Message returns one message value, falling back to the base locale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	locale = strings.TrimSpace(locale)
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	if messages, ok := b.locales[locale]; ok {
		if value, exists := messages[key]; exists {
			return value, true
		}
	}
	if locale != BaseLocale {
		if messages, ok := b.locales[BaseLocale]; ok {
			value, exists := messages[key]
			return value, exists
		}
	}
	return "", false
}

func mustLoadEmbedded() *Bundle {
	bundle, err := LoadFromFS(embeddedFS)
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

func parseCatalogFile(data []byte) (catalogFile, error) {
	out := catalogFile{Messages: map[string]string{}}
	inMessages := false

	for _, rawLine := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case strings.HasPrefix(line, "locale:"):
			value, err := unquote(strings.TrimPrefix(line, "locale:"))
			if err != nil {
				return catalogFile{}, fmt.Errorf("parse locale: %w", err)
			}
			out.Locale = value
		case strings.HasPrefix(line, "namespace:"):
			value, err := unquote(strings.TrimPrefix(line, "namespace:"))
			if err != nil {
				return catalogFile{}, fmt.Errorf("parse namespace: %w", err)
			}
			out.Namespace = value
		case line == "messages:":
			inMessages = true
		default:
			if !inMessages {
				return catalogFile{}, fmt.Errorf("unexpected line %q", line)
			}
			key, value, err := parseMessageLine(line)
			if err != nil {
				return catalogFile{}, fmt.Errorf("parse message %q: %w", line, err)
			}
			out.Messages[key] = value
		}
	}

	if out.Locale == "" {
		return catalogFile{}, fmt.Errorf("missing locale")
	}
	if out.Namespace == "" {
		return catalogFile{}, fmt.Errorf("missing namespace")
	}
	if len(out.Messages) == 0 {
		return catalogFile{}, fmt.Errorf("missing messages")
	}
	return out, nil
}

func parseMessageLine(line string) (string, string, error) {
	keyToken, rest, err := splitQuotedToken(line)
	if err != nil {
		return "", "", err
	}
	key, err := strconv.Unquote(keyToken)
	if err != nil {
		return "", "", fmt.Errorf("unquote key: %w", err)
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, ":") {
		return "", "", fmt.Errorf("missing ':' separator")
	}
	value, err := unquote(strings.TrimPrefix(rest, ":"))
	if err != nil {
		return "", "", fmt.Errorf("unquote value: %w", err)
	}
	return key, value, nil
}

func unquote(value string) (string, error) {
	return strconv.Unquote(strings.TrimSpace(value))
}

func splitQuotedToken(line string) (string, string, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, `"`) {
		return "", "", fmt.Errorf("expected quoted token")
	}
	escaped := false
	for i := 1; i < len(trimmed); i++ {
		switch {
		case escaped:
			escaped = false
		case trimmed[i] == '\\':
			escaped = true
		case trimmed[i] == '"':
			return trimmed[:i+1], trimmed[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("unterminated quoted token")
}
