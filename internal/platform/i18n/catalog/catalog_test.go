package catalog

import (
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestDefaultBundleCarriesShippedLocales(t *testing.T) {
	t.Parallel()

	bundle := Default()
	for _, locale := range []string{"en", "pt"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("HasLocale(%q) = false, want true", locale)
		}
	}
	if got, ok := bundle.Message("en", "title.home"); !ok || got == "" {
		t.Fatalf("Message(en, title.home) = %q, %v", got, ok)
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	bundle := Default()
	got, ok := bundle.Message("pt", "invitations.heading")
	if !ok {
		t.Fatal("Message(pt, invitations.heading) not found")
	}
	want, _ := bundle.Message("en", "invitations.heading")
	if got != want {
		t.Fatalf("Message(pt, invitations.heading) = %q, want base %q", got, want)
	}
}

func TestDefaultBundleRegistersPrinters(t *testing.T) {
	t.Parallel()

	p := message.NewPrinter(language.Make("pt"))
	if got := p.Sprintf("dashboard.heading"); got != "Painel" {
		t.Fatalf("pt dashboard.heading = %q, want %q", got, "Painel")
	}
}

func TestLoadFromFSRejectsBadCatalogs(t *testing.T) {
	t.Parallel()

	valid := `locale: "en"
namespace: "web"
messages:
  "greeting": "Hello"
`
	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "missing base locale",
			files:   map[string]string{"locales/pt/web.yaml": strings.ReplaceAll(valid, `"en"`, `"pt"`)},
			wantErr: "base locale",
		},
		{
			name:    "locale path mismatch",
			files:   map[string]string{"locales/pt/web.yaml": valid},
			wantErr: "must match path locale",
		},
		{
			name:    "unsupported locale",
			files:   map[string]string{"locales/xx/web.yaml": strings.ReplaceAll(valid, `"en"`, `"xx"`)},
			wantErr: "not a supported language code",
		},
		{
			name:    "namespace filename mismatch",
			files:   map[string]string{"locales/en/other.yaml": valid},
			wantErr: "must match filename namespace",
		},
		{
			name: "duplicate key across namespaces",
			files: map[string]string{
				"locales/en/web.yaml": valid,
				"locales/en/app.yaml": strings.ReplaceAll(valid, `"web"`, `"app"`),
			},
			wantErr: "duplicate key",
		},
		{
			name:    "unquoted value",
			files:   map[string]string{"locales/en/web.yaml": "locale: \"en\"\nnamespace: \"web\"\nmessages:\n  \"greeting\": Hello\n"},
			wantErr: "parse catalog",
		},
		{
			name:    "no files",
			files:   map[string]string{},
			wantErr: "no catalog files",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fsys := fstest.MapFS{}
			for name, body := range tc.files {
				fsys[name] = &fstest.MapFile{Data: []byte(body)}
			}
			_, err := LoadFromFS(fsys)
			if err == nil {
				t.Fatal("LoadFromFS() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("LoadFromFS() error = %q, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFromFSParsesMessages(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en/web.yaml": &fstest.MapFile{Data: []byte(`# comment
locale: "en"
namespace: "web"
messages:
  "greeting": "Hello"
  "farewell": "Goodbye \"friend\""
`)},
	}
	bundle, err := LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	if got, _ := bundle.Message("en", "greeting"); got != "Hello" {
		t.Fatalf("greeting = %q, want %q", got, "Hello")
	}
	if got, _ := bundle.Message("en", "farewell"); got != `Goodbye "friend"` {
		t.Fatalf("farewell = %q, want %q", got, `Goodbye "friend"`)
	}
	if got := bundle.Locales(); len(got) != 1 || got[0] != "en" {
		t.Fatalf("Locales() = %v, want [en]", got)
	}
}
