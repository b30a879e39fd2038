// Package prefs persists small per-browser preference strings.
//
// The web service keeps exactly two: the last confirmed language code and
// the last used entity slug. Resolvers receive the Store interface so they
// stay unit-testable against an in-memory implementation; production uses
// plain cookies with last-write-wins semantics.
package prefs

import (
	"net/http"
	"strings"
	"time"
)

const (
	// LanguageKey stores the last confirmed language code.
	LanguageKey = "whisperly_lang"
	// LastEntityKey stores the last used entity slug.
	LastEntityKey = "whisperly_last_entity"
)

const cookieMaxAge = int(365 * 24 * time.Hour / time.Second)

// Store reads and writes persisted preference values by key.
type Store interface {
	Get(key string) (string, bool)
	Set(key string, value string)
	Clear(key string)
}

// CookieStore persists preferences as response cookies and reads them back
// from the request. Writes within one request are visible to later reads.
type CookieStore struct {
	r       *http.Request
	w       http.ResponseWriter
	written map[string]string
	cleared map[string]bool
}

// NewCookieStore builds a cookie-backed store bound to one request/response.
func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{r: r, w: w, written: map[string]string{}, cleared: map[string]bool{}}
}

// Get returns the trimmed preference value when present.
func (s *CookieStore) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	if s.cleared[key] {
		return "", false
	}
	if value, ok := s.written[key]; ok {
		return value, true
	}
	if s.r == nil {
		return "", false
	}
	cookie, err := s.r.Cookie(key)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Set persists a preference value for a year.
func (s *CookieStore) Set(key string, value string) {
	if s == nil || s.w == nil {
		return
	}
	value = strings.TrimSpace(value)
	if value == "" {
		s.Clear(key)
		return
	}
	delete(s.cleared, key)
	s.written[key] = value
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires a persisted preference.
func (s *CookieStore) Clear(key string) {
	if s == nil || s.w == nil {
		return
	}
	delete(s.written, key)
	s.cleared[key] = true
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

// Get returns a stored value.
func (s *MemoryStore) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	value, ok := s.values[key]
	return value, ok
}

// Set stores a value.
func (s *MemoryStore) Set(key string, value string) {
	if s == nil {
		return
	}
	value = strings.TrimSpace(value)
	if value == "" {
		delete(s.values, key)
		return
	}
	s.values[key] = value
}

// Clear removes a value.
func (s *MemoryStore) Clear(key string) {
	if s == nil {
		return
	}
	delete(s.values, key)
}
